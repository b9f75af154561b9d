package config

import (
	"os"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// Question datasets, preference-ordered. Names resolve under
	// DataDir unless they are absolute URLs.
	DataDir         string
	QuestionSources []string

	// Answer datasets. Any may be empty.
	AnswersPath          string
	AnswersByExamUIDPath string
	UnsupportedPath      string

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:     mode,
		HTTPAddr: addr,
		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		DataDir:         envOr("DATA_DIR", "./data"),
		QuestionSources: csvOr("QUESTION_SOURCES", "questions_enriched_v1.json,questions_v1.json"),

		AnswersPath:          envOr("ANSWERS_PATH", ""),
		AnswersByExamUIDPath: envOr("ANSWERS_BY_EXAM_UID_PATH", ""),
		UnsupportedPath:      envOr("UNSUPPORTED_PATH", ""),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://gatebank.gateprep.in"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
