package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/gateprep/gatebank/internal/api/http"
	"github.com/gateprep/gatebank/internal/answers"
	"github.com/gateprep/gatebank/internal/catalog"
	"github.com/gateprep/gatebank/internal/config"
	"github.com/gateprep/gatebank/internal/db"
	"github.com/gateprep/gatebank/internal/progress"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := progress.NewGuarded(progress.NewSQLStore(dbh))

	// --- Answer key (small, loaded synchronously) ---
	key, err := answers.Load(cfg.AnswersPath, cfg.AnswersByExamUIDPath, cfg.UnsupportedPath)
	if err != nil {
		log.Fatalf("answer datasets: %v", err)
	}
	byQ, byA, byE, uns := key.Counts()
	log.Printf("answer key: %d by question uid, %d by answer uid, %d by exam uid, %d unsupported", byQ, byA, byE, uns)
	if n := key.Skipped(); n > 0 {
		log.Printf("answer key: skipped %d undecodable dataset entries", n)
	}

	// --- Catalog: one-time async load, gated by the handle ---
	var handle catalog.Handle
	go func() {
		cat, err := catalog.Load(context.Background(), questionSources(cfg)...)
		handle.Set(cat, err)
		if err != nil {
			log.Printf("question catalog load failed: %v", err)
			return
		}
		log.Printf("question catalog ready: %d questions from %s", cat.Len(), cat.SourceName())
	}()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.Mount(r, &handle, key, store)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !handle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func questionSources(cfg config.Config) []catalog.Source {
	out := make([]catalog.Source, 0, len(cfg.QuestionSources))
	for _, name := range cfg.QuestionSources {
		if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
			out = append(out, catalog.NewHTTPSource(name))
			continue
		}
		out = append(out, catalog.NewFileSource(cfg.DataDir, name))
	}
	return out
}
