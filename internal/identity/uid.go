package identity

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

// Uid namespaces. "go:" ids come from the source site and survive content
// edits; "local:" ids are content hashes and do not.
const (
	sourcePrefix      = "go"
	localPrefix       = "local"
	unsupportedPrefix = "unsupported"
)

// QuestionUID returns the canonical uid for a question. An explicit uid
// wins verbatim; else the source-site numeric id; else a content hash.
// Never empty.
func QuestionUID(explicit, title, body, link string) string {
	if uid := strings.TrimSpace(explicit); uid != "" {
		return uid
	}
	if id, ok := SourceID(link); ok {
		return sourcePrefix + ":" + id
	}
	return localPrefix + ":" + LocalHash(title, body, link)
}

// LocalHash is a 32-bit FNV-1a over "<title>||<body>||<link>", rendered
// as lowercase hex. Stable for identical content only.
func LocalHash(title, body, link string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.TrimSpace(title)))
	h.Write([]byte("||"))
	h.Write([]byte(strings.TrimSpace(body)))
	h.Write([]byte("||"))
	h.Write([]byte(strings.TrimSpace(link)))
	return fmt.Sprintf("%08x", h.Sum32())
}

var idStrPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ParseIDStr splits a dotted "chapter.subject.question" id path.
func ParseIDStr(idStr string) (chapterNo, subjectCode, questionNo int, ok bool) {
	m := idStrPattern.FindStringSubmatch(strings.TrimSpace(idStr))
	if m == nil {
		return 0, 0, 0, false
	}
	chapterNo, _ = strconv.Atoi(m[1])
	subjectCode, _ = strconv.Atoi(m[2])
	questionNo, _ = strconv.Atoi(m[3])
	return chapterNo, subjectCode, questionNo, true
}

// AnswerUID keys a record in the answer-key dataset by its printed volume
// and id path. Absent when either part is missing or malformed.
func AnswerUID(volume int, idStr string) (string, bool) {
	idStr = strings.TrimSpace(idStr)
	if volume <= 0 || idStr == "" {
		return "", false
	}
	if _, _, _, ok := ParseIDStr(idStr); !ok {
		return "", false
	}
	return fmt.Sprintf("v%d:%s", volume, idStr), true
}

// ExamUID renders an exam coordinate as a join key. Distinct coordinates
// must never collide, so every part is normalized before assembly.
func ExamUID(ref ExamRef) string {
	return fmt.Sprintf("cse:%s:set%s:%s:q%s", ref.Year, normalizeSetNo(ref.SetNo), ref.Section, ref.Token)
}

// BuildExamUID is ExamUID over loose parts, for callers that never built
// an ExamRef.
func BuildExamUID(year, setNo, section, token string) string {
	return ExamUID(ExamRef{Year: year, SetNo: setNo, Section: section, Token: token})
}

// ExamUIDFor derives the exam uid for a question record: an explicit
// value wins, then the link, then the title. Empty when underivable.
func ExamUIDFor(explicit, link, title, yearTag string) string {
	if uid := strings.TrimSpace(explicit); uid != "" {
		return uid
	}
	if ref, ok := ExamRefFromLink(link, yearTag); ok {
		return ExamUID(ref)
	}
	if ref, ok := ExamRefFromTitle(title, yearTag); ok {
		return ExamUID(ref)
	}
	return ""
}

// UnsupportedUID is the sentinel uid carried by synthetic unsupported
// answer records. Never stored as a real answer key.
func UnsupportedUID(questionUID string) string {
	return unsupportedPrefix + ":" + questionUID
}

// IsLocal reports whether a question uid is a content-hash fallback
// rather than a joinable source identity.
func IsLocal(questionUID string) bool {
	return strings.HasPrefix(questionUID, localPrefix+":")
}

func normalizeSetNo(raw string) string {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return "1"
	}
	return strconv.Itoa(n)
}
