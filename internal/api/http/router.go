// Package http serves the question bank over a small JSON API: catalog
// listing/filtering, answer resolution, submission evaluation, and
// per-user progress.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gateprep/gatebank/internal/answers"
	"github.com/gateprep/gatebank/internal/catalog"
	"github.com/gateprep/gatebank/internal/progress"
)

// Mount attaches all API routes.
func Mount(r chi.Router, h *catalog.Handle, key *answers.Key, store *progress.Guarded) {
	r.Get("/questions", ListQuestionsHandler(h))
	r.Get("/questions/{questionUID}", GetQuestionHandler(h))
	r.Get("/questions/{questionUID}/identity", QuestionIdentityHandler(h))
	r.Get("/questions/{questionUID}/answer", ResolveAnswerHandler(h, key))
	r.Post("/questions/{questionUID}/submit", SubmitHandler(h, key, store))

	r.Get("/tags", TagsHandler(h))
	r.Get("/topics", TopicsHandler())
	r.Get("/topics/{topic}", SubtopicsHandler())

	r.Get("/progress/{userID}", SnapshotHandler(store))
	r.Post("/progress/{userID}/solved", SetSolvedHandler(store))
	r.Post("/progress/{userID}/bookmarked", SetBookmarkedHandler(store))
	r.Get("/progress/{userID}/attempts", ListAttemptsHandler(store))
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// catalogOr503 resolves the loaded catalog or writes the readiness /
// terminal-load error for the caller.
func catalogOr503(w http.ResponseWriter, h *catalog.Handle) (*catalog.Catalog, bool) {
	c, err := h.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return nil, false
	}
	return c, true
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
