package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gateprep/gatebank/internal/answers"
	"github.com/gateprep/gatebank/internal/catalog"
)

func ListQuestionsHandler(h *catalog.Handle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := catalogOr503(w, h)
		if !ok {
			return
		}
		q := r.URL.Query()
		f := catalog.Filter{
			Tag:    strings.TrimSpace(q.Get("tag")),
			Year:   strings.TrimSpace(q.Get("year")),
			Topic:  strings.TrimSpace(q.Get("topic")),
			Query:  strings.TrimSpace(q.Get("q")),
			Limit:  parseIntDefault(q.Get("limit"), 50),
			Offset: parseIntDefault(q.Get("offset"), 0),
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"source":    c.SourceName(),
			"total":     c.Len(),
			"questions": c.Select(f),
		})
	}
}

func GetQuestionHandler(h *catalog.Handle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := catalogOr503(w, h)
		if !ok {
			return
		}
		q, found := c.Get(chi.URLParam(r, "questionUID"))
		if !found {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, q)
	}
}

func QuestionIdentityHandler(h *catalog.Handle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := catalogOr503(w, h)
		if !ok {
			return
		}
		q, found := c.Get(chi.URLParam(r, "questionUID"))
		if !found {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, answers.QuestionIdentity(q))
	}
}

// ResolveAnswerHandler reports the joined answer record. A question with
// no joined record is a valid state, served as found=false, never an
// error.
func ResolveAnswerHandler(h *catalog.Handle, key *answers.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := catalogOr503(w, h)
		if !ok {
			return
		}
		q, found := c.Get(chi.URLParam(r, "questionUID"))
		if !found {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		rec, matched := key.Resolve(q)
		if !matched {
			respondJSON(w, http.StatusOK, map[string]any{"found": false})
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"found": true, "record": rec})
	}
}

func TagsHandler(h *catalog.Handle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := catalogOr503(w, h)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, c.Tags())
	}
}

func TopicsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.Topics())
	}
}

func SubtopicsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := chi.URLParam(r, "topic")
		subs := catalog.Subtopics(topic)
		if subs == nil {
			http.Error(w, "unknown topic", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"topic": topic, "subtopics": subs})
	}
}
