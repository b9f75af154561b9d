package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gateprep/gatebank/internal/progress"
)

func SnapshotHandler(store *progress.Guarded) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := store.Snapshot(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"solved":     snap.Solved,
			"bookmarked": snap.Bookmarked,
			"degraded":   store.Degraded(),
		})
	}
}

func SetSolvedHandler(store *progress.Guarded) http.HandlerFunc {
	return flagHandler(func(r *http.Request, userID, questionUID string, value bool) error {
		return store.SetSolved(r.Context(), userID, questionUID, value)
	}, "solved")
}

func SetBookmarkedHandler(store *progress.Guarded) http.HandlerFunc {
	return flagHandler(func(r *http.Request, userID, questionUID string, value bool) error {
		return store.SetBookmarked(r.Context(), userID, questionUID, value)
	}, "bookmarked")
}

func flagHandler(set func(r *http.Request, userID, questionUID string, value bool) error, field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		var req map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var questionUID string
		if raw, ok := req["question_uid"]; ok {
			if err := json.Unmarshal(raw, &questionUID); err != nil {
				http.Error(w, "question_uid must be a string", http.StatusBadRequest)
				return
			}
		}
		if strings.TrimSpace(questionUID) == "" {
			http.Error(w, "question_uid required", http.StatusBadRequest)
			return
		}
		value := true
		if raw, ok := req[field]; ok {
			if err := json.Unmarshal(raw, &value); err != nil {
				http.Error(w, field+" must be a boolean", http.StatusBadRequest)
				return
			}
		}
		if err := set(r, userID, questionUID, value); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"question_uid": questionUID,
			field:          value,
		})
	}
}

func ListAttemptsHandler(store *progress.Guarded) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempts, err := store.ListAttempts(r.Context(),
			chi.URLParam(r, "userID"),
			strings.TrimSpace(r.URL.Query().Get("question_uid")),
			parseIntDefault(r.URL.Query().Get("limit"), 50))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, attempts)
	}
}
