package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gateprep/gatebank/internal/answers"
	"github.com/gateprep/gatebank/internal/catalog"
	"github.com/gateprep/gatebank/internal/progress"
)

// SubmitHandler evaluates a submission and logs the attempt. Invalid
// input is still logged for audit but never marks the question solved.
func SubmitHandler(h *catalog.Handle, key *answers.Key, store *progress.Guarded) http.HandlerFunc {
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

		var req struct {
			UserID string `json:"user_id"`
			answers.Submission
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			http.Error(w, "user_id required", http.StatusBadRequest)
			return
		}

		rec, matched := key.Resolve(q)
		if !matched {
			http.Error(w, "no answer record for this question", http.StatusNotFound)
			return
		}

		res, err := answers.Evaluate(rec, req.Submission)
		var notEval answers.ErrNotEvaluable
		if errors.As(err, &notEval) {
			http.Error(w, notEval.Error(), http.StatusUnprocessableEntity)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		subJSON, _ := json.Marshal(res.Submission)
		attempt := progress.Attempt{
			ID:          uuid.NewString(),
			UserID:      req.UserID,
			QuestionUID: q.QuestionUID,
			Submission:  string(subJSON),
			Status:      string(res.Status),
			Correct:     res.Correct,
			CreatedAt:   time.Now().Unix(),
		}
		if err := store.RecordAttempt(r.Context(), attempt); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if res.Correct {
			if err := store.SetSolved(r.Context(), req.UserID, q.QuestionUID, true); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"correct":    res.Correct,
			"status":     res.Status,
			"attempt_id": attempt.ID,
			"degraded":   store.Degraded(),
		})
	}
}
