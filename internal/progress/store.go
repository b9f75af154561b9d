// Package progress persists per-user solve/bookmark state and the
// submission attempt log. Questions are keyed by their storage uid, so
// even records with no answer-joinable identity remain trackable.
package progress

import "context"

// Attempt is one logged submission. Invalid submissions are logged too,
// for audit, but are never marked correct and never flip solved state.
type Attempt struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	QuestionUID string `json:"question_uid"`
	Submission  string `json:"submission"` // JSON payload as submitted
	Status      string `json:"status"`     // ok|invalid_input
	Correct     bool   `json:"correct"`
	CreatedAt   int64  `json:"created_at"`
}

// Snapshot is a user's full progress state, read once at session start.
type Snapshot struct {
	Solved     []string `json:"solved"`
	Bookmarked []string `json:"bookmarked"`
}

type Store interface {
	Snapshot(ctx context.Context, userID string) (Snapshot, error)
	SetSolved(ctx context.Context, userID, questionUID string, solved bool) error
	SetBookmarked(ctx context.Context, userID, questionUID string, bookmarked bool) error
	RecordAttempt(ctx context.Context, a Attempt) error
	ListAttempts(ctx context.Context, userID, questionUID string, limit int) ([]Attempt, error)
}
