package progress

import (
	"context"
	"database/sql"
	"strconv"
	"time"
)

// SQLStore persists progress in the shared DB (sqlite offline, postgres
// when hosted). Schema lives in internal/db.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Snapshot(ctx context.Context, userID string) (Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_uid, solved, bookmarked FROM progress_flags
		 WHERE user_id=$1 ORDER BY question_uid`, userID)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	snap := Snapshot{Solved: []string{}, Bookmarked: []string{}}
	for rows.Next() {
		var uid string
		var solved, bookmarked bool
		if err := rows.Scan(&uid, &solved, &bookmarked); err != nil {
			return Snapshot{}, err
		}
		if solved {
			snap.Solved = append(snap.Solved, uid)
		}
		if bookmarked {
			snap.Bookmarked = append(snap.Bookmarked, uid)
		}
	}
	return snap, rows.Err()
}

func (s *SQLStore) SetSolved(ctx context.Context, userID, questionUID string, solved bool) error {
	return s.setFlag(ctx, userID, questionUID, "solved", solved)
}

func (s *SQLStore) SetBookmarked(ctx context.Context, userID, questionUID string, bookmarked bool) error {
	return s.setFlag(ctx, userID, questionUID, "bookmarked", bookmarked)
}

func (s *SQLStore) setFlag(ctx context.Context, userID, questionUID, column string, value bool) error {
	// column is one of the two fixed flag names, never user input.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO progress_flags (user_id, question_uid, `+column+`, updated_at)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (user_id, question_uid)
		 DO UPDATE SET `+column+`=EXCLUDED.`+column+`, updated_at=EXCLUDED.updated_at`,
		userID, questionUID, value, time.Now().Unix())
	return err
}

func (s *SQLStore) RecordAttempt(ctx context.Context, a Attempt) error {
	createdAt := a.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempt_log (id, user_id, question_uid, submission, status, correct, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.UserID, a.QuestionUID, a.Submission, a.Status, a.Correct, createdAt)
	return err
}

func (s *SQLStore) ListAttempts(ctx context.Context, userID, questionUID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, user_id, question_uid, submission, status, correct, created_at
		 FROM attempt_log WHERE user_id=$1`
	args := []any{userID}
	if questionUID != "" {
		query += ` AND question_uid=$2`
		args = append(args, questionUID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ` + strconv.Itoa(limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attempt{}
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuestionUID, &a.Submission, &a.Status, &a.Correct, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
