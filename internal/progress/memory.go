package progress

import (
	"context"
	"sort"
	"sync"
)

type flags struct {
	solved     bool
	bookmarked bool
}

type memoryStore struct {
	mu       sync.RWMutex
	flags    map[string]map[string]flags // userID -> questionUID -> flags
	attempts map[string][]Attempt        // userID -> attempts, oldest first
}

// NewMemoryStore returns a session-only store. It backs tests and the
// degraded mode entered when the durable store stops accepting writes.
func NewMemoryStore() Store {
	return &memoryStore{
		flags:    map[string]map[string]flags{},
		attempts: map[string][]Attempt{},
	}
}

func (m *memoryStore) Snapshot(_ context.Context, userID string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := Snapshot{Solved: []string{}, Bookmarked: []string{}}
	for uid, f := range m.flags[userID] {
		if f.solved {
			snap.Solved = append(snap.Solved, uid)
		}
		if f.bookmarked {
			snap.Bookmarked = append(snap.Bookmarked, uid)
		}
	}
	sort.Strings(snap.Solved)
	sort.Strings(snap.Bookmarked)
	return snap, nil
}

func (m *memoryStore) SetSolved(_ context.Context, userID, questionUID string, solved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.userFlags(userID, questionUID)
	f.solved = solved
	m.flags[userID][questionUID] = f
	return nil
}

func (m *memoryStore) SetBookmarked(_ context.Context, userID, questionUID string, bookmarked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.userFlags(userID, questionUID)
	f.bookmarked = bookmarked
	m.flags[userID][questionUID] = f
	return nil
}

func (m *memoryStore) RecordAttempt(_ context.Context, a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[a.UserID] = append(m.attempts[a.UserID], a)
	return nil
}

func (m *memoryStore) ListAttempts(_ context.Context, userID, questionUID string, limit int) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Attempt{}
	all := m.attempts[userID]
	// Newest first.
	for i := len(all) - 1; i >= 0; i-- {
		if questionUID != "" && all[i].QuestionUID != questionUID {
			continue
		}
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// callers hold the write lock
func (m *memoryStore) userFlags(userID, questionUID string) flags {
	if m.flags[userID] == nil {
		m.flags[userID] = map[string]flags{}
	}
	return m.flags[userID][questionUID]
}
