package progress

import (
	"context"
	"log"
	"sync"
)

// Guarded wraps a durable store and degrades to a session-only memory
// store on the first write failure, instead of surfacing an error on
// every toggle. Reads follow the same switch so the session stays
// self-consistent.
type Guarded struct {
	mu       sync.RWMutex
	primary  Store
	fallback Store
	degraded bool
}

func NewGuarded(primary Store) *Guarded {
	return &Guarded{primary: primary, fallback: NewMemoryStore()}
}

// Degraded reports whether persistence has been lost for this session.
func (g *Guarded) Degraded() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.degraded
}

func (g *Guarded) active() Store {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.degraded {
		return g.fallback
	}
	return g.primary
}

// degrade flips to the fallback store once; later failures of the
// fallback itself (it has none) cannot re-trigger it.
func (g *Guarded) degrade(op string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.degraded {
		return
	}
	g.degraded = true
	log.Printf("progress store unavailable (%s): %v; continuing without persistence", op, err)
}

func (g *Guarded) Snapshot(ctx context.Context, userID string) (Snapshot, error) {
	snap, err := g.active().Snapshot(ctx, userID)
	if err != nil {
		g.degrade("snapshot", err)
		return g.fallback.Snapshot(ctx, userID)
	}
	return snap, nil
}

func (g *Guarded) SetSolved(ctx context.Context, userID, questionUID string, solved bool) error {
	if err := g.active().SetSolved(ctx, userID, questionUID, solved); err != nil {
		g.degrade("set solved", err)
		return g.fallback.SetSolved(ctx, userID, questionUID, solved)
	}
	return nil
}

func (g *Guarded) SetBookmarked(ctx context.Context, userID, questionUID string, bookmarked bool) error {
	if err := g.active().SetBookmarked(ctx, userID, questionUID, bookmarked); err != nil {
		g.degrade("set bookmarked", err)
		return g.fallback.SetBookmarked(ctx, userID, questionUID, bookmarked)
	}
	return nil
}

func (g *Guarded) RecordAttempt(ctx context.Context, a Attempt) error {
	if err := g.active().RecordAttempt(ctx, a); err != nil {
		g.degrade("record attempt", err)
		return g.fallback.RecordAttempt(ctx, a)
	}
	return nil
}

func (g *Guarded) ListAttempts(ctx context.Context, userID, questionUID string, limit int) ([]Attempt, error) {
	out, err := g.active().ListAttempts(ctx, userID, questionUID, limit)
	if err != nil {
		g.degrade("list attempts", err)
		return g.fallback.ListAttempts(ctx, userID, questionUID, limit)
	}
	return out, nil
}
