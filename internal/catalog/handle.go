package catalog

import (
	"errors"
	"sync"
)

// ErrNotLoaded gates every read until the one-time startup load
// completes. Callers report "not yet loaded" rather than partial data.
var ErrNotLoaded = errors.New("catalog not loaded yet")

// Handle is the readiness gate around the one-time asynchronous load.
// Set is called exactly once when the load finishes; until then Get
// returns ErrNotLoaded. A failed load is terminal: Get keeps returning
// the load error for the rest of the session.
type Handle struct {
	mu  sync.RWMutex
	cat *Catalog
	err error
	set bool
}

func (h *Handle) Set(cat *Catalog, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cat, h.err, h.set = cat, err, true
}

func (h *Handle) Get() (*Catalog, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.set {
		return nil, ErrNotLoaded
	}
	if h.err != nil {
		return nil, h.err
	}
	return h.cat, nil
}

// Ready reports whether the load finished successfully.
func (h *Handle) Ready() bool {
	_, err := h.Get()
	return err == nil
}
