package booking

import (
	"context"
	"errors"
	"sync"
)

// Phase is the lifecycle state of a view's booking.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseLoaded   Phase = "loaded"
	PhaseNotFound Phase = "not-found"
)

// Snapshot is what a view currently shows.
type Snapshot struct {
	ID     string
	Phase  Phase
	Record Record
	// Err is the cause of PhaseNotFound; ErrNotFound or an *UnavailableError.
	Err error
}

// View holds the booking state of one page. Each Load supersedes the one
// before it: the previous request is cancelled and its response, should it
// still arrive, is never applied. Last requested wins.
type View struct {
	fetcher Fetcher

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot
}

// NewView creates an idle view over the fetcher.
func NewView(f Fetcher) *View {
	return &View{fetcher: f, snap: Snapshot{Phase: PhaseIdle}}
}

// Load fetches id and applies the result unless a newer Load or Close
// happened meanwhile. It reports whether the result was applied and
// returns the view's snapshot either way.
func (v *View) Load(ctx context.Context, id string) (Snapshot, bool) {
	lctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	v.cancel = cancel
	v.snap = Snapshot{ID: id, Phase: PhaseLoading}
	v.mu.Unlock()

	rec, err := v.fetcher.Fetch(lctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen || IsCanceled(err) {
		return v.snap, false
	}
	v.cancel = nil

	switch {
	case err == nil:
		v.snap = Snapshot{ID: id, Phase: PhaseLoaded, Record: rec}
	case errors.Is(err, ErrNotFound):
		v.snap = Snapshot{ID: id, Phase: PhaseNotFound, Err: ErrNotFound}
	default:
		var unavailable *UnavailableError
		if !errors.As(err, &unavailable) {
			err = &UnavailableError{ID: id, Err: err}
		}
		v.snap = Snapshot{ID: id, Phase: PhaseNotFound, Err: err}
	}
	return v.snap, true
}

// Snapshot returns the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// Close abandons any lookup in flight. Results arriving afterwards are
// discarded.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
}
