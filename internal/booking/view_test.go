package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedFetcher answers each id only once its gate is opened.
type gatedFetcher struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	started chan string
	obeyCtx bool
}

func newGatedFetcher(obeyCtx bool, ids ...string) *gatedFetcher {
	f := &gatedFetcher{gates: make(map[string]chan struct{}), started: make(chan string, len(ids)), obeyCtx: obeyCtx}
	for _, id := range ids {
		f.gates[id] = make(chan struct{})
	}
	return f
}

func (f *gatedFetcher) open(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	close(f.gates[id])
}

func (f *gatedFetcher) Fetch(ctx context.Context, id string) (Record, error) {
	f.mu.Lock()
	gate := f.gates[id]
	f.mu.Unlock()
	f.started <- id

	if f.obeyCtx {
		select {
		case <-gate:
		case <-ctx.Done():
			return Record{}, ctx.Err()
		}
	} else {
		<-gate
	}
	return Record{ID: id, FullName: "name " + id, Status: "under-review"}, nil
}

func TestView_LastRequestedWins(t *testing.T) {
	for _, obeyCtx := range []bool{false, true} {
		f := newGatedFetcher(obeyCtx, "slow", "fast")
		v := NewView(f)

		var wg sync.WaitGroup
		var staleApplied bool
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, staleApplied = v.Load(context.Background(), "slow")
		}()
		require.Equal(t, "slow", <-f.started)

		f.open("fast")
		snap, applied := v.Load(context.Background(), "fast")
		<-f.started
		assert.True(t, applied)
		assert.Equal(t, PhaseLoaded, snap.Phase)
		assert.Equal(t, "fast", snap.Record.ID)

		f.open("slow")
		wg.Wait()

		assert.False(t, staleApplied, "obeyCtx=%v", obeyCtx)
		assert.Equal(t, "fast", v.Snapshot().Record.ID)
		assert.Equal(t, PhaseLoaded, v.Snapshot().Phase)
	}
}

func TestView_CloseDiscardsInFlight(t *testing.T) {
	f := newGatedFetcher(true, "a")
	v := NewView(f)

	done := make(chan bool)
	go func() {
		_, applied := v.Load(context.Background(), "a")
		done <- applied
	}()
	<-f.started
	assert.Equal(t, PhaseLoading, v.Snapshot().Phase)

	v.Close()
	select {
	case applied := <-done:
		assert.False(t, applied)
	case <-time.After(time.Second):
		t.Fatal("cancelled lookup did not return")
	}
	assert.Equal(t, PhaseLoading, v.Snapshot().Phase)
}

type stubFetcher struct {
	rec Record
	err error
}

func (s stubFetcher) Fetch(ctx context.Context, id string) (Record, error) {
	return s.rec, s.err
}

func TestView_Outcomes(t *testing.T) {
	v := NewView(stubFetcher{err: ErrNotFound})
	assert.Equal(t, PhaseIdle, v.Snapshot().Phase)

	snap, applied := v.Load(context.Background(), "x")
	assert.True(t, applied)
	assert.Equal(t, PhaseNotFound, snap.Phase)
	assert.ErrorIs(t, snap.Err, ErrNotFound)

	v = NewView(stubFetcher{err: errors.New("timeout")})
	snap, _ = v.Load(context.Background(), "x")
	assert.Equal(t, PhaseNotFound, snap.Phase)
	var unavailable *UnavailableError
	assert.ErrorAs(t, snap.Err, &unavailable)

	v = NewView(stubFetcher{err: context.Canceled})
	snap, applied = v.Load(context.Background(), "x")
	assert.False(t, applied, "cancellation is not an error to show")
	assert.Equal(t, PhaseLoading, snap.Phase)
}
