package refresh_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanarr/scanarr/internal/refresh"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingService is a thread-safe Service + ItemRefresher that records
// every refreshed path.
type recordingService struct {
	name string

	mu      sync.Mutex
	paths   []string
	batches int
}

func (s *recordingService) Name() string { return s.name }

func (s *recordingService) RefreshItems(ctx context.Context, items []refresh.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.paths = append(s.paths, it.TargetPath)
	}
	s.batches++
	return nil
}

func (s *recordingService) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// fakeRegistry returns a fixed service set and counts lookups.
type fakeRegistry struct {
	mu       sync.Mutex
	calls    int
	services map[string]refresh.Service
}

func (r *fakeRegistry) GetActive(ctx context.Context, names []string) map[string]refresh.Service {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.services
}

func (r *fakeRegistry) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestEngine(t *testing.T, cfg refresh.Config) (*refresh.Engine, *recordingService, *fakeRegistry) {
	t.Helper()
	svc := &recordingService{name: "emby"}
	reg := &fakeRegistry{services: map[string]refresh.Service{"emby": svc}}
	if cfg.Coalesce == "" {
		cfg.Coalesce = refresh.CoalesceByPath
	}
	if len(cfg.Servers) == 0 {
		cfg.Servers = []string{"emby"}
	}
	eng := refresh.NewEngine(cfg, reg, nil, testLogger())
	t.Cleanup(eng.Stop)
	return eng, svc, reg
}

func TestEngine_ZeroDelayDispatchesSynchronously(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{Delay: 0})

	eng.Notify(context.Background(), item("M", "/lib/movie"))

	// No waiter, no waiting: the call has already dispatched by the time
	// Notify returns.
	assert.Equal(t, []string{"/lib/movie"}, svc.Paths())

	pending, armed, _ := eng.Status()
	assert.Zero(t, pending)
	assert.False(t, armed)
}

func TestEngine_DebounceBatchesBurst(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{
		Delay:        60 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
	})

	ctx := context.Background()
	eng.Notify(ctx, item("A", "/lib/showA/ep1"))
	eng.Notify(ctx, item("A", "/lib/showA/ep2"))
	eng.Notify(ctx, item("B", "/lib/showB/ep1"))

	_, armed, _ := eng.Status()
	assert.True(t, armed, "waiter should be armed during the quiet period")
	assert.Empty(t, svc.Paths(), "nothing dispatches before the deadline")

	require.Eventually(t, func() bool {
		return len(svc.Paths()) == 3
	}, time.Second, 5*time.Millisecond)

	svc.mu.Lock()
	batches := svc.batches
	svc.mu.Unlock()
	assert.Equal(t, 3, batches, "items are submitted one call at a time")

	_, armed, _ = eng.Status()
	assert.False(t, armed, "waiter disarms after dispatch")
}

func TestEngine_SlidingWindowExtends(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{
		Delay:        150 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
	})

	ctx := context.Background()
	start := time.Now()
	eng.Notify(ctx, item("A", "/lib/a"))
	time.Sleep(50 * time.Millisecond)
	eng.Notify(ctx, item("B", "/lib/b"))
	time.Sleep(50 * time.Millisecond)
	eng.Notify(ctx, item("C", "/lib/c"))
	// Deadline is now ~start+250ms, past the first arrival's ~start+150ms.

	time.Sleep(170*time.Millisecond - time.Since(start))
	if time.Since(start) < 240*time.Millisecond { // guard against scheduler stalls
		assert.Empty(t, svc.Paths(), "later arrivals must push the deadline out")
	}

	require.Eventually(t, func() bool {
		return len(svc.Paths()) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestEngine_SingleWaiterForBurst(t *testing.T) {
	eng, svc, reg := newTestEngine(t, refresh.Config{
		Delay:        50 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eng.Notify(ctx, item("X", fmt.Sprintf("/lib/show/ep%02d", i)))
		}(i)
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(svc.Paths()) == 20
	}, time.Second, 5*time.Millisecond)

	// One flush cycle: the registry snapshot is taken exactly once.
	assert.Equal(t, 1, reg.Calls())

	paths := map[string]bool{}
	for _, p := range svc.Paths() {
		require.False(t, paths[p], "path %s dispatched twice", p)
		paths[p] = true
	}
}

func TestEngine_FlushEmptyQueue(t *testing.T) {
	eng, _, reg := newTestEngine(t, refresh.Config{Delay: time.Hour})

	res := eng.Flush(context.Background())

	assert.False(t, res.Dispatched)
	assert.Equal(t, "nothing pending", res.Message)
	assert.Zero(t, reg.Calls(), "empty flush must not touch the registry")
}

func TestEngine_FlushBypassesTimer(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{
		Delay:        time.Hour,
		PollInterval: 5 * time.Millisecond,
	})

	ctx := context.Background()
	eng.Notify(ctx, item("A", "/lib/showA/ep1"))
	eng.Notify(ctx, item("A", "/lib/showA/ep1")) // duplicate key
	eng.Notify(ctx, item("B", "/lib/showB/ep1"))

	res := eng.Flush(ctx)

	assert.True(t, res.Dispatched)
	assert.Equal(t, 2, res.Count)
	assert.Len(t, svc.Paths(), 2)

	// The armed waiter drains an already-empty queue and no-ops; Stop (via
	// cleanup) zeroes the deadline so it exits promptly.
	pending, _, _ := eng.Status()
	assert.Zero(t, pending)
}

func TestEngine_FlushNoLiveServices(t *testing.T) {
	reg := &fakeRegistry{services: map[string]refresh.Service{}}
	eng := refresh.NewEngine(refresh.Config{
		Delay:        time.Hour,
		Coalesce:     refresh.CoalesceByPath,
		Servers:      []string{"emby"},
		PollInterval: 5 * time.Millisecond,
	}, reg, nil, testLogger())
	defer eng.Stop()

	ctx := context.Background()
	eng.Notify(ctx, item("A", "/lib/a"))
	res := eng.Flush(ctx)

	assert.False(t, res.Dispatched)
	assert.Equal(t, "no live media servers", res.Message)
	assert.Equal(t, 1, res.Count)
}

func TestEngine_StopJoinsWaiterPromptly(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{
		Delay:        time.Hour,
		PollInterval: 5 * time.Millisecond,
	})

	eng.Notify(context.Background(), item("A", "/lib/a"))

	done := make(chan struct{})
	go func() {
		eng.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not join the waiter")
	}

	assert.Empty(t, svc.Paths(), "cleared queue must not dispatch")
}

func TestEngine_InvalidItemIgnored(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{Delay: 50 * time.Millisecond, PollInterval: 5 * time.Millisecond})

	eng.Notify(context.Background(), refresh.Item{Title: "No Path"})

	pending, armed, _ := eng.Status()
	assert.Zero(t, pending)
	assert.False(t, armed)
	assert.Empty(t, svc.Paths())
}

// Every item enqueued lands in exactly one drain: either a manual flush's
// batch or the final one, never two, never none.
func TestEngine_ConcurrentNotifyAndFlush(t *testing.T) {
	eng, svc, _ := newTestEngine(t, refresh.Config{
		Delay:        time.Hour,
		PollInterval: 5 * time.Millisecond,
	})

	ctx := context.Background()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eng.Notify(ctx, item("X", fmt.Sprintf("/lib/show/ep%03d", i)))
		}(i)
	}
	// Flush concurrently with the producers
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eng.Flush(ctx)
		}()
	}
	wg.Wait()

	// Final flush picks up whatever the concurrent flushes missed
	eng.Flush(ctx)

	paths := svc.Paths()
	assert.Len(t, paths, n)
	seen := map[string]bool{}
	for _, p := range paths {
		require.False(t, seen[p], "path %s dispatched twice", p)
		seen[p] = true
	}
}

func TestEngine_PendingSnapshot(t *testing.T) {
	eng, _, _ := newTestEngine(t, refresh.Config{Delay: time.Hour, PollInterval: 5 * time.Millisecond})

	ctx := context.Background()
	eng.Notify(ctx, item("A", "/lib/a"))
	eng.Notify(ctx, item("B", "/lib/b"))

	pending := eng.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "/lib/a", pending[0].TargetPath)
	assert.Equal(t, "/lib/b", pending[1].TargetPath)
}
