package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/scanarr/scanarr/internal/events"
)

// Config holds the engine's tuning parameters.
type Config struct {
	Delay        time.Duration // quiet period before dispatch; 0 = dispatch immediately
	Coalesce     CoalesceMode  // dedup granularity
	Pace         time.Duration // pause between item-scoped refresh calls
	Fallback     bool          // whole-library fallback policy
	Servers      []string      // configured server names to target
	PollInterval time.Duration // waiter wake granularity; defaults to 1s
}

// Engine owns the pending queue and debounce state. One instance per process;
// a single mutex guards both the queue and the timer bookkeeping, held only
// for O(1) work and never across a refresh call.
type Engine struct {
	mu       sync.Mutex
	pending  []Item
	armed    bool
	deadline time.Time

	cfg        Config
	dispatcher *Dispatcher
	bus        *events.Bus
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// NewEngine creates the engine. The bus is optional; when set, queued and
// dispatched outcomes are published on it.
func NewEngine(cfg Config, registry Registry, bus *events.Bus, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	return &Engine{
		cfg:        cfg,
		dispatcher: NewDispatcher(registry, cfg.Servers, cfg.Pace, cfg.Fallback, bus, logger),
		bus:        bus,
		logger:     logger,
	}
}

// Notify records a new refresh target. With a non-zero delay the item is
// queued and the debounce deadline pushed out; with delay 0 the item is
// dispatched synchronously on the calling path.
func (e *Engine) Notify(ctx context.Context, item Item) {
	if !item.Valid() {
		return
	}

	if e.cfg.Delay <= 0 {
		e.dispatch(ctx, []Item{item})
		return
	}

	e.mu.Lock()
	e.pending = append(e.pending, item)
	e.deadline = time.Now().Add(e.cfg.Delay)
	alreadyArmed := e.armed
	e.armed = true
	e.mu.Unlock()

	e.logger.Info("queued for refresh", "path", item.TargetPath, "delay", e.cfg.Delay)
	if e.bus != nil {
		_ = e.bus.Publish(ctx, &events.RefreshQueued{
			BaseEvent:    events.NewBaseEvent(events.EventRefreshQueued, item.TargetPath),
			Title:        item.Title,
			TargetPath:   item.TargetPath,
			DelaySeconds: int(e.cfg.Delay / time.Second),
		})
	}

	if alreadyArmed {
		// A waiter is already running; it will observe the extended deadline.
		return
	}

	e.wg.Add(1)
	go e.wait(ctx)
}

// wait is the single background waiter for one debounce cycle. It sleeps in
// PollInterval increments so concurrent Notify calls can push the deadline
// forward without restarting the timer, then drains and dispatches.
func (e *Engine) wait(ctx context.Context) {
	defer e.wg.Done()

	for {
		e.mu.Lock()
		deadline := e.deadline
		e.mu.Unlock()

		if !time.Now().Before(deadline) {
			break
		}
		time.Sleep(e.cfg.PollInterval)
	}

	e.mu.Lock()
	items := e.pending
	e.pending = nil
	e.armed = false
	e.mu.Unlock()

	e.dispatch(ctx, items)
}

// dispatch dedups and dispatches a drained batch. Empty batches are a no-op,
// which makes a timer expiry after a manual flush harmless.
func (e *Engine) dispatch(ctx context.Context, items []Item) {
	if len(items) == 0 {
		return
	}
	unique := Coalesce(items, e.cfg.Coalesce)
	if len(unique) < len(items) {
		e.logger.Debug("coalesced pending items", "before", len(items), "after", len(unique))
	}
	e.dispatcher.Dispatch(ctx, unique)
}

// FlushResult is the outcome of a manual flush.
type FlushResult struct {
	Dispatched bool   `json:"dispatched"`
	Count      int    `json:"count"`
	Message    string `json:"message"`
}

// Flush drains the pending queue immediately, bypassing the timer, and
// dispatches synchronously. The debounce state is left alone: a waiter that
// is mid-sleep will later drain an empty queue and no-op.
func (e *Engine) Flush(ctx context.Context) FlushResult {
	e.mu.Lock()
	items := e.pending
	e.pending = nil
	e.mu.Unlock()

	if len(items) == 0 {
		return FlushResult{Message: "nothing pending"}
	}

	unique := Coalesce(items, e.cfg.Coalesce)
	if e.dispatcher.Dispatch(ctx, unique) == 0 {
		return FlushResult{Count: len(unique), Message: "no live media servers"}
	}
	return FlushResult{Dispatched: true, Count: len(unique), Message: "refresh dispatched"}
}

// Pending returns a snapshot of the queued items.
func (e *Engine) Pending() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Item, len(e.pending))
	copy(out, e.pending)
	return out
}

// Status reports the engine's debounce state.
func (e *Engine) Status() (pending int, armed bool, deadline time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending), e.armed, e.deadline
}

// Stop clears the in-memory debounce state and joins the waiter. The zeroed
// deadline makes an in-flight waiter's next wake observe expiry and exit;
// with the queue already cleared it dispatches nothing.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.deadline = time.Time{}
	e.pending = nil
	e.mu.Unlock()
	e.wg.Wait()
}
