package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/scanarr/scanarr/internal/events"
)

// Dispatcher drives refresh calls against the live media servers for one
// deduplicated batch. Services are processed concurrently; calls to the same
// service are serialized with a pacing pause between item refreshes, since
// some backends drop back-to-back requests.
type Dispatcher struct {
	registry Registry
	names    []string
	pace     time.Duration
	fallback bool // whole-library fallback when item refresh is unsupported
	bus      *events.Bus
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher targeting the named servers.
// The bus is optional; when set, refresh outcomes are published on it.
func NewDispatcher(registry Registry, names []string, pace time.Duration, fallback bool, bus *events.Bus, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: registry,
		names:    names,
		pace:     pace,
		fallback: fallback,
		bus:      bus,
		logger:   logger,
	}
}

// Dispatch issues refresh calls for the batch against every live service and
// returns the number of services attempted. An empty batch or zero live
// services is a no-op. Failures are logged per call and never propagate.
func (d *Dispatcher) Dispatch(ctx context.Context, items []Item) int {
	if len(items) == 0 {
		return 0
	}

	services := d.registry.GetActive(ctx, d.names)
	if len(services) == 0 {
		d.logger.Warn("no live media servers to refresh", "items", len(items))
		return 0
	}

	var wg sync.WaitGroup
	for name, svc := range services {
		wg.Add(1)
		go func(name string, svc Service) {
			defer wg.Done()
			d.refreshService(ctx, name, svc, items)
		}(name, svc)
	}
	wg.Wait()

	return len(services)
}

func (d *Dispatcher) refreshService(ctx context.Context, name string, svc Service, items []Item) {
	if ir, ok := svc.(ItemRefresher); ok {
		d.refreshByItems(ctx, name, ir, items)
		return
	}

	if lr, ok := svc.(LibraryRefresher); ok {
		if !d.fallback {
			d.logger.Warn("item refresh unsupported and fallback disabled, skipping", "server", name)
			return
		}
		d.logger.Info("item refresh unsupported, running whole-library refresh", "server", name)
		if err := lr.RefreshLibrary(ctx); err != nil {
			d.logger.Error("whole-library refresh failed", "server", name, "error", err)
			d.publishFailed(ctx, name, "", err)
			return
		}
		d.publishDispatched(ctx, name, len(items), true)
		return
	}

	d.logger.Warn("refresh interface unsupported", "server", name)
}

// refreshByItems submits items one at a time with a pacing pause, so the
// backend never sees a multi-item batch or back-to-back calls.
func (d *Dispatcher) refreshByItems(ctx context.Context, name string, ir ItemRefresher, items []Item) {
	d.logger.Info("refreshing paths", "server", name, "count", len(items))

	failed := 0
	for i, item := range items {
		d.logger.Info("refreshing path",
			"server", name,
			"path", item.TargetPath,
			"n", i+1,
			"of", len(items))

		if err := ir.RefreshItems(ctx, []Item{item}); err != nil {
			failed++
			d.logger.Error("refresh failed", "server", name, "path", item.TargetPath, "error", err)
			d.publishFailed(ctx, name, item.TargetPath, err)
		}

		if i < len(items)-1 && d.pace > 0 {
			time.Sleep(d.pace)
		}
	}

	if failed < len(items) {
		d.publishDispatched(ctx, name, len(items)-failed, false)
	}
}

func (d *Dispatcher) publishDispatched(ctx context.Context, server string, count int, fullScan bool) {
	if d.bus == nil {
		return
	}
	_ = d.bus.Publish(ctx, &events.RefreshDispatched{
		BaseEvent: events.NewBaseEvent(events.EventRefreshDispatched, server),
		Server:    server,
		ItemCount: count,
		FullScan:  fullScan,
	})
}

func (d *Dispatcher) publishFailed(ctx context.Context, server, path string, err error) {
	if d.bus == nil {
		return
	}
	_ = d.bus.Publish(ctx, &events.RefreshFailed{
		BaseEvent:  events.NewBaseEvent(events.EventRefreshFailed, server),
		Server:     server,
		TargetPath: path,
		Reason:     err.Error(),
	})
}
