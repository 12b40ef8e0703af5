// internal/handlers/transfer.go
package handlers

import (
	"context"
	"log/slog"

	"github.com/scanarr/scanarr/internal/events"
	"github.com/scanarr/scanarr/internal/refresh"
)

// Notifier is the engine surface the handler feeds.
type Notifier interface {
	Notify(ctx context.Context, item refresh.Item)
}

// TransferHandler turns transfer-complete events into pending refresh items.
type TransferHandler struct {
	bus    *events.Bus
	engine Notifier
	logger *slog.Logger
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(bus *events.Bus, engine Notifier, logger *slog.Logger) *TransferHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransferHandler{
		bus:    bus,
		engine: engine,
		logger: logger,
	}
}

// Name returns the handler name.
func (h *TransferHandler) Name() string {
	return "transfer"
}

// Start begins processing events.
func (h *TransferHandler) Start(ctx context.Context) error {
	completed := h.bus.Subscribe(events.EventTransferComplete, 100)

	for {
		select {
		case e := <-completed:
			if e == nil {
				return nil // Channel closed
			}
			h.handleTransferComplete(ctx, e.(*events.TransferComplete))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *TransferHandler) handleTransferComplete(ctx context.Context, e *events.TransferComplete) {
	// A transfer record without a target path carries nothing to refresh.
	// Dropped silently per the malformed-event policy.
	if e.TargetPath == "" {
		h.logger.Debug("transfer event without target path, ignoring", "title", e.Title)
		return
	}

	h.engine.Notify(ctx, refresh.Item{
		Title:      e.Title,
		Year:       e.Year,
		MediaType:  refresh.ParseMediaType(e.MediaType),
		Category:   e.Category,
		TargetPath: e.TargetPath,
	})
}
