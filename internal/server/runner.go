// Package server wires the daemon's components together and manages
// their lifecycle.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	v1 "github.com/scanarr/scanarr/internal/api/v1"
	"github.com/scanarr/scanarr/internal/config"
	"github.com/scanarr/scanarr/internal/events"
	"github.com/scanarr/scanarr/internal/handlers"
	"github.com/scanarr/scanarr/internal/mediaserver"
	"github.com/scanarr/scanarr/internal/refresh"
)

// Runner owns the event bus, refresh engine, transfer handler, and HTTP
// server. Run blocks until the context is canceled.
type Runner struct {
	db     *sql.DB
	config *config.Config
	logger *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

// Run starts all components and blocks until the context is canceled or a
// component fails. Shutdown drains the engine so a pending batch is never
// silently dropped.
func (r *Runner) Run(ctx context.Context) error {
	cfg := r.config

	// Event bus with persistence
	eventLog := events.NewEventLog(r.db)
	bus := events.NewBus(eventLog, r.logger.With("component", "bus"))
	defer func() { _ = bus.Close() }()

	registry, err := mediaserver.NewRegistry(cfg.MediaServers, r.logger.With("component", "mediaserver"))
	if err != nil {
		return fmt.Errorf("media servers: %w", err)
	}

	engine := refresh.NewEngine(refresh.Config{
		Delay:    time.Duration(cfg.Refresh.DelaySeconds) * time.Second,
		Coalesce: refresh.CoalesceMode(cfg.Refresh.Coalesce),
		Pace:     time.Duration(cfg.Refresh.PaceMs) * time.Millisecond,
		Fallback: cfg.Refresh.FallbackEnabled(),
		Servers:  cfg.Refresh.MediaServers,
	}, registry, bus, r.logger.With("component", "engine"))
	defer engine.Stop()

	mux := http.NewServeMux()
	api := v1.New(engine, registry, bus, eventLog, r.logger.With("component", "api"))
	api.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: logRequests(mux, r.logger)}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Refresh.Enabled {
		handler := handlers.NewTransferHandler(bus, engine, r.logger.With("component", "transfer"))
		g.Go(func() error {
			return handler.Start(ctx)
		})
	} else {
		r.logger.Warn("refresh disabled, transfer events will not be handled")
	}

	g.Go(func() error {
		r.logger.Info("http server starting",
			"addr", addr,
			"servers", len(cfg.MediaServers),
			"delay_seconds", cfg.Refresh.DelaySeconds,
			"coalesce", cfg.Refresh.Coalesce,
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
