package mediaserver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/scanarr/scanarr/internal/config"
	"github.com/scanarr/scanarr/internal/refresh"
)

// pingTimeout bounds the liveness probe so one dead server cannot stall a
// dispatch cycle.
const pingTimeout = 5 * time.Second

// Registry holds the configured media server clients and hands out live
// handles to the refresh engine. Liveness is probed fresh on every
// GetActive call; nothing is cached between dispatch cycles.
type Registry struct {
	servers map[string]Server
	logger  *slog.Logger
}

var _ refresh.Registry = (*Registry)(nil)

// NewRegistry builds clients for every configured server.
func NewRegistry(cfgs map[string]config.MediaServerConfig, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	servers := make(map[string]Server, len(cfgs))
	for name, cfg := range cfgs {
		srv, err := newServer(name, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("mediaserver %s: %w", name, err)
		}
		servers[name] = srv
	}

	return &Registry{servers: servers, logger: logger.With("component", "registry")}, nil
}

func newServer(name string, cfg config.MediaServerConfig, logger *slog.Logger) (Server, error) {
	local, remote := "", ""
	if cfg.PathMapping != nil {
		local, remote = cfg.PathMapping.Local, cfg.PathMapping.Remote
	}

	switch cfg.Type {
	case "emby":
		return NewEmbyClient(name, cfg.URL, cfg.APIKey, logger).WithPathMapping(local, remote), nil
	case "jellyfin":
		return NewJellyfinClient(name, cfg.URL, cfg.APIKey, logger), nil
	case "plex":
		return NewPlexClient(name, cfg.URL, cfg.APIKey, logger).WithPathMapping(local, remote), nil
	default:
		return nil, fmt.Errorf("unknown server type %q", cfg.Type)
	}
}

// Get returns the named server client, configured or not.
func (r *Registry) Get(name string) (Server, bool) {
	srv, ok := r.servers[name]
	return srv, ok
}

// Names returns all configured server names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.servers))
	for name := range r.servers {
		names = append(names, name)
	}
	return names
}

// GetActive pings the named servers concurrently and returns only the
// reachable ones. Unknown names and dead servers are logged and excluded.
func (r *Registry) GetActive(ctx context.Context, names []string) map[string]refresh.Service {
	type result struct {
		name string
		srv  Server
	}

	var (
		mu     sync.Mutex
		active = make(map[string]refresh.Service)
		wg     sync.WaitGroup
	)

	for _, name := range names {
		srv, ok := r.servers[name]
		if !ok {
			r.logger.Warn("media server not configured", "server", name)
			continue
		}

		wg.Add(1)
		go func(res result) {
			defer wg.Done()

			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()

			if err := res.srv.Ping(pingCtx); err != nil {
				r.logger.Warn("media server unreachable", "server", res.name, "error", err)
				return
			}

			mu.Lock()
			active[res.name] = res.srv
			mu.Unlock()
		}(result{name: name, srv: srv})
	}
	wg.Wait()

	return active
}
