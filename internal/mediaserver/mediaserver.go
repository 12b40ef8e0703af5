// Package mediaserver implements clients for the external library-indexing
// services scanarr notifies (Emby, Jellyfin, Plex) and the registry that
// hands live handles to the refresh engine.
package mediaserver

import (
	"context"
	"strings"

	"github.com/scanarr/scanarr/internal/refresh"
)

// Server is a configured media server client. Liveness is probed per
// dispatch cycle; refresh capabilities are discovered by type assertion
// against the refresh package's interfaces.
type Server interface {
	refresh.Service
	Ping(ctx context.Context) error
}

// ItemFinder is implemented by servers that can verify a title's presence
// in their library after a refresh.
type ItemFinder interface {
	FindItem(ctx context.Context, title, year string) (bool, error)
}

// pathMapper translates local paths to the paths a server sees
// (e.g. for Docker volume mounts). Zero value is the identity mapping.
type pathMapper struct {
	local  string
	remote string
}

func (m pathMapper) toRemote(path string) string {
	if m.local == "" || m.remote == "" {
		return path
	}
	if strings.HasPrefix(path, m.local) {
		return m.remote + path[len(m.local):]
	}
	return path
}
