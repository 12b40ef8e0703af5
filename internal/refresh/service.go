package refresh

import "context"

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Service is a live handle to an external media server. Capabilities beyond
// liveness are discovered by type assertion against the interfaces below,
// so a server advertises exactly what its API supports.
type Service interface {
	Name() string
}

// ItemRefresher is implemented by services that can refresh individual
// library items by path.
type ItemRefresher interface {
	RefreshItems(ctx context.Context, items []Item) error
}

// LibraryRefresher is implemented by services that can rescan the whole
// library. Used as a fallback when item-scoped refresh is unavailable.
type LibraryRefresher interface {
	RefreshLibrary(ctx context.Context) error
}

// ItemService is the capability combination of a server with item-scoped
// refresh support (Emby, Plex).
type ItemService interface {
	Service
	ItemRefresher
}

// LibraryService is the capability combination of a server that only
// supports whole-library refresh (Jellyfin).
type LibraryService interface {
	Service
	LibraryRefresher
}

// Registry is the engine's view of the configured media servers. GetActive
// returns fresh, reachable handles for the named servers; unreachable servers
// are excluded. The snapshot is taken per dispatch cycle and never cached.
type Registry interface {
	GetActive(ctx context.Context, names []string) map[string]Service
}
