// Package refresh implements the debounce-and-dispatch engine that coalesces
// transfer-complete notifications into batched, rate-limited library refresh
// calls against the configured media servers.
package refresh

import "path/filepath"

// MediaType classifies a refresh item's content.
type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeTV      MediaType = "tv"
	MediaTypeUnknown MediaType = ""
)

// ParseMediaType maps an inbound media type string to a MediaType.
func ParseMediaType(s string) MediaType {
	switch s {
	case "movie":
		return MediaTypeMovie
	case "tv", "series", "show":
		return MediaTypeTV
	default:
		return MediaTypeUnknown
	}
}

// Item describes one pending refresh target. Constructed once at event
// ingestion and never mutated afterward.
type Item struct {
	Title      string    `json:"title"`
	Year       string    `json:"year,omitempty"`
	MediaType  MediaType `json:"media_type"`
	Category   string    `json:"category,omitempty"`
	TargetPath string    `json:"target_path"`
}

// Valid reports whether the item can be dispatched. TargetPath is the only
// required field.
func (i Item) Valid() bool {
	return i.TargetPath != ""
}

// CoalesceMode selects the key items are deduplicated on before dispatch.
type CoalesceMode string

const (
	// CoalesceByPath dedups on the exact target path.
	CoalesceByPath CoalesceMode = "path"
	// CoalesceByDirectory dedups on the target path's parent directory, so a
	// season of episodes collapses to one refresh of the show directory.
	CoalesceByDirectory CoalesceMode = "directory"
)

// Key returns the item's coalescing key under the given mode.
func (i Item) Key(mode CoalesceMode) string {
	if mode == CoalesceByDirectory {
		return filepath.Dir(i.TargetPath)
	}
	return i.TargetPath
}
