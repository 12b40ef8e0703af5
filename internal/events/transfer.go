package events

// Event type constants.
const (
	EventTransferComplete = "transfer.complete"

	EventRefreshQueued     = "refresh.queued"
	EventRefreshDispatched = "refresh.dispatched"
	EventRefreshFailed     = "refresh.failed"
)

// TransferComplete is emitted when an import finishes moving content into the
// library. TargetPath is the on-disk location the transfer produced.
type TransferComplete struct {
	BaseEvent
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"`
	MediaType  string `json:"media_type"` // "movie", "tv", or "" when unknown
	Category   string `json:"category,omitempty"`
	TargetPath string `json:"target_path"`
}

// NewTransferComplete creates a TransferComplete event keyed by target path.
func NewTransferComplete(title, year, mediaType, category, targetPath string) *TransferComplete {
	return &TransferComplete{
		BaseEvent:  NewBaseEvent(EventTransferComplete, targetPath),
		Title:      title,
		Year:       year,
		MediaType:  mediaType,
		Category:   category,
		TargetPath: targetPath,
	}
}
