package events

// RefreshQueued is emitted when an item enters the pending refresh queue.
type RefreshQueued struct {
	BaseEvent
	Title        string `json:"title"`
	TargetPath   string `json:"target_path"`
	DelaySeconds int    `json:"delay_seconds"`
}

// RefreshDispatched is emitted after a server successfully processed a batch.
type RefreshDispatched struct {
	BaseEvent
	Server    string `json:"server"`
	ItemCount int    `json:"item_count"`
	FullScan  bool   `json:"full_scan"` // true when a whole-library fallback ran
}

// RefreshFailed is emitted when a server's refresh call failed.
type RefreshFailed struct {
	BaseEvent
	Server     string `json:"server"`
	TargetPath string `json:"target_path,omitempty"`
	Reason     string `json:"reason"`
}
