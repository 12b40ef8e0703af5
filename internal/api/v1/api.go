// Package v1 implements the native REST API.
package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/scanarr/scanarr/internal/events"
	"github.com/scanarr/scanarr/internal/mediaserver"
	"github.com/scanarr/scanarr/internal/refresh"
)

// Server is the v1 API server.
type Server struct {
	engine   *refresh.Engine
	registry *mediaserver.Registry
	bus      *events.Bus
	eventLog *events.EventLog // optional
	logger   *slog.Logger
	started  time.Time
}

// New creates a new v1 API server. The event log is optional; without it the
// history endpoint returns an empty list.
func New(engine *refresh.Engine, registry *mediaserver.Registry, bus *events.Bus, eventLog *events.EventLog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine:   engine,
		registry: registry,
		bus:      bus,
		eventLog: eventLog,
		logger:   logger,
		started:  time.Now(),
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Refresh engine
	mux.HandleFunc("POST /api/v1/flush", s.flush)
	mux.HandleFunc("GET /api/v1/pending", s.listPending)
	mux.HandleFunc("GET /api/v1/status", s.getStatus)

	// Inbound transfers
	mux.HandleFunc("POST /api/v1/transfers", s.ingestTransfer)

	// Media servers
	mux.HandleFunc("GET /api/v1/servers", s.listServers)
	mux.HandleFunc("GET /api/v1/servers/{name}/has", s.hasItem)

	// History
	mux.HandleFunc("GET /api/v1/history", s.listHistory)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// flush drains the pending queue immediately, bypassing the debounce timer.
func (s *Server) flush(w http.ResponseWriter, r *http.Request) {
	res := s.engine.Flush(r.Context())
	s.logger.Info("manual flush", "dispatched", res.Dispatched, "count", res.Count)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) listPending(w http.ResponseWriter, r *http.Request) {
	items := s.engine.Pending()
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}

// StatusResponse reports daemon and engine state.
type StatusResponse struct {
	Status   string     `json:"status"`
	Uptime   string     `json:"uptime"`
	Pending  int        `json:"pending"`
	Armed    bool       `json:"armed"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	pending, armed, deadline := s.engine.Status()

	resp := StatusResponse{
		Status:  "ok",
		Uptime:  time.Since(s.started).Round(time.Second).String(),
		Pending: pending,
		Armed:   armed,
	}
	if armed {
		resp.Deadline = &deadline
	}
	writeJSON(w, http.StatusOK, resp)
}

// TransferRequest is the payload for ingesting a transfer-complete record.
type TransferRequest struct {
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"`
	MediaType  string `json:"media_type,omitempty"`
	Category   string `json:"category,omitempty"`
	TargetPath string `json:"target_path"`
}

func (s *Server) ingestTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.TargetPath == "" {
		writeError(w, http.StatusBadRequest, "missing_target_path", "target_path is required")
		return
	}

	e := events.NewTransferComplete(req.Title, req.Year, req.MediaType, req.Category, req.TargetPath)
	if err := s.bus.Publish(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "publish_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "queued"})
}

// ServerInfo describes one configured media server and its liveness.
type ServerInfo struct {
	Name string `json:"name"`
	Live bool   `json:"live"`
}

func (s *Server) listServers(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	active := s.registry.GetActive(r.Context(), names)

	infos := make([]ServerInfo, 0, len(names))
	for _, name := range names {
		_, live := active[name]
		infos = append(infos, ServerInfo{Name: name, Live: live})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) hasItem(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	srv, ok := s.registry.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_server", "no such media server: "+name)
		return
	}

	finder, ok := srv.(mediaserver.ItemFinder)
	if !ok {
		writeError(w, http.StatusNotImplemented, "unsupported", "server does not support item lookup")
		return
	}

	q := r.URL.Query()
	itemTitle := q.Get("title")
	if itemTitle == "" {
		writeError(w, http.StatusBadRequest, "missing_title", "title query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	found, err := finder.FindItem(ctx, itemTitle, q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "lookup_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"found": found})
}

// HistoryEntry is one persisted event.
type HistoryEntry struct {
	ID         int64           `json:"id"`
	EventType  string          `json:"event_type"`
	Subject    string          `json:"subject"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	if s.eventLog == nil {
		writeJSON(w, http.StatusOK, []HistoryEntry{})
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	raw, err := s.eventLog.Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query_failed", err.Error())
		return
	}

	entries := make([]HistoryEntry, len(raw))
	for i, e := range raw {
		entries[i] = HistoryEntry{
			ID:         e.ID,
			EventType:  e.EventType,
			Subject:    e.Subject,
			Payload:    json.RawMessage(e.Payload),
			OccurredAt: e.OccurredAt,
		}
	}
	writeJSON(w, http.StatusOK, entries)
}
