package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the scanarr daemon.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new scanarr API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status   string     `json:"status"`
	Uptime   string     `json:"uptime"`
	Pending  int        `json:"pending"`
	Armed    bool       `json:"armed"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

type PendingItem struct {
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"`
	MediaType  string `json:"media_type"`
	Category   string `json:"category,omitempty"`
	TargetPath string `json:"target_path"`
}

type PendingResponse struct {
	Count int           `json:"count"`
	Items []PendingItem `json:"items"`
}

type FlushResponse struct {
	Dispatched bool   `json:"dispatched"`
	Count      int    `json:"count"`
	Message    string `json:"message"`
}

type ServerInfo struct {
	Name string `json:"name"`
	Live bool   `json:"live"`
}

type HasResponse struct {
	Found bool `json:"found"`
}

type HistoryEntry struct {
	ID         int64           `json:"id"`
	EventType  string          `json:"event_type"`
	Subject    string          `json:"subject"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (c *Client) Status() (*StatusResponse, error) {
	var status StatusResponse
	if err := c.get("/api/v1/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) Pending() (*PendingResponse, error) {
	var pending PendingResponse
	if err := c.get("/api/v1/pending", &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (c *Client) Flush() (*FlushResponse, error) {
	var res FlushResponse
	if err := c.post("/api/v1/flush", map[string]any{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Servers() ([]ServerInfo, error) {
	var servers []ServerInfo
	if err := c.get("/api/v1/servers", &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

func (c *Client) Has(server, title, year string) (*HasResponse, error) {
	q := url.Values{}
	q.Set("title", title)
	if year != "" {
		q.Set("year", year)
	}
	var res HasResponse
	path := fmt.Sprintf("/api/v1/servers/%s/has?%s", url.PathEscape(server), q.Encode())
	if err := c.get(path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) History(limit int) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	path := fmt.Sprintf("/api/v1/history?limit=%d", limit)
	if err := c.get(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type TransferRequest struct {
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"`
	MediaType  string `json:"media_type,omitempty"`
	Category   string `json:"category,omitempty"`
	TargetPath string `json:"target_path"`
}

func (c *Client) Notify(req TransferRequest) error {
	return c.post("/api/v1/transfers", req, nil)
}
