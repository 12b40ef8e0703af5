package mediaserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/scanarr/scanarr/internal/refresh"
	"github.com/scanarr/scanarr/pkg/title"
)

// JellyfinClient interacts with the Jellyfin server API. Jellyfin's
// path-scoped refresh endpoint is unreliable across versions, so the client
// only exposes whole-library refresh; the dispatcher's fallback policy
// decides whether that runs.
type JellyfinClient struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

var (
	_ Server                   = (*JellyfinClient)(nil)
	_ refresh.LibraryRefresher = (*JellyfinClient)(nil)
	_ ItemFinder               = (*JellyfinClient)(nil)
)

// NewJellyfinClient creates a new Jellyfin client.
func NewJellyfinClient(name, baseURL, apiKey string, log *slog.Logger) *JellyfinClient {
	if log == nil {
		log = slog.Default()
	}
	return &JellyfinClient{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		log:     log.With("component", "jellyfin", "server", name),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name returns the configured server name.
func (c *JellyfinClient) Name() string { return c.name }

func (c *JellyfinClient) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf(`MediaBrowser Token=%q`, c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Ping checks the server is reachable and the token works.
func (c *JellyfinClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/System/Info")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

// RefreshLibrary triggers a scan of all libraries.
func (c *JellyfinClient) RefreshLibrary(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/Library/Refresh")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("library refresh failed with status: %d", resp.StatusCode)
	}
	return nil
}

type jellyfinItemsResponse struct {
	Items []struct {
		Name           string `json:"Name"`
		ProductionYear int    `json:"ProductionYear"`
	} `json:"Items"`
}

// FindItem checks whether the library contains a title.
func (c *JellyfinClient) FindItem(ctx context.Context, itemTitle, year string) (bool, error) {
	q := url.Values{}
	q.Set("searchTerm", itemTitle)
	q.Set("recursive", "true")
	q.Set("includeItemTypes", "Movie,Series")

	resp, err := c.do(ctx, http.MethodGet, "/Items?"+q.Encode())
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result jellyfinItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}

	wantYear, _ := strconv.Atoi(year)
	for _, item := range result.Items {
		if !title.Match(itemTitle, item.Name) {
			continue
		}
		if wantYear == 0 || yearClose(item.ProductionYear, wantYear) {
			return true, nil
		}
	}
	return false, nil
}
