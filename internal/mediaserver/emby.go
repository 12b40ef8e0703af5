package mediaserver

import (
	"bytes"
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

// EmbyClient interacts with the Emby server API. Emby supports path-scoped
// refresh via the media-updated endpoint, so it implements ItemRefresher
// as well as LibraryRefresher.
type EmbyClient struct {
	name       string
	baseURL    string
	apiKey     string
	mapper     pathMapper
	httpClient *http.Client
	log        *slog.Logger
}

var (
	_ Server                   = (*EmbyClient)(nil)
	_ refresh.ItemRefresher    = (*EmbyClient)(nil)
	_ refresh.LibraryRefresher = (*EmbyClient)(nil)
	_ ItemFinder               = (*EmbyClient)(nil)
)

// NewEmbyClient creates a new Emby client.
func NewEmbyClient(name, baseURL, apiKey string, log *slog.Logger) *EmbyClient {
	if log == nil {
		log = slog.Default()
	}
	return &EmbyClient{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		log:     log.With("component", "emby", "server", name),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithPathMapping sets local-to-remote path translation and returns the client.
func (c *EmbyClient) WithPathMapping(local, remote string) *EmbyClient {
	c.mapper = pathMapper{local: local, remote: remote}
	return c
}

// Name returns the configured server name.
func (c *EmbyClient) Name() string { return c.name }

// Ping checks the server is reachable and the API key works.
func (c *EmbyClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/System/Info?api_key="+url.QueryEscape(c.apiKey), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

// mediaUpdate is one entry of the media-updated request body.
type mediaUpdate struct {
	Path       string `json:"Path"`
	UpdateType string `json:"UpdateType"`
}

type mediaUpdatedRequest struct {
	Updates []mediaUpdate `json:"Updates"`
}

// RefreshItems notifies Emby that the items' paths changed, triggering a
// scoped scan of each location.
func (c *EmbyClient) RefreshItems(ctx context.Context, items []refresh.Item) error {
	updates := make([]mediaUpdate, len(items))
	for i, item := range items {
		updates[i] = mediaUpdate{
			Path:       c.mapper.toRemote(item.TargetPath),
			UpdateType: "Created",
		}
	}

	body, err := json.Marshal(mediaUpdatedRequest{Updates: updates})
	if err != nil {
		return fmt.Errorf("marshal updates: %w", err)
	}

	reqURL := c.baseURL + "/Library/Media/Updated?api_key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("media updated failed with status: %d", resp.StatusCode)
	}

	c.log.Debug("media updated", "paths", len(updates), "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// RefreshLibrary triggers a full library scan.
func (c *EmbyClient) RefreshLibrary(ctx context.Context) error {
	reqURL := c.baseURL + "/Library/Refresh?api_key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("library refresh failed with status: %d", resp.StatusCode)
	}
	return nil
}

// embyItem is one search result from /Items.
type embyItem struct {
	Name           string `json:"Name"`
	ProductionYear int    `json:"ProductionYear"`
	Type           string `json:"Type"`
}

type embyItemsResponse struct {
	Items []embyItem `json:"Items"`
}

// FindItem checks whether the library contains a title. Matching uses
// normalized fuzzy comparison and tolerates the year being off by one.
func (c *EmbyClient) FindItem(ctx context.Context, itemTitle, year string) (bool, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("SearchTerm", itemTitle)
	q.Set("Recursive", "true")
	q.Set("IncludeItemTypes", "Movie,Series")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/Items?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result embyItemsResponse
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

// yearClose tolerates release-year vs theatrical-year mismatches.
func yearClose(got, want int) bool {
	diff := got - want
	return diff >= -1 && diff <= 1
}
