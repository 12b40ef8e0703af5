package mediaserver

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/scanarr/scanarr/internal/refresh"
	"github.com/scanarr/scanarr/pkg/title"
)

// PlexClient interacts with the Plex Media Server API. Item-scoped refresh
// maps to a partial scan of the section location containing the item's path.
type PlexClient struct {
	name       string
	baseURL    string
	token      string
	mapper     pathMapper
	httpClient *http.Client
	log        *slog.Logger
}

var (
	_ Server                   = (*PlexClient)(nil)
	_ refresh.ItemRefresher    = (*PlexClient)(nil)
	_ refresh.LibraryRefresher = (*PlexClient)(nil)
	_ ItemFinder               = (*PlexClient)(nil)
)

// NewPlexClient creates a new Plex client.
func NewPlexClient(name, baseURL, token string, log *slog.Logger) *PlexClient {
	if log == nil {
		log = slog.Default()
	}
	return &PlexClient{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		log:     log.With("component", "plex", "server", name),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithPathMapping sets local-to-remote path translation and returns the client.
func (c *PlexClient) WithPathMapping(local, remote string) *PlexClient {
	c.mapper = pathMapper{local: local, remote: remote}
	return c
}

// Name returns the configured server name.
func (c *PlexClient) Name() string { return c.name }

func (c *PlexClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if result != nil {
		if err := xml.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// identityResponse is the XML response from the root endpoint.
type identityResponse struct {
	XMLName      xml.Name `xml:"MediaContainer"`
	FriendlyName string   `xml:"friendlyName,attr"`
	Version      string   `xml:"version,attr"`
}

// Ping checks the server is reachable and the token works.
func (c *PlexClient) Ping(ctx context.Context) error {
	var result identityResponse
	return c.get(ctx, "/", &result)
}

// Section represents a Plex library section.
type Section struct {
	Key       string     `xml:"key,attr"`
	Title     string     `xml:"title,attr"`
	Type      string     `xml:"type,attr"`
	Locations []Location `xml:"Location"`
}

// Location represents a library section's filesystem location.
type Location struct {
	Path string `xml:"path,attr"`
}

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name  `xml:"MediaContainer"`
	Sections []Section `xml:"Directory"`
}

// GetSections returns all library sections.
func (c *PlexClient) GetSections(ctx context.Context) ([]Section, error) {
	var result sectionsResponse
	if err := c.get(ctx, "/library/sections", &result); err != nil {
		return nil, err
	}
	return result.Sections, nil
}

// RefreshItems triggers a partial scan for each item's containing directory.
func (c *PlexClient) RefreshItems(ctx context.Context, items []refresh.Item) error {
	sections, err := c.GetSections(ctx)
	if err != nil {
		return fmt.Errorf("get sections: %w", err)
	}

	for _, item := range items {
		if err := c.scanPath(ctx, sections, item.TargetPath); err != nil {
			return err
		}
	}
	return nil
}

// scanPath triggers a partial scan of the directory containing the path.
func (c *PlexClient) scanPath(ctx context.Context, sections []Section, localPath string) error {
	remotePath := c.mapper.toRemote(localPath)
	remoteDir := filepath.Dir(remotePath)

	// Find the section that contains this path
	var sectionKey string
	for _, section := range sections {
		for _, loc := range section.Locations {
			if strings.HasPrefix(remoteDir, loc.Path) || strings.HasPrefix(remotePath, loc.Path) {
				sectionKey = section.Key
				break
			}
		}
		if sectionKey != "" {
			break
		}
	}

	if sectionKey == "" {
		return fmt.Errorf("no library section found for path: %s (translated: %s)", localPath, remotePath)
	}

	start := time.Now()
	scanPath := fmt.Sprintf("/library/sections/%s/refresh?path=%s", sectionKey, url.QueryEscape(remoteDir))
	if err := c.get(ctx, scanPath, nil); err != nil {
		return fmt.Errorf("scan section %s: %w", sectionKey, err)
	}

	c.log.Debug("scan triggered", "section", sectionKey, "path", remoteDir, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// RefreshLibrary triggers a full scan of every library section.
func (c *PlexClient) RefreshLibrary(ctx context.Context) error {
	sections, err := c.GetSections(ctx)
	if err != nil {
		return fmt.Errorf("get sections: %w", err)
	}

	for _, section := range sections {
		if err := c.get(ctx, fmt.Sprintf("/library/sections/%s/refresh", section.Key), nil); err != nil {
			return fmt.Errorf("refresh section %s: %w", section.Key, err)
		}
	}
	return nil
}

// plexItemXML is the XML representation of a search result.
type plexItemXML struct {
	Title string `xml:"title,attr"`
	Year  int    `xml:"year,attr"`
	Type  string `xml:"type,attr"`
}

// searchResponse is the XML response from /search.
type searchResponse struct {
	XMLName     xml.Name      `xml:"MediaContainer"`
	Videos      []plexItemXML `xml:"Video"`     // Movies, episodes
	Directories []plexItemXML `xml:"Directory"` // TV shows
}

// FindItem checks whether the library contains a title. Matching uses
// normalized fuzzy comparison and tolerates the year being off by one.
func (c *PlexClient) FindItem(ctx context.Context, itemTitle, year string) (bool, error) {
	var result searchResponse
	if err := c.get(ctx, "/search?query="+url.QueryEscape(itemTitle), &result); err != nil {
		return false, err
	}

	candidates := make([]plexItemXML, 0, len(result.Videos)+len(result.Directories))
	candidates = append(candidates, result.Videos...)
	candidates = append(candidates, result.Directories...)

	wantYear, _ := strconv.Atoi(year)
	for _, item := range candidates {
		if item.Type != "movie" && item.Type != "show" {
			continue
		}
		if !title.Match(itemTitle, item.Title) {
			continue
		}
		if wantYear == 0 || yearClose(item.Year, wantYear) {
			return true, nil
		}
	}
	return false, nil
}
