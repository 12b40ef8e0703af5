package mediaserver_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanarr/scanarr/internal/mediaserver"
	"github.com/scanarr/scanarr/internal/refresh"
)

const plexSectionsXML = `<?xml version="1.0" encoding="UTF-8"?>
<MediaContainer size="2">
  <Directory key="1" title="Movies" type="movie">
    <Location path="/data/movies"/>
  </Directory>
  <Directory key="2" title="TV Shows" type="show">
    <Location path="/data/tv"/>
  </Directory>
</MediaContainer>`

func newPlexTestServer(t *testing.T, scans *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.Header.Get("X-Plex-Token"))
		switch {
		case r.URL.Path == "/":
			fmt.Fprint(w, `<MediaContainer friendlyName="plex" version="1.40"/>`)
		case r.URL.Path == "/library/sections":
			fmt.Fprint(w, plexSectionsXML)
		case r.URL.Path == "/library/sections/1/refresh" || r.URL.Path == "/library/sections/2/refresh":
			if scans != nil {
				*scans = append(*scans, r.URL.Path+"?path="+r.URL.Query().Get("path"))
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestPlexClient_Ping(t *testing.T) {
	srv := newPlexTestServer(t, nil)
	defer srv.Close()

	c := mediaserver.NewPlexClient("plex", srv.URL, "token", testLogger())
	assert.NoError(t, c.Ping(context.Background()))
}

func TestPlexClient_RefreshItems_ScansContainingSection(t *testing.T) {
	var scans []string
	srv := newPlexTestServer(t, &scans)
	defer srv.Close()

	c := mediaserver.NewPlexClient("plex", srv.URL, "token", testLogger()).
		WithPathMapping("/mnt/media", "/data")

	err := c.RefreshItems(context.Background(), []refresh.Item{
		{Title: "Show A", TargetPath: "/mnt/media/tv/Show A/S01E01.mkv"},
	})
	require.NoError(t, err)

	require.Len(t, scans, 1)
	assert.Equal(t, "/library/sections/2/refresh?path=/data/tv/Show A", scans[0])
}

func TestPlexClient_RefreshItems_NoSectionForPath(t *testing.T) {
	srv := newPlexTestServer(t, nil)
	defer srv.Close()

	c := mediaserver.NewPlexClient("plex", srv.URL, "token", testLogger())
	err := c.RefreshItems(context.Background(), []refresh.Item{
		{TargetPath: "/somewhere/else/file.mkv"},
	})
	assert.ErrorContains(t, err, "no library section found")
}

func TestPlexClient_RefreshLibrary_ScansAllSections(t *testing.T) {
	var scans []string
	srv := newPlexTestServer(t, &scans)
	defer srv.Close()

	c := mediaserver.NewPlexClient("plex", srv.URL, "token", testLogger())
	require.NoError(t, c.RefreshLibrary(context.Background()))
	assert.Len(t, scans, 2)
}

func TestPlexClient_FindItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<MediaContainer size="2">
  <Video title="Blade Runner 2049" year="2017" type="movie"/>
  <Directory title="Blade Runner: The Series" year="0" type="show"/>
</MediaContainer>`)
	}))
	defer srv.Close()

	c := mediaserver.NewPlexClient("plex", srv.URL, "token", testLogger())

	found, err := c.FindItem(context.Background(), "Blade Runner 2049", "2017")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = c.FindItem(context.Background(), "Blade Runner 2049", "1982")
	require.NoError(t, err)
	assert.False(t, found)
}
