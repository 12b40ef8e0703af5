package mediaserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanarr/scanarr/internal/mediaserver"
)

func TestJellyfinClient_RefreshLibrary(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `MediaBrowser Token="key"`, r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Library/Refresh", r.URL.Path)
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := mediaserver.NewJellyfinClient("jellyfin", srv.URL, "key", testLogger())
	require.NoError(t, c.RefreshLibrary(context.Background()))
	assert.True(t, called)
}

func TestJellyfinClient_Ping_Unreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	c := mediaserver.NewJellyfinClient("jellyfin", srv.URL, "key", testLogger())
	assert.Error(t, c.Ping(context.Background()))
}
