package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return New(zerolog.Nop(), WithBaseURL(baseURL))
}

func TestClient_ChannelVideos(t *testing.T) {
	page := pageWithData(t, gridData(videoItem("vid1", "First Video")))

	var gotPath, gotUA, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).ChannelVideos(context.Background(), "UC123")
	require.NoError(t, err)

	assert.Equal(t, "/channel/UC123/videos", gotPath)
	assert.True(t, strings.HasPrefix(gotUA, "Mozilla/5.0"), "expected a browser-like User-Agent, got %q", gotUA)
	assert.Equal(t, "en-US,en;q=0.9", gotLang)

	assert.Equal(t, "UC123", result.ChannelID)
	require.Len(t, result.Videos, 1)
	assert.Equal(t, "vid1", result.Videos[0].VideoID)
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ChannelVideos(context.Background(), "UCmissing")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "UCmissing", notFound.ChannelID)
	assert.Contains(t, err.Error(), "UCmissing")
}

func TestClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ChannelVideos(context.Background(), "UC123")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).ChannelVideos(context.Background(), "UC123")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}

func TestClient_FollowsRedirects(t *testing.T) {
	page := pageWithData(t, gridData(videoItem("vid1", "First Video")))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/channel/UC123/videos" {
			http.Redirect(w, r, "/c/renamed/videos", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).ChannelVideos(context.Background(), "UC123")
	require.NoError(t, err)
	require.Len(t, result.Videos, 1)
}

func TestClient_NoDataBlobIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>consent wall</body></html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ChannelVideos(context.Background(), "UC123")
	require.True(t, errors.Is(err, ErrNoDataBlob))
}

func TestClient_PathEscapesChannelID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _ = newTestClient(server.URL).ChannelVideos(context.Background(), "UC/../evil")
	assert.NotContains(t, gotPath, "/../")
}
