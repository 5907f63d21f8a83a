package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptLanguage   = "en-US,en;q=0.9"
)

// HTTPClient is the outbound transport; *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different page origin (used in tests).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient swaps the outbound transport.
func WithHTTPClient(hc HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client fetches public channel pages and turns them into typed results.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient HTTPClient
	extractor  *Extractor
	log        zerolog.Logger
}

// New creates a client with sane defaults.
func New(log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.extractor = NewExtractor(log)
	return c
}

// ChannelVideos fetches the channel's videos tab and extracts its grid.
// The page is fetched exactly once; no retries, no caching.
func (c *Client) ChannelVideos(ctx context.Context, channelID string) (ChannelVideosResult, error) {
	page, err := c.fetchVideosPage(ctx, channelID)
	if err != nil {
		c.log.Error().Str("channel_id", channelID).Err(err).Msg("error fetching channel page")
		return ChannelVideosResult{}, err
	}
	return c.extractor.Extract(page, channelID)
}

// fetchVideosPage performs the single outbound GET. YouTube serves a
// stripped page to unbranded clients, so the request carries a desktop
// browser User-Agent and Accept-Language. Redirects follow the default
// http.Client policy.
func (c *Client) fetchVideosPage(ctx context.Context, channelID string) (string, error) {
	pageURL := fmt.Sprintf("%s/channel/%s/videos", c.baseURL, url.PathEscape(channelID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", &NotFoundError{ChannelID: channelID}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	return string(body), nil
}
