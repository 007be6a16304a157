package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sentinel errors for the two upstream failure classes the handlers care
// about. Transport failures surface as the wrapped net/http error.
var (
	// ErrUpstreamStatus indicates the feed answered with a non-2xx status.
	ErrUpstreamStatus = errors.New("catalog: upstream returned non-success status")
	// ErrBadShape indicates the response body was not the expected JSON
	// array of categories.
	ErrBadShape = errors.New("catalog: unexpected feed shape")
)

// maxFeedBytes bounds how much of the upstream response is read. The real
// feed is a few hundred kilobytes.
const maxFeedBytes = 16 << 20

// Client fetches and normalizes the remote catalog feed.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client for the given feed URL. The timeout bounds the
// whole fetch, including the body read.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch performs one GET of the feed and returns the normalized catalog.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	body, err := c.FetchBody(ctx)
	if err != nil {
		return nil, err
	}
	normalized, _, err := Inspect(body)
	return normalized, err
}

// FetchBody performs one GET of the feed and returns the raw body. The CLI
// uses it to inspect a feed snapshot without normalizing twice.
func (c *Client) FetchBody(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("catalog: read feed body: %w", err)
	}
	return body, nil
}
