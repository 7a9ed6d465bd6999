package arr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MovieSource lists movies from a library manager.
type MovieSource interface {
	ListMovies(ctx context.Context) ([]Movie, error)
}

// ShowSource lists series and their episodes from a library manager.
type ShowSource interface {
	ListSeries(ctx context.Context) ([]Series, error)
	ListEpisodes(ctx context.Context, seriesID int64, seasonNumber int) ([]Episode, error)
}

// Option configures a client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithAPISuffix overrides the listing endpoint path.
func WithAPISuffix(suffix string) Option {
	return func(c *client) {
		if suffix != "" {
			c.apiSuffix = suffix
		}
	}
}

// client holds what Radarr and Sonarr have in common: a base URL and
// a static X-Api-Key header.
type client struct {
	baseURL    string
	apiKey     string
	apiSuffix  string
	httpClient *http.Client
}

func newClient(baseURL, apiKey, defaultSuffix string, opts []Option) client {
	c := client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		apiSuffix: defaultSuffix,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// getJSON issues a GET against path and decodes the body into out.
func (c *client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidAPIKey
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
