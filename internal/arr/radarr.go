package arr

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const defaultRadarrSuffix = "/api/v3/movie"

// RadarrClient lists movies from Radarr.
type RadarrClient struct {
	client
}

// NewRadarrClient creates a Radarr client for baseURL (e.g. "http://localhost:7878").
func NewRadarrClient(baseURL, apiKey string, opts ...Option) *RadarrClient {
	return &RadarrClient{client: newClient(baseURL, apiKey, defaultRadarrSuffix, opts)}
}

// ListMovies returns every movie ordered by title.
func (c *RadarrClient) ListMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.getJSON(ctx, c.apiSuffix, nil, &movies); err != nil {
		return nil, fmt.Errorf("radarr: list movies: %w", err)
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return strings.ToLower(movies[i].Title) < strings.ToLower(movies[j].Title)
	})
	return movies, nil
}
