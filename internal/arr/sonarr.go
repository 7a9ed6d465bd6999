package arr

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultSonarrSuffix = "/api/v3/series"
	sonarrEpisodePath   = "/api/v3/episode"
)

// SonarrClient lists series and episodes from Sonarr.
type SonarrClient struct {
	client
}

// NewSonarrClient creates a Sonarr client for baseURL (e.g. "http://localhost:8989").
func NewSonarrClient(baseURL, apiKey string, opts ...Option) *SonarrClient {
	return &SonarrClient{client: newClient(baseURL, apiKey, defaultSonarrSuffix, opts)}
}

// ListSeries returns every series ordered by title.
func (c *SonarrClient) ListSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.getJSON(ctx, c.apiSuffix, nil, &series); err != nil {
		return nil, fmt.Errorf("sonarr: list series: %w", err)
	}
	sort.SliceStable(series, func(i, j int) bool {
		return strings.ToLower(series[i].Title) < strings.ToLower(series[j].Title)
	})
	return series, nil
}

// ListEpisodes returns the episodes of one season, including file details.
func (c *SonarrClient) ListEpisodes(ctx context.Context, seriesID int64, seasonNumber int) ([]Episode, error) {
	params := url.Values{}
	params.Set("seriesId", strconv.FormatInt(seriesID, 10))
	params.Set("seasonNumber", strconv.Itoa(seasonNumber))
	params.Set("includeSeries", "false")
	params.Set("includeEpisodeFile", "true")
	params.Set("includeImages", "false")

	var episodes []Episode
	if err := c.getJSON(ctx, sonarrEpisodePath, params, &episodes); err != nil {
		return nil, fmt.Errorf("sonarr: list episodes for series %d season %d: %w", seriesID, seasonNumber, err)
	}
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].EpisodeNumber < episodes[j].EpisodeNumber
	})
	return episodes, nil
}
