// Package arr provides read-only clients for the Radarr and Sonarr APIs.
package arr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/vmunix/trumparr/pkg/release"
)

// StringList decodes a JSON string, array of strings, or null.
// Library managers and filename guessers disagree on whether quality tags
// are scalar or list-valued.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("string list: %w", err)
		}
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	if single == "" {
		*s = nil
		return nil
	}
	*s = StringList{single}
	return nil
}

// QualityDefinition is the inner quality record ("quality.quality").
type QualityDefinition struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Source     StringList `json:"source"`
	Modifier   StringList `json:"modifier"`
	Resolution int        `json:"resolution"`
}

// Quality wraps the quality definition with revision info.
type Quality struct {
	Quality QualityDefinition `json:"quality"`
}

// MediaInfo carries probed stream details.
type MediaInfo struct {
	Resolution string `json:"resolution"` // "1920x1080"
}

// MediaFile is the local file attached to a movie or episode.
type MediaFile struct {
	ID           int64      `json:"id"`
	Path         string     `json:"path"`
	RelativePath string     `json:"relativePath"`
	ReleaseGroup string     `json:"releaseGroup"`
	Quality      *Quality   `json:"quality"`
	MediaInfo    *MediaInfo `json:"mediaInfo"`
}

// QualityInput converts the file's quality data for classification.
// Sonarr reports no modifier; the compacted quality name ("WEBDL-1080p" ->
// "webdl1080p") stands in for it so modifier-based rules still apply.
func (f *MediaFile) QualityInput() release.QualityInput {
	var in release.QualityInput
	if f == nil {
		return in
	}
	if f.Quality != nil {
		q := f.Quality.Quality
		in.Source = q.Source
		in.Modifier = q.Modifier
		in.Resolution = q.Resolution
		if len(in.Modifier) == 0 && q.Name != "" {
			in.Modifier = []string{compactName(q.Name)}
		}
	}
	if f.MediaInfo != nil {
		in.MediaInfoResolution = f.MediaInfo.Resolution
	}
	return in
}

func compactName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Movie is a Radarr movie resource.
type Movie struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	TMDBID    int64      `json:"tmdbId"`
	IMDBID    string     `json:"imdbId"`
	HasFile   bool       `json:"hasFile"`
	MovieFile *MediaFile `json:"movieFile"`
}

// SeasonStatistics holds per-season file counts.
type SeasonStatistics struct {
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Season is a series season descriptor.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics"`
}

// Eligible reports whether the season should be checked: specials and
// incomplete seasons are skipped.
func (s Season) Eligible() bool {
	return s.SeasonNumber > 0 && s.Statistics != nil && s.Statistics.PercentOfEpisodes == 100
}

// Series is a Sonarr series resource.
type Series struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Year    int      `json:"year"`
	TVDBID  int64    `json:"tvdbId"`
	TMDBID  int64    `json:"tmdbId"`
	IMDBID  string   `json:"imdbId"`
	Seasons []Season `json:"seasons"`
}

// Episode is a Sonarr episode resource.
type Episode struct {
	ID            int64      `json:"id"`
	SeriesID      int64      `json:"seriesId"`
	SeasonNumber  int        `json:"seasonNumber"`
	EpisodeNumber int        `json:"episodeNumber"`
	Title         string     `json:"title"`
	HasFile       bool       `json:"hasFile"`
	EpisodeFile   *MediaFile `json:"episodeFile"`
}
