// Package tracker checks local media against private tracker search APIs.
//
// Each tracker site is an Adapter owning its own category, type and
// resolution vocabulary. A Checker composes an Adapter with the banned
// group filter and report sinks and implements the per-item flow.
package tracker

import (
	"context"
	"net/http"

	"github.com/vmunix/trumparr/internal/arr"
	"github.com/vmunix/trumparr/pkg/release"
)

// MediaKind distinguishes movie and TV searches.
type MediaKind int

const (
	KindMovie MediaKind = iota
	KindTV
)

func (k MediaKind) String() string {
	switch k {
	case KindMovie:
		return "MOVIE"
	case KindTV:
		return "TV"
	default:
		return "UNKNOWN"
	}
}

// ExternalIDs are the metadata-database IDs of a library item.
// Zero values mean "not known".
type ExternalIDs struct {
	TMDB int64
	TVDB int64
	IMDB string
}

// SearchParams describes one tracker search. Empty fields are omitted
// from the query rather than sent empty.
type SearchParams struct {
	Kind        MediaKind
	IDs         ExternalIDs
	Season      int      // 0 when not a season search
	Resolutions []string // tracker resolution tokens
	Type        string   // tracker type token, "" for no type filter
	Source      string   // normalized source, mapped by adapters that filter on it

	// GuessedSource is the source read from the file name. Adapters use it
	// when Source has no mapping in their vocabulary.
	GuessedSource string
}

// Candidate is one release returned by a tracker search.
type Candidate struct {
	Name string
}

// Adapter is the vocabulary and transport of a single tracker site.
type Adapter interface {
	// Name returns the tracker identifier used in logs and report paths.
	Name() string
	CategoryID(kind MediaKind) string
	// ResolutionTokens expands a frame height into every tracker
	// resolution it may correspond to (e.g. 1080i and 1080p).
	ResolutionTokens(height int) []string
	// TypeToken returns "" when the type must not constrain the search.
	TypeToken(c release.Classification) string
	BuildQuery(ctx context.Context, p SearchParams) (*http.Request, error)
	// ExecuteSearch returns results in tracker order; the first is the
	// top match.
	ExecuteSearch(ctx context.Context, req *http.Request) ([]Candidate, error)
	FetchBannedGroups(ctx context.Context) ([]string, error)
}

// Tracker is the per-item entry point used by the processor.
type Tracker interface {
	Name() string
	SearchMovie(ctx context.Context, movie *arr.Movie) Result
	SearchShow(ctx context.Context, series *arr.Series, season int, episode *arr.Episode) Result
	Close() error
}

// Outcome is the result of checking one item against one tracker.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeNoMediaFile
	OutcomeTrumpable
	OutcomeLocalBanned
	OutcomeSkipped
	OutcomeRateLimited
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeNoMediaFile:
		return "no_media_file"
	case OutcomeTrumpable:
		return "trumpable"
	case OutcomeLocalBanned:
		return "local_banned"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result reports what happened for one (item, tracker) pair.
type Result struct {
	Tracker        string
	Outcome        Outcome
	Classification release.Classification
	Group          string // banned group that decided the outcome, if any
	Err            error
}
