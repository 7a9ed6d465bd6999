package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/vmunix/trumparr/internal/arr"
	"github.com/vmunix/trumparr/internal/report"
	"github.com/vmunix/trumparr/pkg/release"
)

// Sink receives report lines for one media kind.
type Sink interface {
	NotFound(line string) error
	Trump(file, reason string) error
	Close() error
}

// Checker runs the per-item check flow for one tracker. The banned group
// set and the sinks belong to this Checker alone.
type Checker struct {
	adapter Adapter
	sinks   map[MediaKind]Sink
	guesser release.Guesser
	banned  *BannedGroups
	log     *slog.Logger

	loadMu sync.Mutex
}

// NewChecker composes adapter with its report sinks. A kind without a sink
// is checked and logged but nothing is written for it.
func NewChecker(adapter Adapter, sinks map[MediaKind]Sink, guesser release.Guesser, log *slog.Logger) *Checker {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("tracker", adapter.Name())
	if sinks == nil {
		sinks = make(map[MediaKind]Sink)
	}
	return &Checker{
		adapter: adapter,
		sinks:   sinks,
		guesser: guesser,
		banned:  NewBannedGroups(log),
		log:     log,
	}
}

// Name returns the adapter's tracker name.
func (c *Checker) Name() string {
	return c.adapter.Name()
}

// BannedGroups exposes the checker's banned group set.
func (c *Checker) BannedGroups() *BannedGroups {
	return c.banned
}

// item is one library entry reduced to what the check flow needs.
type item struct {
	kind   MediaKind
	title  string
	file   *arr.MediaFile
	report string // path written to the sinks, "" when none
	params SearchParams
}

// SearchMovie checks one movie.
func (c *Checker) SearchMovie(ctx context.Context, movie *arr.Movie) Result {
	it := item{
		kind:  KindMovie,
		title: movie.Title,
		file:  movie.MovieFile,
		params: SearchParams{
			Kind: KindMovie,
			IDs:  ExternalIDs{TMDB: movie.TMDBID, IMDB: movie.IMDBID},
		},
	}
	if movie.MovieFile != nil {
		it.report = movie.MovieFile.Path
	}
	return c.check(ctx, it)
}

// SearchShow checks one season of a series, using episode as the
// representative of the whole season.
func (c *Checker) SearchShow(ctx context.Context, series *arr.Series, season int, episode *arr.Episode) Result {
	it := item{
		kind:  KindTV,
		title: fmt.Sprintf("%s S%02d", series.Title, season),
		params: SearchParams{
			Kind:   KindTV,
			IDs:    ExternalIDs{TMDB: series.TMDBID, TVDB: series.TVDBID, IMDB: series.IMDBID},
			Season: season,
		},
	}
	if episode != nil && episode.EpisodeFile != nil {
		it.file = episode.EpisodeFile
		if episode.EpisodeFile.Path != "" {
			it.report = filepath.Dir(episode.EpisodeFile.Path)
		}
	}
	return c.check(ctx, it)
}

func (c *Checker) check(ctx context.Context, it item) Result {
	res := Result{Tracker: c.Name()}
	log := c.log.With("title", it.title)

	if it.file == nil {
		log.Info("skipped: no local file")
		res.Outcome = OutcomeSkipped
		return res
	}

	c.ensureBannedGroups(ctx)

	if c.banned.IsBanned(it.file.ReleaseGroup) {
		log.Info("banned: local", "group", it.file.ReleaseGroup)
		res.Outcome = OutcomeLocalBanned
		res.Group = it.file.ReleaseGroup
		return res
	}

	if it.file.Quality == nil {
		res.Outcome = OutcomeSkipped
		res.Err = fmt.Errorf("%w: %s has no quality", ErrDataShape, it.title)
		log.Warn("skipped: missing quality", "error", res.Err)
		return res
	}

	cls := release.Analyze(it.file.QualityInput(), guessPath(it.file), c.guesser)
	res.Classification = cls
	log = log.With("quality", cls.String())

	params := it.params
	params.Resolutions = c.adapter.ResolutionTokens(cls.Resolution)
	params.Type = c.adapter.TypeToken(cls)
	params.Source = cls.Source
	if c.guesser != nil {
		params.GuessedSource = c.guesser.Guess(guessPath(it.file)).Source
	}

	candidates, err := c.search(ctx, params)
	if err != nil {
		return c.fail(ctx, log, it, res, err)
	}

	if len(candidates) == 0 {
		if it.report == "" {
			log.Info("not found (no media file)")
			res.Outcome = OutcomeNoMediaFile
			return res
		}
		log.Info("not found")
		c.write(log, it.kind, func(s Sink) error { return s.NotFound(it.report) })
		res.Outcome = OutcomeNotFound
		return res
	}

	group := c.topGroup(candidates[0].Name)
	if group != "" && c.banned.Contains(group) {
		log.Info("trumpable: banned group", "group", group)
		if it.report != "" {
			c.write(log, it.kind, func(s Sink) error { return s.Trump(it.report, report.ReasonBannedGroup) })
		}
		res.Outcome = OutcomeTrumpable
		res.Group = group
		return res
	}

	log.Info("already exists")
	res.Outcome = OutcomeFound
	return res
}

func (c *Checker) search(ctx context.Context, params SearchParams) ([]Candidate, error) {
	req, err := c.adapter.BuildQuery(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.adapter.ExecuteSearch(ctx, req)
}

// fail maps a search error to an outcome. Only non-rate-limit failures
// leave a line in the not-found report.
func (c *Checker) fail(ctx context.Context, log *slog.Logger, it item, res Result, err error) Result {
	res.Err = err
	switch {
	case isCanceled(ctx, err):
		log.Debug("check canceled")
		res.Outcome = OutcomeSkipped
	case errors.Is(err, ErrRateLimited):
		log.Warn("rate limit exceeded")
		res.Outcome = OutcomeRateLimited
	default:
		log.Error("search failed", "error", err)
		c.write(log, it.kind, func(s Sink) error {
			return s.NotFound(fmt.Sprintf("%s - Error: %v", it.title, err))
		})
		res.Outcome = OutcomeError
	}
	return res
}

func (c *Checker) write(log *slog.Logger, kind MediaKind, fn func(Sink) error) {
	s, ok := c.sinks[kind]
	if !ok || s == nil {
		return
	}
	if err := fn(s); err != nil {
		log.Error("report write failed", "error", err)
	}
}

func (c *Checker) topGroup(name string) string {
	if c.guesser == nil {
		return ""
	}
	return c.guesser.Guess(name).Group
}

// ensureBannedGroups loads the banned set once per run. A failed fetch is
// logged and retried on the next item; until then checks fail open.
func (c *Checker) ensureBannedGroups(ctx context.Context) {
	if c.banned.Loaded() {
		return
	}
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	if c.banned.Loaded() {
		return
	}

	groups, err := c.adapter.FetchBannedGroups(ctx)
	if err != nil {
		if !isCanceled(ctx, err) {
			c.log.Error("fetch banned groups failed", "error", err)
		}
		return
	}
	c.banned.Set(groups)
	c.log.Debug("banned groups loaded", "count", c.banned.Len())
}

// Close closes every sink owned by the checker.
func (c *Checker) Close() error {
	var errs []error
	for _, s := range c.sinks {
		if s != nil {
			errs = append(errs, s.Close())
		}
	}
	return errors.Join(errs...)
}

// guessPath prefers the library-relative path, which carries the release
// name, over the absolute one.
func guessPath(f *arr.MediaFile) string {
	if f.RelativePath != "" {
		return f.RelativePath
	}
	return f.Path
}
