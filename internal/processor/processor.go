// Package processor walks the library and dispatches every item with a
// local file to all configured trackers.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vmunix/trumparr/internal/arr"
	"github.com/vmunix/trumparr/internal/tracker"
)

// Processor runs one scan over movies or shows. Items are processed one at
// a time; each item is checked against all trackers concurrently and the
// next item starts only after every tracker has finished.
type Processor struct {
	trackers []tracker.Tracker
	names    []string
	limiter  *rate.Limiter
	log      *slog.Logger
}

// New creates a processor. delay is the minimum spacing between items
// sent to the trackers; zero disables throttling.
func New(trackers []tracker.Tracker, delay time.Duration, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	names := make([]string, len(trackers))
	for i, t := range trackers {
		names[i] = t.Name()
	}
	return &Processor{
		trackers: trackers,
		names:    names,
		limiter:  limiter,
		log:      logger.With("component", "processor"),
	}
}

// RunMovies checks every movie from src. A listing failure is returned;
// per-item failures are logged by the trackers and tallied.
func (p *Processor) RunMovies(ctx context.Context, src arr.MovieSource) (*Summary, error) {
	sum := newSummary("movies")

	movies, err := src.ListMovies(ctx)
	if err != nil {
		return sum, fmt.Errorf("list movies: %w", err)
	}
	p.log.Info("movies loaded", "count", len(movies))

	for i := range movies {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		movie := &movies[i]
		log := p.log.With("title", movie.Title)

		if movie.MovieFile == nil {
			log.Info("skipped: no local file")
			sum.Skipped++
			continue
		}

		if err := p.limiter.Wait(ctx); err != nil {
			return sum, err
		}
		log.Info("checking")
		sum.add(p.fanOut(ctx, func(ctx context.Context, t tracker.Tracker) tracker.Result {
			return t.SearchMovie(ctx, movie)
		}))
	}

	sum.Log(p.log)
	return sum, nil
}

// RunShows checks every eligible season of every series from src. The
// first episode of a season stands in for the whole season, which is
// assumed to be a single pack.
func (p *Processor) RunShows(ctx context.Context, src arr.ShowSource) (*Summary, error) {
	sum := newSummary("shows")

	series, err := src.ListSeries(ctx)
	if err != nil {
		return sum, fmt.Errorf("list series: %w", err)
	}
	p.log.Info("series loaded", "count", len(series))

	for i := range series {
		show := &series[i]
		for _, season := range show.Seasons {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			if !season.Eligible() {
				continue
			}
			if err := p.checkSeason(ctx, src, sum, show, season.SeasonNumber); err != nil {
				return sum, err
			}
		}
	}

	sum.Log(p.log)
	return sum, nil
}

// checkSeason returns an error only when the run must stop.
func (p *Processor) checkSeason(ctx context.Context, src arr.ShowSource, sum *Summary, show *arr.Series, season int) error {
	log := p.log.With("title", show.Title, "season", season)

	episodes, err := src.ListEpisodes(ctx, show.ID, season)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("list episodes failed, season skipped", "error", err)
		sum.Skipped++
		return nil
	}
	if len(episodes) == 0 || episodes[0].EpisodeFile == nil {
		log.Info("skipped: no local file")
		sum.Skipped++
		return nil
	}
	episode := &episodes[0]

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	log.Info("checking")
	sum.add(p.fanOut(ctx, func(ctx context.Context, t tracker.Tracker) tracker.Result {
		return t.SearchShow(ctx, show, season, episode)
	}))
	return nil
}

func (p *Processor) fanOut(ctx context.Context, fn func(context.Context, tracker.Tracker) tracker.Result) []tracker.Result {
	results := make([]tracker.Result, len(p.trackers))

	var g errgroup.Group
	for i, t := range p.trackers {
		g.Go(func() error {
			res := fn(ctx, t)
			if res.Tracker == "" {
				res.Tracker = p.names[i]
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}
