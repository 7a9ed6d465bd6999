package processor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/trumparr/internal/arr"
	arrmocks "github.com/vmunix/trumparr/internal/arr/mocks"
	"github.com/vmunix/trumparr/internal/processor"
	"github.com/vmunix/trumparr/internal/tracker"
	trackermocks "github.com/vmunix/trumparr/internal/tracker/mocks"
)

func newTracker(ctrl *gomock.Controller, name string) *trackermocks.MockTracker {
	t := trackermocks.NewMockTracker(ctrl)
	t.EXPECT().Name().Return(name).AnyTimes()
	return t
}

func withFile(m arr.Movie) arr.Movie {
	m.MovieFile = &arr.MediaFile{Path: "/m/" + m.Title + ".mkv"}
	return m
}

func TestRunMovies_SkipsMoviesWithoutFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := arrmocks.NewMockMovieSource(ctrl)
	aither := newTracker(ctrl, "aither")

	src.EXPECT().ListMovies(gomock.Any()).Return([]arr.Movie{{Title: "NoFile", TMDBID: 1}}, nil)
	// no SearchMovie expectation: any call fails the test

	sum, err := processor.New([]tracker.Tracker{aither}, 0, nil).RunMovies(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Checked)
	assert.Equal(t, 1, sum.Skipped)
}

func TestRunMovies_FansOutToAllTrackers(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := arrmocks.NewMockMovieSource(ctrl)
	aither := newTracker(ctrl, "aither")
	bhd := newTracker(ctrl, "bhd")

	movies := []arr.Movie{withFile(arr.Movie{Title: "A"}), withFile(arr.Movie{Title: "B"})}
	src.EXPECT().ListMovies(gomock.Any()).Return(movies, nil)

	aither.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).
		Return(tracker.Result{Tracker: "aither", Outcome: tracker.OutcomeNotFound}).Times(2)
	gomock.InOrder(
		bhd.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).
			Return(tracker.Result{Tracker: "bhd", Outcome: tracker.OutcomeFound}),
		bhd.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).
			Return(tracker.Result{Tracker: "bhd", Outcome: tracker.OutcomeTrumpable}),
	)

	sum, err := processor.New([]tracker.Tracker{aither, bhd}, 0, nil).RunMovies(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Checked)
	assert.Equal(t, 2, sum.Count("aither", tracker.OutcomeNotFound))
	assert.Equal(t, 1, sum.Count("bhd", tracker.OutcomeFound))
	assert.Equal(t, 1, sum.Count("bhd", tracker.OutcomeTrumpable))
	assert.Equal(t, []string{"aither", "bhd"}, sum.Trackers())
}

func TestRunMovies_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := arrmocks.NewMockMovieSource(ctrl)
	src.EXPECT().ListMovies(gomock.Any()).Return(nil, arr.ErrUnavailable)

	_, err := processor.New(nil, 0, nil).RunMovies(context.Background(), src)
	assert.ErrorIs(t, err, arr.ErrUnavailable)
}

func TestRunMovies_StopsWhenCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := arrmocks.NewMockMovieSource(ctrl)
	aither := newTracker(ctrl, "aither")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src.EXPECT().ListMovies(gomock.Any()).
		Return([]arr.Movie{withFile(arr.Movie{Title: "A"}), withFile(arr.Movie{Title: "B"})}, nil)
	aither.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *arr.Movie) tracker.Result {
			cancel()
			return tracker.Result{Outcome: tracker.OutcomeFound}
		}).Times(1)

	sum, err := processor.New([]tracker.Tracker{aither}, 0, nil).RunMovies(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, sum.Checked)
	assert.Equal(t, 1, sum.Count("aither", tracker.OutcomeFound), "tracker name filled in from Name()")
}

func completeSeason(n int) arr.Season {
	return arr.Season{SeasonNumber: n, Statistics: &arr.SeasonStatistics{PercentOfEpisodes: 100}}
}

func TestRunShows_EligibleSeasonsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := arrmocks.NewMockShowSource(ctrl)
	aither := newTracker(ctrl, "aither")

	show := arr.Series{ID: 7, Title: "Show", Seasons: []arr.Season{
		completeSeason(0), // specials
		completeSeason(1),
		{SeasonNumber: 2, Statistics: &arr.SeasonStatistics{PercentOfEpisodes: 50}},
		{SeasonNumber: 3},
	}}
	src.EXPECT().ListSeries(gomock.Any()).Return([]arr.Series{show}, nil)

	first := arr.Episode{EpisodeNumber: 1, EpisodeFile: &arr.MediaFile{Path: "/tv/Show/S01/e1.mkv"}}
	second := arr.Episode{EpisodeNumber: 2, EpisodeFile: &arr.MediaFile{Path: "/tv/Show/S01/e2.mkv"}}
	src.EXPECT().ListEpisodes(gomock.Any(), int64(7), 1).Return([]arr.Episode{first, second}, nil)

	aither.EXPECT().SearchShow(gomock.Any(), gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *arr.Series, season int, ep *arr.Episode) tracker.Result {
			assert.Equal(t, "Show", s.Title)
			assert.Equal(t, 1, ep.EpisodeNumber, "first episode represents the season")
			return tracker.Result{Tracker: "aither", Outcome: tracker.OutcomeNotFound}
		})

	sum, err := processor.New([]tracker.Tracker{aither}, 0, nil).RunShows(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Checked)
}

func TestRunShows_SkipsSeasonWithoutFileOrOnListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := arrmocks.NewMockShowSource(ctrl)
	aither := newTracker(ctrl, "aither")

	show := arr.Series{ID: 7, Title: "Show", Seasons: []arr.Season{completeSeason(1), completeSeason(2)}}
	src.EXPECT().ListSeries(gomock.Any()).Return([]arr.Series{show}, nil)
	src.EXPECT().ListEpisodes(gomock.Any(), int64(7), 1).Return([]arr.Episode{{EpisodeNumber: 1}}, nil)
	src.EXPECT().ListEpisodes(gomock.Any(), int64(7), 2).Return(nil, errors.New("boom"))

	sum, err := processor.New([]tracker.Tracker{aither}, 0, nil).RunShows(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Checked)
	assert.Equal(t, 2, sum.Skipped)
}
