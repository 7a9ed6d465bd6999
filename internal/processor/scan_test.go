package processor_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/trumparr/internal/arr"
	"github.com/vmunix/trumparr/internal/processor"
	"github.com/vmunix/trumparr/internal/report"
	"github.com/vmunix/trumparr/internal/tracker"
	"github.com/vmunix/trumparr/pkg/release"
)

const (
	remuxMovie = `[{"id":1,"title":"X","tmdbId":42,"hasFile":true,
		"movieFile":{"path":"/m/X.mkv","relativePath":"X.mkv","releaseGroup":"GRP",
		"quality":{"quality":{"name":"Bluray-1080p Remux","source":"bluray","modifier":"remux","resolution":1080}}}}]`
	webdlMovie = `[{"id":1,"title":"X","tmdbId":42,"hasFile":true,
		"movieFile":{"path":"/m/X.mkv","relativePath":"X.mkv","releaseGroup":"GRP",
		"quality":{"quality":{"name":"WEBDL-1080p","source":"webdl","modifier":"none","resolution":1080}}}}]`
)

// newUpstream serves one Radarr movie and an Aither instance that has
// never seen it. Aither asserts the type token it is asked for.
func newUpstream(t *testing.T, movies, wantType string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(movies))
	})
	mux.HandleFunc("/api/blacklists/releasegroups", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"name":"FGT"}]}`))
	})
	mux.HandleFunc("/api/torrents/filter", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "42", q.Get("tmdbId"))
		assert.Equal(t, wantType, q.Get("types[0]"))
		assert.Equal(t, "3", q.Get("resolutions[0]"))
		assert.Equal(t, "4", q.Get("resolutions[1]"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func scan(t *testing.T, upstream *httptest.Server, out string, logger *slog.Logger) {
	t.Helper()

	sink, err := report.Open(filepath.Join(out, "AITHER"), report.Files{
		NotFound: "radarr-not_found.txt",
		Trump:    "radarr-trump.csv",
	})
	require.NoError(t, err)

	adapter := tracker.NewAither(tracker.Options{APIKey: "k", BaseURL: upstream.URL, HTTPClient: upstream.Client()})
	checker := tracker.NewChecker(adapter, map[tracker.MediaKind]tracker.Sink{tracker.KindMovie: sink}, release.NewParser(), logger)
	defer func() { require.NoError(t, checker.Close()) }()

	radarr := arr.NewRadarrClient(upstream.URL, "rk", arr.WithHTTPClient(upstream.Client()))
	sum, err := processor.New([]tracker.Tracker{checker}, 0, logger).RunMovies(context.Background(), radarr)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count("aither", tracker.OutcomeNotFound))
}

func TestScan_MissingWebDLIsLoggedAndReported(t *testing.T) {
	upstream := newUpstream(t, webdlMovie, "4")
	out := t.TempDir()
	var buf bytes.Buffer

	scan(t, upstream, out, slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Contains(t, buf.String(), "not found")
	assert.Contains(t, buf.String(), "tracker=aither")
	data, err := os.ReadFile(filepath.Join(out, "AITHER", "radarr-not_found.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "/m/X.mkv")
}

func TestScan_MissingMovieIsReported(t *testing.T) {
	upstream := newUpstream(t, remuxMovie, "2")
	out := t.TempDir()

	scan(t, upstream, out, nil)

	data, err := os.ReadFile(filepath.Join(out, "AITHER", "radarr-not_found.txt"))
	require.NoError(t, err)
	assert.Equal(t, "/m/X.mkv\n", string(data))
}

func TestScan_RepeatedRunsProduceIdenticalReports(t *testing.T) {
	upstream := newUpstream(t, remuxMovie, "2")
	out := t.TempDir()
	files := []string{"radarr-not_found.txt", "radarr-trump.csv"}

	scan(t, upstream, out, nil)
	first := make(map[string]string)
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(out, "AITHER", f))
		require.NoError(t, err)
		first[f] = string(data)
	}

	scan(t, upstream, out, nil)
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(out, "AITHER", f))
		require.NoError(t, err)
		assert.Equal(t, first[f], string(data), f)
	}
}
