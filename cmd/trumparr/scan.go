package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/trumparr/internal/arr"
	"github.com/vmunix/trumparr/internal/config"
	"github.com/vmunix/trumparr/internal/processor"
	"github.com/vmunix/trumparr/internal/report"
	"github.com/vmunix/trumparr/internal/tracker"
	"github.com/vmunix/trumparr/internal/transport"
	"github.com/vmunix/trumparr/pkg/release"
)

const httpTimeout = 60 * time.Second

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFiles, verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := transport.NewClient(cfg.RetryPolicy(), httpTimeout, logger.With("component", "http"))

	trackers, err := buildTrackers(cfg, httpClient, logger)
	if err != nil {
		closeTrackers(trackers, logger)
		return err
	}

	p := processor.New(trackers, cfg.SleepDuration(), logger)
	logger.Info("scan started", "trackers", cfg.Trackers, "radarr", cfg.Radarr.Enabled, "sonarr", cfg.Sonarr.Enabled)

	if cfg.Radarr.Enabled {
		radarr := arr.NewRadarrClient(cfg.Radarr.URL, cfg.Radarr.APIKey,
			arr.WithAPISuffix(cfg.Radarr.APISuffix), arr.WithHTTPClient(httpClient))
		if _, err := p.RunMovies(ctx, radarr); err != nil && ctx.Err() == nil {
			logger.Error("radarr scan failed", "error", err)
		}
	}

	if cfg.Sonarr.Enabled && ctx.Err() == nil {
		sonarr := arr.NewSonarrClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey,
			arr.WithAPISuffix(cfg.Sonarr.APISuffix), arr.WithHTTPClient(httpClient))
		if _, err := p.RunShows(ctx, sonarr); err != nil && ctx.Err() == nil {
			logger.Error("sonarr scan failed", "error", err)
		}
	}

	return finish(ctx, trackers, logger)
}

// finish closes the report files before logging how the scan ended.
func finish(ctx context.Context, trackers []tracker.Tracker, logger *slog.Logger) error {
	closeTrackers(trackers, logger)
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Warn("scan interrupted, reports flushed")
		return errInterrupted
	}
	logger.Info("scan finished")
	return nil
}

func closeTrackers(trackers []tracker.Tracker, logger *slog.Logger) {
	for _, t := range trackers {
		if err := t.Close(); err != nil {
			logger.Error("close reports failed", "tracker", t.Name(), "error", err)
		}
	}
}

// buildTrackers creates one Checker per configured tracker with its report
// sinks. Trackers built before a failure are returned so they can be closed.
func buildTrackers(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) ([]tracker.Tracker, error) {
	guesser := release.NewParser()
	var out []tracker.Tracker

	for _, name := range cfg.Trackers {
		tc := cfg.Tracker[name]
		adapter, err := tracker.New(name, tracker.Options{
			APIKey:       tc.APIKey,
			BaseURL:      tc.URL,
			HTTPClient:   httpClient,
			BannedGroups: tc.BannedGroups,
		})
		if err != nil {
			return out, err
		}

		sinks, err := openSinks(cfg, name)
		if err != nil {
			return out, err
		}
		out = append(out, tracker.NewChecker(adapter, sinks, guesser, logger))
	}
	return out, nil
}

func openSinks(cfg *config.Config, name string) (map[tracker.MediaKind]tracker.Sink, error) {
	dir := filepath.Join(cfg.LogFiles.OutputPath, strings.ToUpper(name))
	sinks := make(map[tracker.MediaKind]tracker.Sink)

	closeAll := func() {
		for _, s := range sinks {
			_ = s.Close()
		}
	}

	if cfg.Radarr.Enabled {
		s, err := report.Open(dir, report.Files{NotFound: cfg.LogFiles.NotFoundRadarr, Trump: cfg.LogFiles.TrumpRadarr})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sinks[tracker.KindMovie] = s
	}
	if cfg.Sonarr.Enabled {
		s, err := report.Open(dir, report.Files{NotFound: cfg.LogFiles.NotFoundSonarr, Trump: cfg.LogFiles.TrumpSonarr})
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sinks[tracker.KindTV] = s
	}
	return sinks, nil
}
