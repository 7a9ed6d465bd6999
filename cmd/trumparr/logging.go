package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vmunix/trumparr/internal/config"
)

// newLogger logs to stdout and to the rotating script log under the
// output path. The returned func closes the log file.
func newLogger(files config.LogFilesConfig, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if files.ScriptLog == "" {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(files.OutputPath, 0755); err != nil && files.OutputPath != "" {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(files.OutputPath, files.ScriptLog),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	w := io.MultiWriter(os.Stdout, logFile)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = logFile.Close() }, nil
}
