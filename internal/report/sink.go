// Package report writes the per-tracker result files: a plain-text list of
// files missing from the tracker and a CSV of trumpable releases.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ReasonBannedGroup is the trump reason for releases by a banned group.
const ReasonBannedGroup = "Banned group"

// trumpHeader is the first row of every trump file.
var trumpHeader = []string{"file", "reason"}

// ErrClosed is returned when writing to a closed sink.
var ErrClosed = errors.New("report sink closed")

// Files names the two report files of a sink.
type Files struct {
	NotFound string // e.g. "radarr-not_found.txt"
	Trump    string // e.g. "radarr-trump.csv"
}

// Sink is an append-only pair of report files. Files are truncated when
// opened so each run starts from empty reports. Every write reaches the
// file before returning.
type Sink struct {
	mu        sync.Mutex
	dir       string
	notFound  *os.File
	trumpFile *os.File
	trump     *csv.Writer
	closed    bool
}

// Open creates dir if needed and opens both report files inside it.
func Open(dir string, files Files) (*Sink, error) {
	if files.NotFound == "" || files.Trump == "" {
		return nil, fmt.Errorf("report: file names required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create dir: %w", err)
	}

	notFound, err := os.Create(filepath.Join(dir, files.NotFound))
	if err != nil {
		return nil, fmt.Errorf("report: open not-found file: %w", err)
	}
	trumpFile, err := os.Create(filepath.Join(dir, files.Trump))
	if err != nil {
		_ = notFound.Close()
		return nil, fmt.Errorf("report: open trump file: %w", err)
	}

	s := &Sink{
		dir:       dir,
		notFound:  notFound,
		trumpFile: trumpFile,
		trump:     csv.NewWriter(trumpFile),
	}
	if err := s.writeRow(trumpHeader); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Dir returns the directory holding the report files.
func (s *Sink) Dir() string {
	return s.dir
}

// NotFound appends one line to the not-found file.
func (s *Sink) NotFound(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	line = strings.ReplaceAll(line, "\n", " ")
	if _, err := s.notFound.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("report: write not-found: %w", err)
	}
	return nil
}

// Trump appends one {file, reason} row to the trump file.
func (s *Sink) Trump(file, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.writeRow([]string{file, reason})
}

func (s *Sink) writeRow(row []string) error {
	if err := s.trump.Write(row); err != nil {
		return fmt.Errorf("report: write trump: %w", err)
	}
	s.trump.Flush()
	if err := s.trump.Error(); err != nil {
		return fmt.Errorf("report: flush trump: %w", err)
	}
	return nil
}

// Close flushes and closes both files. Safe to call more than once.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.trump.Flush()
	return errors.Join(
		s.trump.Error(),
		s.notFound.Close(),
		s.trumpFile.Close(),
	)
}
