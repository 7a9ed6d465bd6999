// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vmunix/trumparr/internal/tracker"
)

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.SleepTimer < 0 {
		errs = append(errs, fmt.Sprintf("sleep_timer: must not be negative, got %d", c.SleepTimer))
	}

	if !c.Radarr.Enabled && !c.Sonarr.Enabled {
		errs = append(errs, "radarr/sonarr: at least one library must be enabled")
	}
	errs = append(errs, validateLibrary("radarr", c.Radarr)...)
	errs = append(errs, validateLibrary("sonarr", c.Sonarr)...)

	if c.LogFiles.NotFoundRadarr == "" || c.LogFiles.TrumpRadarr == "" ||
		c.LogFiles.NotFoundSonarr == "" || c.LogFiles.TrumpSonarr == "" {
		errs = append(errs, "log_files: report file names must not be empty")
	}

	// Trackers
	if len(c.Trackers) == 0 {
		errs = append(errs, "trackers: no enabled trackers found")
	}
	seen := make(map[string]bool, len(c.Trackers))
	for _, name := range c.Trackers {
		if seen[name] {
			errs = append(errs, fmt.Sprintf("trackers: %q listed twice", name))
			continue
		}
		seen[name] = true

		if !tracker.Known(name) {
			errs = append(errs, fmt.Sprintf("trackers: unknown tracker %q (known: %s)", name, strings.Join(tracker.Names(), ", ")))
			continue
		}
		if c.Tracker[name].APIKey == "" {
			errs = append(errs, fmt.Sprintf("tracker.%s.api_key: required", name))
		}
	}

	// Retry
	r := c.HTTPRetry
	if r.Attempts < 1 {
		errs = append(errs, fmt.Sprintf("http_retry.attempts: must be at least 1, got %d", r.Attempts))
	}
	if r.StartTimeout < 0 || r.MaxTimeout < 0 {
		errs = append(errs, "http_retry: timeouts must not be negative")
	}
	if r.Factor < 1 {
		errs = append(errs, fmt.Sprintf("http_retry.factor: must be at least 1, got %g", r.Factor))
	}

	return errs
}

func validateLibrary(name string, lib LibraryConfig) []string {
	if !lib.Enabled {
		return nil
	}
	var errs []string
	if lib.APIKey == "" {
		errs = append(errs, fmt.Sprintf("%s.api_key: required when %s is enabled", name, name))
	}
	if u, err := url.Parse(lib.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("%s.url: invalid URL %q", name, lib.URL))
	}
	return errs
}

// Error reports every problem found in a config file so they can all be
// fixed in one pass. Missing holds unresolved ${VAR} references and Errors
// holds Validate output, each "<key>: <problem>".
type Error struct {
	Path    string
	Missing []string
	Errors  []string
}

// Section groups the problems of one config table, e.g. "tracker.aither".
// Unresolved environment references are grouped under "env".
type Section struct {
	Name     string
	Problems []string
}

// Sections groups the problems by table in the order they were found.
func (e *Error) Sections() []Section {
	var out []Section
	index := make(map[string]int)
	add := func(name, problem string) {
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, Section{Name: name})
		}
		out[i].Problems = append(out[i].Problems, problem)
	}

	for _, m := range e.Missing {
		add("env", m)
	}
	for _, msg := range e.Errors {
		add(splitProblem(msg))
	}
	return out
}

// splitProblem splits "tracker.aither.api_key: required" into the table
// "tracker.aither" and "api_key: required".
func splitProblem(msg string) (string, string) {
	key, rest, ok := strings.Cut(msg, ": ")
	if !ok {
		return "", msg
	}
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return key, rest
	}
	return key[:i], key[i+1:] + ": " + rest
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}
	var b strings.Builder
	b.WriteString("invalid config")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	for _, s := range e.Sections() {
		for _, p := range s.Problems {
			if s.Name == "" {
				fmt.Fprintf(&b, "\n  %s", p)
			} else {
				fmt.Fprintf(&b, "\n  [%s] %s", s.Name, p)
			}
		}
	}
	return b.String()
}

// HasErrors reports whether any problem was recorded.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
