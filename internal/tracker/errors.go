package tracker

import (
	"errors"
	"strings"
)

var (
	// ErrRateLimited indicates the tracker answered 429 after retries.
	// The item is abandoned for this run.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTransport indicates a network failure or unexpected status.
	ErrTransport = errors.New("tracker request failed")

	// ErrDataShape indicates a record was missing fields needed to classify
	// or interpret it.
	ErrDataShape = errors.New("unexpected data shape")

	// ErrUnknownTracker is returned for tracker names not in the registry.
	ErrUnknownTracker = errors.New("unknown tracker")
)

// redact removes secret from s. Tracker API keys travel in URLs, and
// transport errors echo the URL.
func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "REDACTED")
}
