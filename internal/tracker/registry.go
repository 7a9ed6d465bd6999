package tracker

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Options configures an adapter.
type Options struct {
	APIKey     string
	BaseURL    string   // "" selects the tracker's public URL
	HTTPClient *http.Client
	// BannedGroups overrides a static blocklist. Trackers with a live
	// blacklist API ignore it.
	BannedGroups []string
}

type constructor func(Options) Adapter

var registry = map[string]constructor{
	"aither": func(o Options) Adapter { return NewAither(o) },
	"bhd":    func(o Options) Adapter { return NewBHD(o) },
}

var _ Tracker = (*Checker)(nil)

// New builds the adapter registered under name (case-insensitive).
func New(name string, opts Options) (Adapter, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTracker, name)
	}
	return ctor(opts), nil
}

// Known reports whether name is a registered tracker.
func Known(name string) bool {
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns the registered tracker names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
