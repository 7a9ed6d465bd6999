package tracker

import (
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// BannedGroups is a tracker's set of banned release groups. It is loaded
// at most once per run; comparisons are case-folded.
type BannedGroups struct {
	mu     sync.RWMutex
	groups map[string]struct{}
	loaded bool
	log    *slog.Logger
}

// NewBannedGroups creates an empty, unloaded set.
func NewBannedGroups(log *slog.Logger) *BannedGroups {
	if log == nil {
		log = slog.Default()
	}
	return &BannedGroups{groups: make(map[string]struct{}), log: log}
}

func fold(s string) string {
	// A Caser is stateful; use a fresh one per call.
	return cases.Fold().String(strings.TrimSpace(s))
}

// Set replaces the set contents and marks it loaded.
func (b *BannedGroups) Set(groups []string) {
	m := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if f := fold(g); f != "" {
			m[f] = struct{}{}
		}
	}

	b.mu.Lock()
	b.groups = m
	b.loaded = true
	b.mu.Unlock()
}

// Loaded reports whether Set has been called.
func (b *BannedGroups) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// Len returns the number of banned groups.
func (b *BannedGroups) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.groups)
}

// Contains reports set membership without logging.
func (b *BannedGroups) Contains(group string) bool {
	f := fold(group)
	if f == "" {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.groups[f]
	return ok
}

// IsBanned decides whether a local release group is banned. It fails
// open: an empty set or an empty group is reported and treated as not
// banned.
func (b *BannedGroups) IsBanned(group string) bool {
	if b.Len() == 0 {
		b.log.Error("banned groups missing, check skipped")
		return false
	}
	if strings.TrimSpace(group) == "" {
		b.log.Error("release group missing, check skipped")
		return false
	}
	return b.Contains(group)
}
