package processor

import (
	"log/slog"
	"sort"

	"github.com/vmunix/trumparr/internal/tracker"
)

// Summary tallies the outcomes of one scan.
type Summary struct {
	Kind    string
	Checked int // items dispatched to the trackers
	Skipped int // items never dispatched

	outcomes map[string]map[tracker.Outcome]int
}

func newSummary(kind string) *Summary {
	return &Summary{Kind: kind, outcomes: make(map[string]map[tracker.Outcome]int)}
}

func (s *Summary) add(results []tracker.Result) {
	s.Checked++
	for _, r := range results {
		m, ok := s.outcomes[r.Tracker]
		if !ok {
			m = make(map[tracker.Outcome]int)
			s.outcomes[r.Tracker] = m
		}
		m[r.Outcome]++
	}
}

// Count returns how often a tracker reported outcome.
func (s *Summary) Count(trackerName string, outcome tracker.Outcome) int {
	return s.outcomes[trackerName][outcome]
}

// Trackers returns the names of trackers with at least one result.
func (s *Summary) Trackers() []string {
	names := make([]string, 0, len(s.outcomes))
	for n := range s.outcomes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Log writes one summary line per tracker.
func (s *Summary) Log(logger *slog.Logger) {
	logger.Info("scan complete", "kind", s.Kind, "checked", s.Checked, "skipped", s.Skipped)
	for _, name := range s.Trackers() {
		m := s.outcomes[name]
		logger.Info("tracker summary",
			"kind", s.Kind,
			"tracker", name,
			"found", m[tracker.OutcomeFound],
			"not_found", m[tracker.OutcomeNotFound]+m[tracker.OutcomeNoMediaFile],
			"trumpable", m[tracker.OutcomeTrumpable],
			"local_banned", m[tracker.OutcomeLocalBanned],
			"skipped", m[tracker.OutcomeSkipped],
			"rate_limited", m[tracker.OutcomeRateLimited],
			"errors", m[tracker.OutcomeError],
		)
	}
}
