package replace

import "resweep/internal/search"

// Stats tallies the outcome of one replacement run, folding over every
// match recorded during search — not only the ones marked for inclusion
// (§4.5).
type Stats struct {
	Successes    uint32
	Ignored      uint32
	Errors       []*search.Match
	ErrorsCursor int
}

// MoveErrorDown advances the error-list cursor, wrapping modulo the
// error count (or staying at 0 when there are none).
func (s *Stats) MoveErrorDown() {
	if len(s.Errors) == 0 {
		s.ErrorsCursor = 0
		return
	}
	s.ErrorsCursor = (s.ErrorsCursor + 1) % len(s.Errors)
}

// MoveErrorUp retreats the error-list cursor, wrapping modulo the error
// count.
func (s *Stats) MoveErrorUp() {
	if len(s.Errors) == 0 {
		s.ErrorsCursor = 0
		return
	}
	s.ErrorsCursor = (s.ErrorsCursor - 1 + len(s.Errors)) % len(s.Errors)
}

// foldStats computes a Stats by folding over every match recorded during
// search, per §4.5's closing paragraph:
//   - not included       -> Ignored
//   - Success            -> Successes
//   - no outcome at all  -> an "Unmatched" error
//   - Error(e)            -> appended to Errors
func foldStats(matches []*search.Match) *Stats {
	stats := &Stats{}
	for _, m := range matches {
		switch {
		case !m.Included:
			stats.Ignored++
		case m.Outcome == nil:
			stats.Errors = append(stats.Errors, withOutcome(m, "Failed to find search result in file"))
		case m.Outcome.Success:
			stats.Successes++
		default:
			stats.Errors = append(stats.Errors, m)
		}
	}
	return stats
}

func withOutcome(m *search.Match, errMsg string) *search.Match {
	m.Outcome = &search.Outcome{Success: false, Err: errMsg}
	return m
}
