package search

// Outcome records what happened to a Match during replacement.
type Outcome struct {
	Success bool
	Err     string
}

// Match is one located occurrence of the search pattern on a specific
// line of a specific file.
type Match struct {
	Path                string
	LineNumber          int // 1-based
	OriginalLine        string
	ProposedReplacement string
	Included            bool
	Outcome             *Outcome
}

// NewMatch constructs a Match with Included defaulting to true, as §3
// requires; Outcome is left nil until the executor sets it.
func NewMatch(path string, lineNumber int, original, proposed string) *Match {
	return &Match{
		Path:                path,
		LineNumber:          lineNumber,
		OriginalLine:        original,
		ProposedReplacement: proposed,
		Included:            true,
	}
}

// SearchState is the ordered list of matches accumulated during a search,
// plus the selection cursor used by the selection screen.
type SearchState struct {
	Matches  []*Match
	Selected int
}

// Append adds a match to the end of the list. Called by the reducer as
// match events stream in from the scanner.
func (s *SearchState) Append(m *Match) {
	s.Matches = append(s.Matches, m)
}

// MoveDown advances the selection cursor by one, wrapping past the last
// match to the first.
func (s *SearchState) MoveDown() {
	if len(s.Matches) == 0 {
		s.Selected = 0
		return
	}
	s.Selected = (s.Selected + 1) % len(s.Matches)
}

// MoveUp retreats the selection cursor by one, wrapping from the first
// match to the last.
func (s *SearchState) MoveUp() {
	if len(s.Matches) == 0 {
		s.Selected = 0
		return
	}
	s.Selected = (s.Selected - 1 + len(s.Matches)) % len(s.Matches)
}

// ToggleCurrent flips the Included flag of the currently selected match.
func (s *SearchState) ToggleCurrent() {
	if len(s.Matches) == 0 {
		return
	}
	m := s.Matches[s.Selected]
	m.Included = !m.Included
}

// allIncluded reports whether every match is currently included.
func (s *SearchState) allIncluded() bool {
	for _, m := range s.Matches {
		if !m.Included {
			return false
		}
	}
	return true
}

// ToggleAll flips every match to the negation of "all currently
// included" (§4.6): if all are included, every match becomes excluded,
// and vice versa. Per §9's open question, this ignores any notion of
// viewport — every match in the list is affected.
func (s *SearchState) ToggleAll() {
	target := !s.allIncluded()
	for _, m := range s.Matches {
		m.Included = target
	}
}
