// Package tui implements the screen state machine and event reducer
// (§4.6, §4.7), plus the thin tcell-backed key-event source and renderer
// the core consumes through narrow interfaces. This file holds the
// Screen state machine itself; reducer.go merges the three event
// channels; app.go owns the run loop and terminal lifecycle.
package tui

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resweep/internal/fields"
	"resweep/internal/pattern"
	"resweep/internal/replace"
	"resweep/internal/search"
)

// ScreenKind tags which of the five screens is active (§3 Screen).
type ScreenKind int

const (
	ScreenForm ScreenKind = iota
	ScreenSearchInProgress
	ScreenSearchComplete
	ScreenReplaceInProgress
	ScreenResults
)

// Config is the immutable configuration the form doesn't capture itself:
// the root directory and the regex-engine selection, both set at
// startup from CLI flags (§6).
type Config struct {
	Root          string
	IncludeHidden bool
	AdvancedRegex bool
}

// BgEvent is the background-processing channel's payload: one of a
// streamed match, the search-completion sentinel, or the replace
// run's final stats.
type BgEvent interface{ isBgEvent() }

// MatchArrived carries one streamed Match from the walker/scanner.
type MatchArrived struct{ Match *search.Match }

func (MatchArrived) isBgEvent() {}

// SearchDone is the walker's completion sentinel (§5): always the last
// background event for a given search run.
type SearchDone struct{}

func (SearchDone) isBgEvent() {}

// ReplaceDone carries the folded Stats once the executor finishes.
type ReplaceDone struct{ Stats *replace.Stats }

func (ReplaceDone) isBgEvent() {}

// State is the single owner of all mutable screen state (§3 Ownership:
// "writers are single-threaded"). Only the reducer mutates it.
type State struct {
	cfg Config

	Screen ScreenKind
	Form   fields.Form

	SearchState *search.SearchState
	Stats       *replace.Stats

	// runID correlates this screen's log lines with its worker, mirroring
	// the teacher's EditTransaction.ID convention.
	runID string

	// cancel aborts the worker behind the current in-progress screen.
	// Nil when no worker is active.
	cancel context.CancelFunc

	// bg is read by the app's select loop; nil when no worker is
	// feeding it, so that select case is simply never ready.
	bg chan BgEvent

	// lastRedraw gates match-arrival redraw coalescing (§4.7): only
	// matches arriving >=100ms after the prior redraw set rerender=true.
	lastRedraw time.Time

	popupDismissedManually bool
}

// NewState constructs the initial Form screen.
func NewState(cfg Config) *State {
	return &State{cfg: cfg, Screen: ScreenForm}
}

const redrawCoalesceInterval = 100 * time.Millisecond

// abortWorker cancels any running worker and clears the background
// channel, per §3 Lifecycles: "must be aborted on any transition out."
func (s *State) abortWorker() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.bg = nil
}

// submitSearch validates the form and, on success, transitions
// Form -> SearchInProgress, spawning the walker+scanner worker. On
// failure it stays on Form with the popup flag set by Form.Validate.
func (s *State) submitSearch() {
	searchPattern, pathFilter, err := s.Form.Validate(s.cfg.AdvancedRegex)
	if err != nil {
		return
	}

	query, err := search.NewQuery(searchPattern, s.Form.Replace.Text(), pathFilter, s.cfg.Root, s.cfg.IncludeHidden, s.cfg.AdvancedRegex)
	if err != nil {
		// The root was validated fatally at startup; it disappearing
		// mid-session is outside core scope (§1 Non-goals: detecting
		// directory edits between search and replace). Stay on Form.
		return
	}

	s.startSearchWorker(query)
}

func (s *State) startSearchWorker(query *search.Query) {
	ctx, cancel := context.WithCancel(context.Background())
	bg := make(chan BgEvent)

	s.cancel = cancel
	s.bg = bg
	s.runID = uuid.NewString()
	s.SearchState = &search.SearchState{}
	s.lastRedraw = time.Time{}
	s.Screen = ScreenSearchInProgress

	go func() {
		for m := range search.Walk(ctx, query, workerLogger(s.runID)) {
			select {
			case bg <- MatchArrived{Match: m}:
			case <-ctx.Done():
				return
			}
		}
		select {
		case bg <- SearchDone{}:
		case <-ctx.Done():
		}
	}()
}

// handleMatch appends a streamed match and decides whether to coalesce
// the redraw (§4.7).
func (s *State) handleMatch(m *search.Match) (rerender bool) {
	if s.Screen != ScreenSearchInProgress {
		// Late arrival after the screen moved on: drop it (§8 property 10).
		return false
	}
	s.SearchState.Append(m)

	now := time.Now()
	if now.Sub(s.lastRedraw) < redrawCoalesceInterval {
		return false
	}
	s.lastRedraw = now
	return true
}

// handleSearchDone transitions SearchInProgress -> SearchComplete.
func (s *State) handleSearchDone() {
	if s.Screen != ScreenSearchInProgress {
		return
	}
	s.cancel = nil
	s.bg = nil
	s.Screen = ScreenSearchComplete
}

// confirmSelection transitions SearchComplete -> ReplaceInProgress,
// spawning the replacement worker over the current SearchState.
func (s *State) confirmSelection() {
	if s.Screen != ScreenSearchComplete {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	bg := make(chan BgEvent)

	s.cancel = cancel
	s.bg = bg
	s.runID = uuid.NewString()
	s.Screen = ScreenReplaceInProgress

	state := s.SearchState
	go func() {
		stats := replace.Execute(ctx, state, workerLogger(s.runID))
		select {
		case bg <- ReplaceDone{Stats: stats}:
		case <-ctx.Done():
		}
	}()
}

// handleReplaceDone transitions ReplaceInProgress -> Results.
func (s *State) handleReplaceDone(stats *replace.Stats) {
	if s.Screen != ScreenReplaceInProgress {
		return
	}
	s.cancel = nil
	s.bg = nil
	s.Stats = stats
	s.Screen = ScreenResults
}

// backToForm implements Ctrl-O from SearchInProgress: abort and return
// to the form, preserving its contents. The partial results are discarded.
func (s *State) backToForm() {
	if s.Screen != ScreenSearchInProgress {
		return
	}
	s.abortWorker()
	s.SearchState = nil
	s.Screen = ScreenForm
}

// backToFormFromComplete implements Ctrl-O from the selection screen
// (§6 key map): no worker to abort since the search already finished,
// but the accumulated results are discarded.
func (s *State) backToFormFromComplete() {
	if s.Screen != ScreenSearchComplete {
		return
	}
	s.SearchState = nil
	s.Screen = ScreenForm
}

// reset implements the global Ctrl-R: abort any worker and return to a
// fresh Form, from any screen.
func (s *State) reset() {
	s.abortWorker()
	s.Form = fields.Form{}
	s.SearchState = nil
	s.Stats = nil
	s.Screen = ScreenForm
}

// searchMode resolves which pattern.Mode the form's fields compile
// under, with the same precedence as fields.Form's own resolution. The
// renderer does not call it.
func (s *State) searchMode() pattern.Mode {
	switch {
	case s.Form.FixedStrings.Checked:
		return pattern.Literal
	case s.cfg.AdvancedRegex:
		return pattern.AdvancedRegex
	default:
		return pattern.Regex
	}
}
