package tui

import "resweep/internal/fields"

// Hint is what the reducer returns after consuming one event: whether
// the app should exit, and whether a redraw is due (§4.7).
type Hint struct {
	Exit     bool
	Rerender bool
}

// Reducer is the single-threaded merge point for key events, internal
// app events, and background-processing events (§4.7). It owns the
// State and is the only thing that mutates it.
type Reducer struct {
	State *State
}

// NewReducer builds a reducer over a fresh Form screen.
func NewReducer(cfg Config) *Reducer {
	return &Reducer{State: NewState(cfg)}
}

// BgChan returns the background channel the app should select on this
// iteration. Nil when no worker is active, which simply makes that
// select case permanently unready.
func (r *Reducer) BgChan() <-chan BgEvent { return r.State.bg }

// HandleKey consumes one terminal key event.
func (r *Reducer) HandleKey(ev fields.KeyEvent) Hint {
	s := r.State

	// Global keys first: Esc/Ctrl-C exit unless a popup is open, in
	// which case they dismiss it (§4.6).
	if isExitKey(ev) {
		if s.Screen == ScreenForm && s.Form.ShowError() {
			s.Form.DismissError()
			return Hint{Rerender: true}
		}
		return Hint{Exit: true}
	}
	if isResetKey(ev) {
		s.reset()
		return Hint{Rerender: true}
	}

	switch s.Screen {
	case ScreenForm:
		return r.handleFormKey(ev)
	case ScreenSearchInProgress:
		return r.handleSearchInProgressKey(ev)
	case ScreenSearchComplete:
		return r.handleSelectionKey(ev)
	case ScreenReplaceInProgress:
		return Hint{}
	case ScreenResults:
		return r.handleResultsKey(ev)
	default:
		return Hint{}
	}
}

func (r *Reducer) handleFormKey(ev fields.KeyEvent) Hint {
	s := r.State
	if s.Form.ShowError() {
		// Any key closes the modal popup and returns to editing (§4.6).
		s.Form.DismissError()
		return Hint{Rerender: true}
	}
	switch {
	case ev.Code == fields.KeyTab && ev.Mod&fields.ModShift != 0, ev.Code == fields.KeyTab && ev.Mod&fields.ModAlt != 0:
		s.Form.FocusPrev()
	case ev.Code == fields.KeyTab:
		s.Form.FocusNext()
	case ev.Code == fields.KeyEnter:
		s.submitSearch()
	default:
		s.Form.HandleKey(ev)
	}
	return Hint{Rerender: true}
}

func (r *Reducer) handleSearchInProgressKey(ev fields.KeyEvent) Hint {
	s := r.State
	if isBackKey(ev) {
		s.backToForm()
		return Hint{Rerender: true}
	}
	return Hint{}
}

func (r *Reducer) handleSelectionKey(ev fields.KeyEvent) Hint {
	s := r.State
	switch {
	case isDownKey(ev):
		s.SearchState.MoveDown()
	case isUpKey(ev):
		s.SearchState.MoveUp()
	case ev.Code == fields.KeyRune && ev.Rune == ' ':
		s.SearchState.ToggleCurrent()
	case ev.Code == fields.KeyRune && ev.Rune == 'a':
		s.SearchState.ToggleAll()
	case ev.Code == fields.KeyEnter:
		s.confirmSelection()
	case isBackKey(ev):
		s.backToFormFromComplete()
	default:
		return Hint{}
	}
	return Hint{Rerender: true}
}

func (r *Reducer) handleResultsKey(ev fields.KeyEvent) Hint {
	s := r.State
	switch {
	case isDownKey(ev):
		s.Stats.MoveErrorDown()
	case isUpKey(ev):
		s.Stats.MoveErrorUp()
	case ev.Code == fields.KeyEnter, ev.Code == fields.KeyRune && ev.Rune == 'q':
		return Hint{Exit: true}
	default:
		return Hint{}
	}
	return Hint{Rerender: true}
}

// HandleBg consumes one background-processing event.
func (r *Reducer) HandleBg(ev BgEvent) Hint {
	s := r.State
	switch e := ev.(type) {
	case MatchArrived:
		return Hint{Rerender: s.handleMatch(e.Match)}
	case SearchDone:
		s.handleSearchDone()
		return Hint{Rerender: true}
	case ReplaceDone:
		s.handleReplaceDone(e.Stats)
		return Hint{Rerender: true}
	default:
		return Hint{}
	}
}

func isExitKey(ev fields.KeyEvent) bool {
	return ev.Code == fields.KeyEsc || (ev.Code == fields.KeyRune && ev.Rune == 'c' && ev.Mod&fields.ModCtrl != 0)
}

func isResetKey(ev fields.KeyEvent) bool {
	return ev.Code == fields.KeyRune && ev.Rune == 'r' && ev.Mod&fields.ModCtrl != 0
}

func isBackKey(ev fields.KeyEvent) bool {
	return ev.Code == fields.KeyRune && ev.Rune == 'o' && ev.Mod&fields.ModCtrl != 0
}

func isDownKey(ev fields.KeyEvent) bool {
	if ev.Code == fields.KeyDown || (ev.Code == fields.KeyRune && ev.Rune == 'j') {
		return true
	}
	return ev.Code == fields.KeyRune && ev.Rune == 'n' && ev.Mod&fields.ModCtrl != 0
}

func isUpKey(ev fields.KeyEvent) bool {
	if ev.Code == fields.KeyUp || (ev.Code == fields.KeyRune && ev.Rune == 'k') {
		return true
	}
	return ev.Code == fields.KeyRune && ev.Rune == 'p' && ev.Mod&fields.ModCtrl != 0
}
