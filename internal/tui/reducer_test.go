package tui

import (
	"testing"
	"time"

	"resweep/internal/fields"
	"resweep/internal/search"
)

func newTestReducer() *Reducer {
	r := NewReducer(Config{Root: "."})
	r.State.Screen = ScreenSearchInProgress
	r.State.SearchState = &search.SearchState{}
	return r
}

func TestHandleMatch_CoalescesRedraws(t *testing.T) {
	r := newTestReducer()

	first := r.State.handleMatch(search.NewMatch("a", 1, "x", "y"))
	if !first {
		t.Fatalf("the first match after a zero lastRedraw should trigger a redraw")
	}

	second := r.State.handleMatch(search.NewMatch("a", 2, "x", "y"))
	if second {
		t.Fatalf("a match arriving within the coalescing window should not trigger a redraw")
	}

	if len(r.State.SearchState.Matches) != 2 {
		t.Fatalf("both matches should still be appended regardless of redraw coalescing")
	}
}

func TestHandleMatch_RedrawsAgainAfterInterval(t *testing.T) {
	r := newTestReducer()
	r.State.handleMatch(search.NewMatch("a", 1, "x", "y"))
	r.State.lastRedraw = time.Now().Add(-2 * redrawCoalesceInterval)

	if !r.State.handleMatch(search.NewMatch("a", 2, "x", "y")) {
		t.Fatalf("a match arriving after the coalescing window should trigger a redraw")
	}
}

func TestHandleMatch_DroppedAfterLeavingScreen(t *testing.T) {
	r := newTestReducer()
	r.State.backToForm()

	rerender := r.State.handleMatch(search.NewMatch("a", 1, "x", "y"))
	if rerender {
		t.Fatalf("a match arriving after leaving the in-progress screen must not trigger a redraw")
	}
	if r.State.SearchState != nil {
		t.Fatalf("backToForm should clear the search state")
	}
}

func TestReducer_GlobalResetClearsForm(t *testing.T) {
	r := newTestReducer()
	r.State.Form.Search.EnterChar('x')

	r.HandleKey(fields.KeyEvent{Code: fields.KeyRune, Rune: 'r', Mod: fields.ModCtrl})

	if r.State.Screen != ScreenForm {
		t.Fatalf("Ctrl-R should always return to Form, got screen %v", r.State.Screen)
	}
	if r.State.Form.Search.Text() != "" {
		t.Fatalf("Ctrl-R should reset the form, got %q", r.State.Form.Search.Text())
	}
}

func TestReducer_SelectionScreen_ToggleAll(t *testing.T) {
	r := NewReducer(Config{Root: "."})
	r.State.Screen = ScreenSearchComplete
	r.State.SearchState = &search.SearchState{Matches: []*search.Match{
		search.NewMatch("a", 1, "x", "y"),
		search.NewMatch("b", 1, "x", "y"),
	}}

	hint := r.HandleKey(fields.KeyEvent{Code: fields.KeyRune, Rune: 'a'})
	if !hint.Rerender {
		t.Fatalf("toggling all should request a redraw")
	}
	for _, m := range r.State.SearchState.Matches {
		if m.Included {
			t.Fatalf("toggle-all from an all-included set should exclude everything")
		}
	}
}
