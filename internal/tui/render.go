package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"resweep/internal/fields"
)

// render draws the current screen's state to the tcell screen and
// flushes it. This is the rendering layer §1 puts out of core scope —
// it reads an immutable snapshot of State and never mutates it (§9
// "Interior mutability of form fields": a render-time snapshot instead
// of a lock).
func render(screen tcell.Screen, theme Theme, s *State) {
	screen.Clear()
	w, h := screen.Size()

	switch s.Screen {
	case ScreenForm:
		renderForm(screen, theme, s, w, h)
	case ScreenSearchInProgress:
		renderSearchInProgress(screen, theme, s, w, h)
	case ScreenSearchComplete:
		renderSelection(screen, theme, s, w, h)
	case ScreenReplaceInProgress:
		drawText(screen, 2, 1, theme.Info, "Replacing files...")
	case ScreenResults:
		renderResults(screen, theme, s, w, h)
	}

	screen.Show()
}

func renderForm(screen tcell.Screen, theme Theme, s *State, w, h int) {
	titles := []string{"Search", "Replace", "Fixed strings", "Path pattern (optional)"}
	row := 1
	for i, title := range titles {
		style := theme.Border
		if s.Form.Highlighted() == i {
			style = theme.BorderFocus
		}
		label := fmt.Sprintf("[%s]", title)
		drawText(screen, 2, row, style, label)

		switch i {
		case 0:
			drawFieldValue(screen, theme, &s.Form.Search, row+1)
		case 1:
			drawFieldValue(screen, theme, &s.Form.Replace, row+1)
		case 2:
			box := "[ ]"
			if s.Form.FixedStrings.Checked {
				box = "[X]"
			}
			drawText(screen, 2, row+1, theme.Text, box)
		case 3:
			drawFieldValue(screen, theme, &s.Form.PathPattern, row+1)
		}
		row += 3
	}

	if s.Form.ShowError() {
		drawText(screen, 2, row+1, theme.Error, errorSummary(s))
	}
	drawText(screen, 2, h-1, theme.Info, "Tab: next field  Enter: search  Esc: quit")
}

func errorSummary(s *State) string {
	if e := s.Form.Search.Err(); e != nil {
		return "Search: " + e.Long
	}
	if e := s.Form.PathPattern.Err(); e != nil {
		return "Path pattern: " + e.Long
	}
	return ""
}

func drawFieldValue(screen tcell.Screen, theme Theme, f *fields.TextField, row int) {
	text := f.Text()
	if text == "" {
		text = " "
	}
	style := theme.Text
	if f.Err() != nil {
		style = theme.Error
	}
	drawText(screen, 2, row, style, text)
}

func renderSearchInProgress(screen tcell.Screen, theme Theme, s *State, w, h int) {
	drawText(screen, 2, 1, theme.Info, fmt.Sprintf("Searching... %d matches so far", len(s.SearchState.Matches)))
	drawText(screen, 2, h-1, theme.Info, "Ctrl-O: back  Ctrl-R: reset  Esc: quit")
}

func renderSelection(screen tcell.Screen, theme Theme, s *State, w, h int) {
	drawText(screen, 2, 1, theme.Info, fmt.Sprintf("%d matches", len(s.SearchState.Matches)))
	row := 3
	for i, m := range s.SearchState.Matches {
		if row >= h-2 {
			break
		}
		style := theme.Text
		if i == s.SearchState.Selected {
			style = theme.BorderFocus
		}
		mark := " "
		if m.Included {
			mark = "x"
		}
		drawText(screen, 2, row, style, fmt.Sprintf("[%s] %s:%d %s", mark, m.Path, m.LineNumber, m.OriginalLine))
		row++
	}
	drawText(screen, 2, h-1, theme.Info, "j/k: move  space: toggle  a: toggle all  Enter: confirm  Ctrl-O: back")
}

func renderResults(screen tcell.Screen, theme Theme, s *State, w, h int) {
	drawText(screen, 2, 1, theme.Success, fmt.Sprintf("Successes: %d", s.Stats.Successes))
	drawText(screen, 2, 2, theme.Text, fmt.Sprintf("Ignored: %d", s.Stats.Ignored))
	drawText(screen, 2, 3, theme.Error, fmt.Sprintf("Errors: %d", len(s.Stats.Errors)))
	if len(s.Stats.Errors) > 0 {
		e := s.Stats.Errors[s.Stats.ErrorsCursor]
		drawText(screen, 2, 5, theme.Error, fmt.Sprintf("%s:%d %s", e.Path, e.LineNumber, e.Outcome.Err))
	}
	drawText(screen, 2, h-1, theme.Info, "j/k: scroll errors  Enter/q: exit")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
