package fields

import "resweep/internal/pattern"

// Field indexes into Form, in declaration order.
const (
	FieldSearch = iota
	FieldReplace
	FieldFixedStrings
	FieldPathPattern
	numFields
)

// Form holds the four search/replace fields plus focus and modal-error
// state. The zero value is a usable form with focus on the Search field.
type Form struct {
	Search       TextField
	Replace      TextField
	FixedStrings CheckboxField
	PathPattern  TextField

	highlighted int
	showError   bool
}

// Highlighted returns the currently focused field index, always in [0,4).
func (f *Form) Highlighted() int { return f.highlighted }

// ShowError reports whether the modal compile-error popup is open.
func (f *Form) ShowError() bool { return f.showError }

// DismissError closes the modal popup without altering field errors.
func (f *Form) DismissError() { f.showError = false }

// FocusNext advances focus to the next field, wrapping modulo four.
func (f *Form) FocusNext() {
	f.highlighted = (f.highlighted + 1) % numFields
}

// FocusPrev moves focus to the previous field, wrapping modulo four.
func (f *Form) FocusPrev() {
	f.highlighted = (f.highlighted - 1 + numFields) % numFields
}

// HandleKey routes a key event to whichever field currently has focus.
// Form-level keys (Tab/Shift-Tab/Enter) are handled by the caller before
// reaching here; see internal/tui's reducer wiring.
func (f *Form) HandleKey(ev KeyEvent) {
	switch f.highlighted {
	case FieldSearch:
		f.Search.HandleKey(ev)
	case FieldReplace:
		f.Replace.HandleKey(ev)
	case FieldFixedStrings:
		f.FixedStrings.HandleKey(ev)
	case FieldPathPattern:
		f.PathPattern.HandleKey(ev)
	}
}

// searchMode resolves which pattern engine the search/path fields compile
// under, following §4.1's precedence: FixedStrings beats AdvancedRegex
// beats Regex.
func (f *Form) searchMode(advancedRegex bool) pattern.Mode {
	switch {
	case f.FixedStrings.Checked:
		return pattern.Literal
	case advancedRegex:
		return pattern.AdvancedRegex
	default:
		return pattern.Regex
	}
}

// Validate attempts to compile the Search and PathPattern fields under the
// resolved mode. An empty path pattern is valid (no filter). Each field is
// annotated independently from its own compile result — a failing field
// gets the error, a passing field has any prior annotation cleared — so a
// single invalid pattern only marks the field that produced it, matching
// the "Invalid pattern" scenario where only Search is annotated. The modal
// flag is set whenever either field fails; on success both annotations are
// cleared.
func (f *Form) Validate(advancedRegex bool) (search *pattern.Pattern, pathFilter *pattern.Pattern, err error) {
	mode := f.searchMode(advancedRegex)

	search, searchErr := pattern.Compile(f.Search.Text(), mode)

	var pathErr error
	if f.PathPattern.Text() != "" {
		pathFilter, pathErr = pattern.Compile(f.PathPattern.Text(), mode)
	}

	if searchErr == nil && pathErr == nil {
		f.Search.ClearErr()
		f.PathPattern.ClearErr()
		return search, pathFilter, nil
	}

	f.showError = true
	if searchErr != nil {
		f.Search.SetErr(toFieldError(searchErr))
	} else {
		f.Search.ClearErr()
	}
	if pathErr != nil {
		f.PathPattern.SetErr(toFieldError(pathErr))
	} else {
		f.PathPattern.ClearErr()
	}

	if searchErr != nil {
		return nil, nil, searchErr
	}
	return nil, nil, pathErr
}

func toFieldError(err error) *FieldError {
	if ipe, ok := err.(*pattern.InvalidPatternError); ok {
		return &FieldError{Short: ipe.Short, Long: ipe.Long}
	}
	return &FieldError{Short: "invalid pattern", Long: err.Error()}
}
