package fields

import "testing"

func TestTextField_CursorClamp(t *testing.T) {
	var f TextField
	f.MoveCursorLeft()
	if f.Cursor() != 0 {
		t.Fatalf("cursor should clamp at 0, got %d", f.Cursor())
	}
	for _, r := range "hello" {
		f.EnterChar(r)
	}
	for i := 0; i < 10; i++ {
		f.MoveCursorRight()
	}
	if f.Cursor() != len([]rune(f.Text())) {
		t.Fatalf("cursor should clamp at len, got %d", f.Cursor())
	}
}

func TestTextField_InsertThenBackspaceIdentity(t *testing.T) {
	var f TextField
	for _, r := range "hello world" {
		f.EnterChar(r)
	}
	before := f.Text()
	cursorBefore := f.Cursor()

	f.EnterChar('x')
	f.DeleteChar()

	if f.Text() != before || f.Cursor() != cursorBefore {
		t.Fatalf("insert+backspace should be identity: got %q/%d, want %q/%d", f.Text(), f.Cursor(), before, cursorBefore)
	}
}

func TestTextField_WordMotionSymmetry(t *testing.T) {
	var f TextField
	for _, r := range "foo bar baz" {
		f.EnterChar(r)
	}
	f.MoveCursorStart()

	f.MoveCursorForwardWord()
	afterForward := f.Cursor()
	f.MoveCursorBackWord()
	if f.Cursor() != 0 {
		t.Fatalf("back word from start of second word should return to 0, got %d", f.Cursor())
	}

	f.cursor = afterForward
	f.MoveCursorForwardWord()
	f.MoveCursorBackWord()
	if f.Cursor() != afterForward {
		t.Fatalf("forward then back from a word start should be idempotent: got %d, want %d", f.Cursor(), afterForward)
	}
}

func TestTextField_DeleteWordBackward(t *testing.T) {
	var f TextField
	for _, r := range "foo bar" {
		f.EnterChar(r)
	}
	f.DeleteWordBackward()
	if f.Text() != "foo " {
		t.Fatalf("got %q, want %q", f.Text(), "foo ")
	}
}

func TestTextField_ClearClearsCursorAndError(t *testing.T) {
	var f TextField
	for _, r := range "abc" {
		f.EnterChar(r)
	}
	f.SetErr(&FieldError{Short: "bad", Long: "bad pattern"})
	f.Clear()
	if f.Text() != "" || f.Cursor() != 0 {
		t.Fatalf("clear should reset text and cursor")
	}
	if f.Err() != nil {
		t.Fatalf("clear should drop the error annotation")
	}
}

func TestTextField_EditingClearsError(t *testing.T) {
	var f TextField
	f.SetErr(&FieldError{Short: "bad", Long: "bad pattern"})
	f.EnterChar('a')
	if f.Err() != nil {
		t.Fatalf("editing should clear a prior error annotation")
	}
}

func TestTextField_HandleKey_WordBindings(t *testing.T) {
	var f TextField
	for _, r := range "foo bar" {
		f.EnterChar(r)
	}
	f.HandleKey(KeyEvent{Code: KeyRune, Rune: 'w', Mod: ModCtrl})
	if f.Text() != "foo " {
		t.Fatalf("ctrl-w should delete word backward, got %q", f.Text())
	}
	f.HandleKey(KeyEvent{Code: KeyRune, Rune: 'u', Mod: ModCtrl})
	if f.Text() != "" {
		t.Fatalf("ctrl-u should clear, got %q", f.Text())
	}
}

func TestCheckboxField_Toggle(t *testing.T) {
	var c CheckboxField
	if c.Checked {
		t.Fatalf("zero value should be unchecked")
	}
	c.HandleKey(KeyEvent{Code: KeyRune, Rune: ' '})
	if !c.Checked {
		t.Fatalf("space should toggle checkbox on")
	}
	c.HandleKey(KeyEvent{Code: KeyRune, Rune: 'x'})
	if !c.Checked {
		t.Fatalf("non-space keys must not affect the checkbox")
	}
}

func TestForm_FocusWrap(t *testing.T) {
	var f Form
	for i := 0; i < 4; i++ {
		f.FocusNext()
	}
	if f.Highlighted() != FieldSearch {
		t.Fatalf("four FocusNext calls should be the identity, got %d", f.Highlighted())
	}
	for i := 0; i < 4; i++ {
		f.FocusPrev()
	}
	if f.Highlighted() != FieldSearch {
		t.Fatalf("four FocusPrev calls should be the identity, got %d", f.Highlighted())
	}
}

func TestForm_Validate_InvalidPattern(t *testing.T) {
	var f Form
	f.Search.EnterChar('[')
	f.Search.EnterChar('i')

	_, _, err := f.Validate(false)
	if err == nil {
		t.Fatalf("expected a compile error for an unbalanced character class")
	}
	if f.Search.Err() == nil {
		t.Fatalf("expected the search field to be annotated")
	}
	if !f.ShowError() {
		t.Fatalf("expected the modal error flag to be set")
	}
}

func TestForm_Validate_FixedStringsMode(t *testing.T) {
	var f Form
	f.FixedStrings.Toggle()
	for _, r := range ".*" {
		f.Search.EnterChar(r)
	}
	search, _, err := f.Validate(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !search.Matches("a.*b") {
		t.Fatalf("literal mode should require the literal substring, not regex semantics")
	}
	if search.Matches("aXb") {
		t.Fatalf("literal mode must not interpret .* as a wildcard")
	}
}
