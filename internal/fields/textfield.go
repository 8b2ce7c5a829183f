// Package fields implements the editable form fields shared between the
// event reducer (sole writer) and the renderer (read-only snapshots): a
// text field with cursor and word-motion, a checkbox, and the four-field
// search/replace form.
package fields

// FieldError is a compile/validation annotation attached to a field: a
// short label for inline display and a longer message for the modal popup.
type FieldError struct {
	Short string
	Long  string
}

// TextField is an editable line of unicode scalars with a clamped cursor.
// The zero value is a usable empty field.
type TextField struct {
	chars  []rune
	cursor int
	err    *FieldError
}

// Text returns the field's current contents.
func (f *TextField) Text() string { return string(f.chars) }

// Cursor returns the current cursor index in [0, len(Text())].
func (f *TextField) Cursor() int { return f.cursor }

// Err returns the field's current error annotation, or nil.
func (f *TextField) Err() *FieldError { return f.err }

// SetErr annotates the field with a compile/validation error.
func (f *TextField) SetErr(e *FieldError) { f.err = e }

// ClearErr removes any error annotation.
func (f *TextField) ClearErr() { f.err = nil }

func (f *TextField) clampCursor(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(f.chars) {
		return len(f.chars)
	}
	return pos
}

// MoveCursorLeft moves the cursor one scalar to the left, clamped at 0.
func (f *TextField) MoveCursorLeft() { f.moveCursorLeftBy(1) }

func (f *TextField) moveCursorLeftBy(n int) {
	f.cursor = f.clampCursor(f.cursor - n)
}

// MoveCursorRight moves the cursor one scalar to the right, clamped at len.
func (f *TextField) MoveCursorRight() { f.moveCursorRightBy(1) }

func (f *TextField) moveCursorRightBy(n int) {
	f.cursor = f.clampCursor(f.cursor + n)
}

// MoveCursorStart moves the cursor to index 0.
func (f *TextField) MoveCursorStart() { f.cursor = 0 }

// MoveCursorEnd moves the cursor to the end of the text.
func (f *TextField) MoveCursorEnd() { f.cursor = len(f.chars) }

// EnterChar inserts a scalar at the cursor and advances it by one.
// Editing a field always clears its error annotation (§4.2).
func (f *TextField) EnterChar(r rune) {
	f.chars = append(f.chars[:f.cursor], append([]rune{r}, f.chars[f.cursor:]...)...)
	f.MoveCursorRight()
	f.ClearErr()
}

// DeleteChar removes the scalar immediately left of the cursor.
func (f *TextField) DeleteChar() {
	if f.cursor == 0 {
		return
	}
	f.chars = append(f.chars[:f.cursor-1], f.chars[f.cursor:]...)
	f.MoveCursorLeft()
	f.ClearErr()
}

// DeleteCharForward removes the scalar at the cursor.
func (f *TextField) DeleteCharForward() {
	if f.cursor >= len(f.chars) {
		return
	}
	f.chars = append(f.chars[:f.cursor], f.chars[f.cursor+1:]...)
	f.ClearErr()
}

// previousWordStart skips trailing spaces left of the cursor, then the
// non-space run, landing at the start of the word to the cursor's left.
func (f *TextField) previousWordStart() int {
	if f.cursor == 0 {
		return 0
	}
	idx := f.cursor - 1
	for idx > 0 && f.chars[idx] == ' ' {
		idx--
	}
	for idx > 0 && f.chars[idx-1] != ' ' {
		idx--
	}
	return idx
}

// MoveCursorBackWord moves the cursor to the start of the previous word.
func (f *TextField) MoveCursorBackWord() {
	f.cursor = f.previousWordStart()
}

// DeleteWordBackward removes the run from the previous word's start up to
// the cursor.
func (f *TextField) DeleteWordBackward() {
	start := f.previousWordStart()
	f.chars = append(f.chars[:start], f.chars[f.cursor:]...)
	f.cursor = start
	f.ClearErr()
}

// nextWordStart skips the non-space run at or after the cursor, then
// following spaces, landing at the start of the next word.
func (f *TextField) nextWordStart() int {
	idx := f.cursor
	n := len(f.chars)
	for idx < n && f.chars[idx] != ' ' {
		idx++
	}
	for idx < n && f.chars[idx] == ' ' {
		idx++
	}
	return idx
}

// MoveCursorForwardWord moves the cursor to the start of the next word.
func (f *TextField) MoveCursorForwardWord() {
	f.cursor = f.nextWordStart()
}

// DeleteWordForward removes the run from the cursor to the next word's
// start.
func (f *TextField) DeleteWordForward() {
	end := f.nextWordStart()
	f.chars = append(f.chars[:f.cursor], f.chars[end:]...)
	f.ClearErr()
}

// Clear empties the field and resets the cursor to 0.
func (f *TextField) Clear() {
	f.chars = f.chars[:0]
	f.cursor = 0
	f.ClearErr()
}
