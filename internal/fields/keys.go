package fields

// KeyCode enumerates the key identities the core form logic reacts to.
// The terminal collaborator (internal/tui) translates raw tcell events
// into these before handing them to a field or the reducer.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeyEnter
	KeyEsc
	KeyOther
)

// Mod is a bitmask of modifier keys held during a KeyEvent.
type Mod uint8

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << (iota - 1)
	ModAlt
	ModMeta
	ModShift
)

// KeyEvent is one key press, decoupled from any specific terminal library.
type KeyEvent struct {
	Code Key
	Mod  Mod
	Rune rune
}

// Key aliases KeyCode. The zero value KeyEvent{} is a KeyRune event
// carrying rune 0, which TextField.HandleKey inserts like any other rune.
type Key = KeyCode

// HandleKey applies one key event to the text field, mirroring the
// original's key-binding match arms exactly (§4.2).
func (f *TextField) HandleKey(ev KeyEvent) {
	switch {
	case ev.Code == KeyRune && ev.Rune == 'w' && ev.Mod&ModCtrl != 0,
		ev.Code == KeyBackspace && ev.Mod&ModAlt != 0:
		f.DeleteWordBackward()
	case ev.Code == KeyRune && ev.Rune == 'u' && ev.Mod&ModCtrl != 0,
		ev.Code == KeyBackspace && ev.Mod&ModMeta != 0:
		f.Clear()
	case ev.Code == KeyBackspace:
		f.DeleteChar()
	case (ev.Code == KeyLeft || (ev.Code == KeyRune && (ev.Rune == 'b' || ev.Rune == 'B'))) && ev.Mod&ModAlt != 0:
		f.MoveCursorBackWord()
	case ev.Code == KeyHome:
		f.MoveCursorStart()
	case ev.Code == KeyLeft:
		f.MoveCursorLeft()
	case (ev.Code == KeyRight || (ev.Code == KeyRune && (ev.Rune == 'f' || ev.Rune == 'F'))) && ev.Mod&ModAlt != 0:
		f.MoveCursorForwardWord()
	case ev.Code == KeyRight && ev.Mod&ModMeta != 0:
		f.MoveCursorEnd()
	case ev.Code == KeyEnd:
		f.MoveCursorEnd()
	case ev.Code == KeyRight:
		f.MoveCursorRight()
	case ev.Code == KeyRune && ev.Rune == 'd' && ev.Mod&ModAlt != 0,
		ev.Code == KeyDelete && ev.Mod&ModAlt != 0:
		f.DeleteWordForward()
	case ev.Code == KeyDelete:
		f.DeleteCharForward()
	case ev.Code == KeyRune:
		f.EnterChar(ev.Rune)
	}
}

// HandleKey toggles the checkbox on a literal space, and otherwise
// ignores the event.
func (c *CheckboxField) HandleKey(ev KeyEvent) {
	if ev.Code == KeyRune && ev.Rune == ' ' {
		c.Toggle()
	}
}
