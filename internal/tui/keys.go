package tui

import (
	"github.com/gdamore/tcell/v2"

	"resweep/internal/fields"
)

// pollKeys translates raw tcell key events into fields.KeyEvent and
// publishes them on the returned channel until screen.Fini is called,
// at which point tcell's PollEvent returns nil and the goroutine exits.
//
// This is the key-event source §1 puts out of core scope, specified
// only by the channel interface the reducer consumes.
func pollKeys(screen tcell.Screen) <-chan fields.KeyEvent {
	out := make(chan fields.KeyEvent)
	go func() {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			keyEv, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			out <- translateKey(keyEv)
		}
	}()
	return out
}

func translateKey(ev *tcell.EventKey) fields.KeyEvent {
	mod := translateMod(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return fields.KeyEvent{Code: fields.KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return fields.KeyEvent{Code: fields.KeyDelete, Mod: mod}
	case tcell.KeyLeft:
		return fields.KeyEvent{Code: fields.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return fields.KeyEvent{Code: fields.KeyRight, Mod: mod}
	case tcell.KeyUp:
		return fields.KeyEvent{Code: fields.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return fields.KeyEvent{Code: fields.KeyDown, Mod: mod}
	case tcell.KeyHome:
		return fields.KeyEvent{Code: fields.KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return fields.KeyEvent{Code: fields.KeyEnd, Mod: mod}
	case tcell.KeyTab:
		return fields.KeyEvent{Code: fields.KeyTab, Mod: mod}
	case tcell.KeyBacktab:
		return fields.KeyEvent{Code: fields.KeyTab, Mod: mod | fields.ModShift}
	case tcell.KeyEnter:
		return fields.KeyEvent{Code: fields.KeyEnter, Mod: mod}
	case tcell.KeyEsc:
		return fields.KeyEvent{Code: fields.KeyEsc, Mod: mod}
	case tcell.KeyCtrlC:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'c', Mod: mod | fields.ModCtrl}
	case tcell.KeyCtrlW:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'w', Mod: mod | fields.ModCtrl}
	case tcell.KeyCtrlU:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'u', Mod: mod | fields.ModCtrl}
	case tcell.KeyCtrlN:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'n', Mod: mod | fields.ModCtrl}
	case tcell.KeyCtrlP:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'p', Mod: mod | fields.ModCtrl}
	case tcell.KeyCtrlO:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'o', Mod: mod | fields.ModCtrl}
	case tcell.KeyCtrlR:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: 'r', Mod: mod | fields.ModCtrl}
	case tcell.KeyRune:
		return fields.KeyEvent{Code: fields.KeyRune, Rune: ev.Rune(), Mod: mod}
	default:
		return fields.KeyEvent{Code: fields.KeyOther, Mod: mod}
	}
}

func translateMod(m tcell.ModMask) fields.Mod {
	var out fields.Mod
	if m&tcell.ModAlt != 0 {
		out |= fields.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= fields.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		out |= fields.ModShift
	}
	if m&tcell.ModMeta != 0 {
		out |= fields.ModMeta
	}
	return out
}
