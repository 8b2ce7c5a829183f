package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// App owns the terminal lifecycle (alternate screen, raw mode) and the
// event-reducer run loop that merges the three input channels (§4.7,
// §6 Terminal I/O).
type App struct {
	screen  tcell.Screen
	theme   Theme
	reducer *Reducer
}

// NewApp installs an alternate-screen tcell terminal and wires up the
// reducer over the given config.
func NewApp(cfg Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	screen.EnableMouse()

	return &App{
		screen:  screen,
		theme:   DetectTheme(),
		reducer: NewReducer(cfg),
	}, nil
}

// Close restores the terminal. Safe to call after a panic via a
// deferred recover in the caller, satisfying §6's "restores the screen
// on exit (including on panic paths)".
func (a *App) Close() {
	a.screen.Fini()
}

// Run drives the event loop until the reducer signals exit. Three
// sources converge into one select, matching §4.7/§5 exactly: terminal
// key events, internal app events (currently unused but reserved for
// future fatal-error/resize signaling), and background-processing
// events from whatever worker the current screen owns.
func (a *App) Run() error {
	keyEvents := pollKeys(a.screen)
	appEvents := make(chan struct{})

	render(a.screen, a.theme, a.reducer.State)

	for {
		var hint Hint
		select {
		case ev, ok := <-keyEvents:
			if !ok {
				return nil
			}
			hint = a.reducer.HandleKey(ev)
		case <-appEvents:
			hint = Hint{Rerender: true}
		case ev, ok := <-a.reducer.BgChan():
			if !ok {
				continue
			}
			hint = a.reducer.HandleBg(ev)
		}

		if hint.Rerender {
			render(a.screen, a.theme, a.reducer.State)
		}
		if hint.Exit {
			return nil
		}
	}
}
