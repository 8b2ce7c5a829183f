package tui

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme names the tcell styles the renderer draws each screen with.
// Adapted from cmd/tui's ThemeManager, which picked hex colors for a
// tview application; here the same palette maps directly onto
// tcell.Style values since the renderer draws cells, not tview widgets.
type Theme struct {
	Name string

	Text        tcell.Style
	Border      tcell.Style
	BorderFocus tcell.Style
	Success     tcell.Style
	Warning     tcell.Style
	Error       tcell.Style
	Info        tcell.Style
}

var (
	darkTheme = Theme{
		Name:        "dark",
		Text:        tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Border:      tcell.StyleDefault.Foreground(tcell.NewHexColor(0x404040)),
		BorderFocus: tcell.StyleDefault.Foreground(tcell.NewHexColor(0x4CAF50)),
		Success:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0x4CAF50)),
		Warning:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF9800)),
		Error:       tcell.StyleDefault.Foreground(tcell.NewHexColor(0xF44336)),
		Info:        tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2196F3)),
	}

	lightTheme = Theme{
		Name:        "light",
		Text:        tcell.StyleDefault.Foreground(tcell.NewHexColor(0x212121)),
		Border:      tcell.StyleDefault.Foreground(tcell.NewHexColor(0xBDBDBD)),
		BorderFocus: tcell.StyleDefault.Foreground(tcell.NewHexColor(0x1976D2)),
		Success:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0x4CAF50)),
		Warning:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF9800)),
		Error:       tcell.StyleDefault.Foreground(tcell.NewHexColor(0xF44336)),
		Info:        tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2196F3)),
	}

	helixTheme = Theme{
		Name:        "helix",
		Text:        tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2D3047)),
		Border:      tcell.StyleDefault.Foreground(tcell.NewHexColor(0x404040)),
		BorderFocus: tcell.StyleDefault.Foreground(tcell.NewHexColor(0xC2E95B)),
		Success:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0x4CAF50)),
		Warning:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF9800)),
		Error:       tcell.StyleDefault.Foreground(tcell.NewHexColor(0xF44336)),
		Info:        tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2196F3)),
	}

	themesByName = map[string]Theme{
		"dark": darkTheme, "light": lightTheme, "helix": helixTheme,
	}
)

// DetectTheme picks a theme from $RESWEEP_THEME, falling back to the
// dark palette.
func DetectTheme() Theme {
	if name := os.Getenv("RESWEEP_THEME"); name != "" {
		if t, ok := themesByName[strings.ToLower(name)]; ok {
			return t
		}
	}
	return darkTheme
}
