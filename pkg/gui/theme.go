package gui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name         string
	Title        tcell.Color
	Subtitle     tcell.Color
	Selected     tcell.Color
	Unselected   tcell.Color
	Notice       tcell.Color
	Border       tcell.Color
	SquareDark   tcell.Color
	SquareLight  tcell.Color
	SquareCursor tcell.Color
	SquareHigh   tcell.Color
	White        tcell.Color
	Black        tcell.Color
	Rank         tcell.Color
	File         tcell.Color
	Ledger       tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",             // Name
	tcell.ColorWhite,    // Title
	tcell.ColorWhite,    // Subtitle
	tcell.ColorDarkCyan, // Selected
	tcell.ColorDarkGray, // Unselected
	tcell.Color160,      // Notice
	tcell.ColorDefault,  // Border
	tcell.Color188,      // SquareDark
	tcell.Color230,      // SquareLight
	tcell.Color223,      // SquareCursor
	tcell.Color226,      // SquareHigh
	tcell.Color232,      // White
	tcell.Color232,      // Black
	tcell.Color247,      // Rank
	tcell.Color247,      // File
	tcell.ColorDefault,  // Ledger
}

// ThemeClassic uses blue and green squares.
var ThemeClassic = Theme{
	"classic",           // Name
	tcell.ColorYellow,   // Title
	tcell.ColorWhite,    // Subtitle
	tcell.ColorAqua,     // Selected
	tcell.ColorGray,     // Unselected
	tcell.ColorRed,      // Notice
	tcell.ColorGreen,    // Border
	tcell.ColorBlue,     // SquareDark
	tcell.ColorGreen,    // SquareLight
	tcell.ColorRed,      // SquareCursor
	tcell.ColorYellow,   // SquareHigh
	tcell.ColorWhite,    // White
	tcell.ColorBlack,    // Black
	tcell.ColorWhite,    // Rank
	tcell.ColorWhite,    // File
	tcell.ColorDefault,  // Ledger
}

var builtinThemes = []Theme{ThemeBasic, ThemeClassic}

func overrideColor(c tcell.Color, hex string) tcell.Color {
	if hex == "" {
		return c
	}
	return tcell.GetColor(hex)
}

// FromHex applies the colors set in h on top of base.
func FromHex(h pkg.ThemeHex, base Theme) Theme {
	t := base
	t.Name = h.Name
	t.Title = overrideColor(t.Title, h.Title)
	t.Subtitle = overrideColor(t.Subtitle, h.Subtitle)
	t.Selected = overrideColor(t.Selected, h.Selected)
	t.Unselected = overrideColor(t.Unselected, h.Unselected)
	t.Notice = overrideColor(t.Notice, h.Notice)
	t.Border = overrideColor(t.Border, h.Border)
	t.SquareDark = overrideColor(t.SquareDark, h.SquareDark)
	t.SquareLight = overrideColor(t.SquareLight, h.SquareLight)
	t.SquareCursor = overrideColor(t.SquareCursor, h.SquareCursor)
	t.SquareHigh = overrideColor(t.SquareHigh, h.SquareHigh)
	t.White = overrideColor(t.White, h.White)
	t.Black = overrideColor(t.Black, h.Black)
	t.Rank = overrideColor(t.Rank, h.Rank)
	t.File = overrideColor(t.File, h.File)
	t.Ledger = overrideColor(t.Ledger, h.Ledger)
	return t
}

// ImportThemes returns the theme named want. Themes from the config take
// precedence over the built in ones and inherit unset colors from ThemeBasic.
func ImportThemes(want string, themes []pkg.ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return FromHex(t, ThemeBasic), nil
		}
	}
	for _, t := range builtinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}
