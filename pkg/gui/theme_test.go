package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
)

func TestImportThemesBuiltin(t *testing.T) {
	th, err := ImportThemes("classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	if th.SquareDark != tcell.ColorBlue {
		t.Errorf("classic dark square %v", th.SquareDark)
	}
}

func TestImportThemesOverride(t *testing.T) {
	themes := []pkg.ThemeHex{{Name: "midnight", Selected: "#00ffff", SquareDark: "navy"}}
	th, err := ImportThemes("midnight", themes)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "midnight" {
		t.Errorf("name %q", th.Name)
	}
	if th.Selected != tcell.GetColor("#00ffff") {
		t.Errorf("selected color not applied: %v", th.Selected)
	}
	if th.SquareDark != tcell.ColorNavy {
		t.Errorf("dark square %v", th.SquareDark)
	}
	if th.SquareLight != ThemeBasic.SquareLight {
		t.Errorf("unset color not inherited: %v", th.SquareLight)
	}
}

func TestImportThemesMissing(t *testing.T) {
	if _, err := ImportThemes("nope", nil); err == nil {
		t.Error("expected error for unknown theme")
	}
}
