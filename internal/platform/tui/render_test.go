package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '*', core.ColorBrightRed)
	s.SetColored(3, 0, '1', core.ColorBrightBlue)
	s.DrawTextColored(0, 1, "F", core.ColorBrightYellow)

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("RenderScreen() text = %q, expected %q", got, s.String())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(200)).Render("x") != styleFor(core.ColorDefault).Render("x") {
		t.Error("unknown colour should fall back to the default style")
	}
}

func TestEveryPaletteColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colour %d has no style", c)
		}
	}
}
