package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 20x20 board with 40 mines.
func Default() Config {
	return Config{
		Board: BoardConfig{Size: 20, Mines: 40},
		Play: PlayConfig{
			ExposeOnEnd: true,
			WrapCursor:  false,
		},
		Presets: map[string]BoardConfig{
			"beginner":     {Size: 9, Mines: 10},
			"intermediate": {Size: 16, Mines: 40},
			"classic":      {Size: 20, Mines: 40},
			"expert":       {Size: 24, Mines: 99},
		},
	}
}

// DefaultPalette returns the colours used when the theme leaves a field empty.
func DefaultPalette() Palette {
	return Palette{
		Hidden: core.ColorGray,
		Blank:  core.ColorDefault,
		Mine:   core.ColorBrightRed,
		Flag:   core.ColorBrightYellow,
		Cursor: core.ColorBrightCyan,
		Numbers: [8]core.Color{
			core.ColorBrightBlue,
			core.ColorGreen,
			core.ColorRed,
			core.ColorBlue,
			core.ColorMagenta,
			core.ColorCyan,
			core.ColorWhite,
			core.ColorGray,
		},
	}
}
