// Package config provides YAML-based configuration loading and validation
// for the minesweeper board, play options and colour theme.
package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// MaxBoardSize bounds the side length so a board fits a terminal.
const MaxBoardSize = 99

// Config contains all configuration for a minesweeper session.
type Config struct {
	Board   BoardConfig            `yaml:"board"`
	Play    PlayConfig             `yaml:"play"`
	Theme   ThemeConfig            `yaml:"theme"`
	Presets map[string]BoardConfig `yaml:"presets"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Size  int `yaml:"size"`  // Side length, the board is Size x Size
	Mines int `yaml:"mines"` // Number of mines
}

// PlayConfig toggles presentation behaviour.
type PlayConfig struct {
	ExposeOnEnd bool `yaml:"expose_on_end"` // Expose the whole board on win or loss
	WrapCursor  bool `yaml:"wrap_cursor"`   // Cursor wraps around board edges
}

// ThemeConfig names the colours used to draw the board.
type ThemeConfig struct {
	Hidden  string   `yaml:"hidden"`
	Blank   string   `yaml:"blank"`
	Mine    string   `yaml:"mine"`
	Flag    string   `yaml:"flag"`
	Cursor  string   `yaml:"cursor"`
	Numbers []string `yaml:"numbers"` // Colour for 1..8 adjacent mines
}

// Palette is a resolved ThemeConfig.
type Palette struct {
	Hidden  core.Color
	Blank   core.Color
	Mine    core.Color
	Flag    core.Color
	Cursor  core.Color
	Numbers [8]core.Color
}

// ValidationError reports a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the board against the engine rules and the theme
// against the known colour names.
func (c Config) Validate() error {
	if err := c.Board.Validate("board"); err != nil {
		return err
	}
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.Presets[name].Validate("presets." + name); err != nil {
			return err
		}
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// Validate checks size and mine count. field prefixes the error field name.
func (b BoardConfig) Validate(field string) error {
	switch {
	case b.Size <= 0:
		return &ValidationError{Field: field + ".size", Message: fmt.Sprintf("must be positive, got %d", b.Size)}
	case b.Size > MaxBoardSize:
		return &ValidationError{Field: field + ".size", Message: fmt.Sprintf("must be at most %d, got %d", MaxBoardSize, b.Size)}
	case b.Mines < 0:
		return &ValidationError{Field: field + ".mines", Message: fmt.Sprintf("must not be negative, got %d", b.Mines)}
	case b.Mines > b.Size*b.Size:
		return &ValidationError{Field: field + ".mines", Message: fmt.Sprintf("%d mines do not fit a %dx%d board", b.Mines, b.Size, b.Size)}
	}
	return nil
}

// Palette resolves colour names. Empty names fall back to the default palette.
func (t ThemeConfig) Palette() (Palette, error) {
	p := DefaultPalette()
	pick := func(field, name string, dst *core.Color) error {
		if name == "" {
			return nil
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return &ValidationError{Field: "theme." + field, Message: fmt.Sprintf("unknown colour %q", name)}
		}
		*dst = c
		return nil
	}
	fields := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"hidden", t.Hidden, &p.Hidden},
		{"blank", t.Blank, &p.Blank},
		{"mine", t.Mine, &p.Mine},
		{"flag", t.Flag, &p.Flag},
		{"cursor", t.Cursor, &p.Cursor},
	}
	for _, f := range fields {
		if err := pick(f.field, f.name, f.dst); err != nil {
			return p, err
		}
	}
	if len(t.Numbers) > len(p.Numbers) {
		return p, &ValidationError{Field: "theme.numbers", Message: fmt.Sprintf("at most %d colours, got %d", len(p.Numbers), len(t.Numbers))}
	}
	for i, name := range t.Numbers {
		if err := pick(fmt.Sprintf("numbers[%d]", i), name, &p.Numbers[i]); err != nil {
			return p, err
		}
	}
	return p, nil
}
