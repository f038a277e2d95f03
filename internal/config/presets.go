package config

import (
	"fmt"
	"sort"
	"strings"
)

// PresetNames returns the configured preset names, sorted by board area
// and then by name.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := c.Presets[names[i]], c.Presets[names[j]]
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		if a.Mines != b.Mines {
			return a.Mines < b.Mines
		}
		return names[i] < names[j]
	})
	return names
}

// ApplyPreset replaces the board with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p, ok := c.Presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(c.PresetNames(), ", "))
	}
	c.Board = p
	return nil
}

// Density returns the fraction of cells holding a mine.
func (b BoardConfig) Density() float64 {
	if b.Size <= 0 {
		return 0
	}
	return float64(b.Mines) / float64(b.Size*b.Size)
}
