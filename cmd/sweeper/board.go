package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

// Board flags shared by play, setup and dump.
var (
	flagSize   int
	flagMines  int
	flagPreset string
)

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSize, "size", 0, "Board side length (overrides config)")
	cmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines (overrides config)")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Named board preset from the config")
}

// loadConfig resolves the configuration file, then applies --preset and
// --size/--mines in that order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if flagPreset != "" {
		if err := cfg.ApplyPreset(flagPreset); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("size") {
		cfg.Board.Size = flagSize
	}
	if cmd.Flags().Changed("mines") {
		cfg.Board.Mines = flagMines
	}
	if err := cfg.Board.Validate("board"); err != nil {
		return cfg, err
	}

	logger.Debug("board", "size", cfg.Board.Size, "mines", cfg.Board.Mines, "density", fmt.Sprintf("%.1f%%", cfg.Board.Density()*100))
	return cfg, nil
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
