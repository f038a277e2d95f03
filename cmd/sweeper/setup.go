package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var flagSave bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose a board interactively, then play",
	Long: `Pick one of the configured presets or set a custom size and mine
count, then start playing. Tab opens the results history.

With --save the chosen board is written to ~/.sweeper/config.yaml and
becomes the default for "sweeper play".`,
	Args: cobra.NoArgs,
	Run:  runSetup,
}

func init() {
	addBoardFlags(setupCmd)
	setupCmd.Flags().BoolVar(&flagSave, "save", false, "Save the chosen board as the default")
}

func runSetup(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	for {
		width, height := terminalSize()
		res, err := tui.RunSetup(cfg, width, height)
		if err != nil {
			logger.Error("setup failed", "err", err)
			os.Exit(1)
		}

		switch {
		case res.Quit:
			return

		case res.WantStats:
			if !showStats(width, height) {
				return
			}
			continue
		}

		cfg.Board = res.Board
		logger.Debug("board chosen", "preset", res.Preset, "size", res.Board.Size, "mines", res.Board.Mines)
		if flagSave {
			saveDefaultBoard(res.Board)
		}
		if err := playBoard(cfg); err != nil {
			logger.Error("game failed", "err", err)
			os.Exit(1)
		}
		return
	}
}

// showStats runs the stats screen and reports whether to go back to setup.
func showStats(width, height int) bool {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "err", err)
		store = nil
	}
	goBack, err := tui.RunStats(store, width, height)
	if store != nil {
		store.Close()
	}
	if err != nil {
		logger.Error("stats screen failed", "err", err)
		return false
	}
	return goBack
}

// saveDefaultBoard stores board in the user config, keeping the rest of it.
func saveDefaultBoard(board config.BoardConfig) {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("cannot find home directory", "err", err)
		return
	}
	path := filepath.Join(home, ".sweeper", "config.yaml")

	cfg, _, err := config.Load(path)
	if err != nil {
		// Missing or unreadable user config: start from the defaults.
		cfg = config.Default()
	}
	cfg.Board = board
	if err := config.Save(path, cfg); err != nil {
		logger.Warn("could not save config", "path", path, "err", err)
		return
	}
	logger.Info("saved default board", "path", path, "size", board.Size, "mines", board.Mines)
}
