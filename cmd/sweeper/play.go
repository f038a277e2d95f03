package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minesweeper",
	Long: `Start a game with the configured board.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Reveal (or left click)
  F/M               - Flag a suspected mine (or right click)
  R                 - New board
  ?                 - More keys
  Q/Ctrl+C          - Quit

Examples:
  sweeper play
  sweeper play --size 9 --mines 10
  sweeper play --preset beginner --seed 7
  sweeper play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if err := playBoard(cfg); err != nil {
		logger.Error("game failed", "err", err)
		os.Exit(1)
	}
}

// playBoard runs the game until the player quits and logs every recorded game.
func playBoard(cfg config.Config) error {
	game, err := minesweeper.New(cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := terminalSize()
	session, runErr := tui.Run(game, tui.Board{Size: cfg.Board.Size, Mines: cfg.Board.Mines}, store, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	if store != nil {
		store.Close()
	}

	for _, r := range session.Results {
		logger.Info("game finished",
			"size", r.Size,
			"mines", r.Mines,
			"outcome", r.Outcome,
			"exposed", r.Exposed,
			"moves", r.Moves,
			"seed", r.Seed,
		)
	}
	if session.SaveError != nil {
		logger.Warn("could not record results", "err", session.SaveError)
	}
	if runErr == nil && session.GameError != nil {
		return fmt.Errorf("game stopped: %w", session.GameError)
	}
	return runErr
}
