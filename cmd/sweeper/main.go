// sweeper is a terminal minesweeper.
//
// Usage:
//
//	sweeper play             - Play with the configured board
//	sweeper setup            - Pick a preset or custom board, then play
//	sweeper dump             - Print the mine layout for a seed
//	sweeper stats            - Show results history
//
// Global flags:
//
//	--fps <rate>        - Input ticks per second (default: 30)
//	--seed <value>      - RNG seed for reproducible boards
//	--db <path>         - Results database (default: ~/.sweeper/results.db)
//	--config <path>     - Config file (default search: ~/.sweeper, ./configs, embedded)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "sweeper",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `Sweeper is a terminal minesweeper. Reveal every cell that does not
hold a mine; numbers count the mines around a cell.

Available commands:
  play     - Play with the configured board
  setup    - Choose a board interactively, then play
  dump     - Print the mine layout for a seed
  stats    - Show results history

Examples:
  sweeper play
  sweeper play --size 9 --mines 10
  sweeper play --preset expert
  sweeper setup
  sweeper dump --seed 42 --size 5 --mines 3
  sweeper stats`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Input ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(statsCmd)
}
