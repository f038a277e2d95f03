package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagRecent      int
	flagClear       bool
	flagInteractive bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show results history",
	Long: `Display win/loss totals per board and the most recent games.

Examples:
  sweeper stats
  sweeper stats --recent 20
  sweeper stats -i
  sweeper stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent games to list")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in the terminal UI")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open results database", "path", flagDBPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			logger.Error("cannot clear results", "err", err)
			os.Exit(1)
		}
		logger.Info("results cleared", "path", flagDBPath)
		return
	}

	if flagInteractive {
		width, height := terminalSize()
		if _, err := tui.RunStats(store, width, height); err != nil {
			logger.Error("stats screen failed", "err", err)
			os.Exit(1)
		}
		return
	}

	boards, err := store.AllStats()
	if err != nil {
		logger.Error("cannot read stats", "err", err)
		os.Exit(1)
	}
	if len(boards) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	styled := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	}

	totals := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(styled).
		Headers("Board", "Played", "Won", "Lost", "Win rate", "Last played")
	for _, b := range boards {
		totals.Row(
			fmt.Sprintf("%dx%d / %d", b.Size, b.Size, b.Mines),
			strconv.Itoa(b.Played),
			strconv.Itoa(b.Won),
			strconv.Itoa(b.Lost),
			fmt.Sprintf("%.0f%%", b.WinRate()*100),
			b.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(totals.Render())

	if flagRecent <= 0 {
		return
	}
	results, err := store.RecentResults(flagRecent)
	if err != nil {
		logger.Error("cannot read results", "err", err)
		os.Exit(1)
	}

	recent := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(styled).
		Headers("Date", "Board", "Outcome", "Exposed", "Moves", "Seed")
	for _, r := range results {
		recent.Row(
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d / %d", r.Size, r.Size, r.Mines),
			string(r.Outcome),
			strconv.Itoa(r.Exposed),
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.Seed, 10),
		)
	}
	fmt.Println(recent.Render())
}
