package minesweeper

import engine "github.com/vovakirdan/tui-sweeper/internal/minesweeper"

// StateType names the presentation state of the game.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateWon         StateType = "won"
	StateLost        StateType = "lost"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Size      int
	Mines     int
	Exposed   int
	Flags     int
	Moves     int
	Cursor    engine.Coord
	Board     string // Engine text dump: true board, exposure ignored
	MineCells []engine.Coord
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.State() == engine.Won:
		state = StateWon
	case g.board.State() == engine.Lost:
		state = StateLost
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Size:      g.board.Size(),
		Mines:     g.board.MineCount(),
		Exposed:   g.board.ExposedCount(),
		Flags:     g.board.Flags(),
		Moves:     g.moves,
		Cursor:    g.cursor,
		Board:     g.board.String(),
		MineCells: g.board.Mines(),
		State:     state,
	}
}
