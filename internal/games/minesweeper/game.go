// Package minesweeper adapts the minesweeper engine to the terminal
// platform: it owns a cursor, turns actions into Board.Play calls and
// renders the board, HUD and end-of-game overlays into a core.Screen.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	engine "github.com/vovakirdan/tui-sweeper/internal/minesweeper"
)

// Game is a single-player minesweeper session.
type Game struct {
	cfg     config.Config
	palette config.Palette
	rng     *rand.Rand
	board   *engine.Board
	seed    int64
	tick    uint64

	// view mirrors the board as last reported by the engine. It is updated
	// from PlayResult.Affected, and replaced wholesale after ExposeAll.
	view      []engine.CellView
	cursor    engine.Coord
	detonated *engine.Coord // Mine that ended the game, if any
	moves     int
	exposed   int // Cells exposed by play, not counting ExposeAll

	screenW  int
	screenH  int
	tooSmall bool
}

// New validates cfg and creates a game. Reset must be called before Step.
func New(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(1))
	board, err := engine.NewBoard(cfg.Board.Size, cfg.Board.Mines, rng)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	return &Game{
		cfg:     cfg,
		palette: palette,
		rng:     rng,
		board:   board,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Minesweeper %dx%d", g.cfg.Board.Size, g.cfg.Board.Size)
}

// Reset lays out a fresh board using cfg.Seed and centers the cursor.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng.Seed(cfg.Seed)
	g.board.Initialize()

	g.tick = 0
	g.moves = 0
	g.exposed = 0
	g.detonated = nil
	g.view = g.board.Cells()

	size := g.board.Size()
	g.cursor = engine.At(size/2, size/2)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// MinSize returns the smallest screen that fits the board, HUD and hint.
func (g *Game) MinSize() (w, h int) {
	size := g.board.Size()
	return max(boardWidth(size), minHUDWidth), boardHeight(size) + hudHeight + footerHeight
}

// Step applies the actions collected during one tick, in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	changed := 0
	for _, a := range in.Actions {
		var (
			n   int
			err error
		)
		switch a {
		case core.ActionUp:
			g.moveCursor(-1, 0)
		case core.ActionDown:
			g.moveCursor(1, 0)
		case core.ActionLeft:
			g.moveCursor(0, -1)
		case core.ActionRight:
			g.moveCursor(0, 1)
		case core.ActionReveal:
			n, err = g.play(false)
		case core.ActionFlag:
			n, err = g.play(true)
		}
		changed += n
		if err != nil {
			return core.StepResult{State: g.State(), Changed: changed, Err: err}
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// moveCursor shifts the cursor, clamping or wrapping at the edges.
func (g *Game) moveCursor(dr, dc int) {
	size := g.board.Size()
	row, col := g.cursor.Row+dr, g.cursor.Col+dc
	if g.cfg.Play.WrapCursor {
		row, col = core.Wrap(row, size), core.Wrap(col, size)
	} else {
		row, col = core.Clamp(row, 0, size-1), core.Clamp(col, 0, size-1)
	}
	g.cursor = engine.At(row, col)
}

// MoveCursorTo places the cursor on the cell under screen position (x, y).
// It reports false when the position is not on a cell.
func (g *Game) MoveCursorTo(x, y int) bool {
	if g.tooSmall {
		return false
	}
	pos, ok := g.cellAt(x, y)
	if !ok {
		return false
	}
	g.cursor = pos
	return true
}

// play forwards one action at the cursor to the engine and folds the
// affected cells into the view. It returns the number of cells changed.
func (g *Game) play(flag bool) (int, error) {
	if g.board.State().Terminal() {
		return 0, nil
	}

	result, err := g.board.Play(g.cursor.Row, g.cursor.Col, flag)
	if err != nil {
		return 0, fmt.Errorf("play %s: %w", g.cursor, err)
	}

	for _, v := range result.Affected {
		g.view[v.Row*g.board.Size()+v.Col] = v
	}
	changed := len(result.Affected)
	if changed > 0 {
		g.moves++
	}
	g.exposed = g.board.ExposedCount()
	if !result.Succeeded {
		hit := g.cursor
		g.detonated = &hit
	}

	if result.State.Terminal() && g.cfg.Play.ExposeOnEnd {
		before := g.board.ExposedCount()
		if err := g.board.ExposeAll(); err != nil {
			return changed, fmt.Errorf("expose board: %w", err)
		}
		g.view = g.board.Cells()
		changed += g.board.ExposedCount() - before
	}
	return changed, nil
}

// State returns the platform view of the game state.
func (g *Game) State() core.GameState {
	s := g.board.State()
	return core.GameState{
		GameOver: s.Terminal(),
		Won:      s == engine.Won,
		Exposed:  g.exposed,
		Moves:    g.moves,
	}
}

// Board returns the underlying engine board.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Seed returns the seed the current board was laid out with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() engine.Coord {
	return g.cursor
}

// MinesLeft is the mine count minus placed flags. It goes negative when
// the player over-flags.
func (g *Game) MinesLeft() int {
	return g.board.MineCount() - g.board.Flags()
}
