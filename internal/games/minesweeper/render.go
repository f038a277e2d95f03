package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	engine "github.com/vovakirdan/tui-sweeper/internal/minesweeper"
)

const (
	cellWidth    = 2 // Glyph plus a spacer column
	hudHeight    = 2 // Title and status lines above the board
	footerHeight = 1 // Hint or end-of-game banner below the board
	minHUDWidth  = 30
)

const (
	glyphHidden    = '#'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphDetonated = 'X'
	glyphBlank     = '.'
)

// boardWidth is the framed board width: borders, one spacer per cell and a
// trailing spacer so the cursor brackets fit.
func boardWidth(size int) int {
	return size*cellWidth + 3
}

func boardHeight(size int) int {
	return size + 2
}

// frame is the screen area of the framed board, centred horizontally
// below the HUD.
func (g *Game) frame() core.Rect {
	size := g.board.Size()
	return core.NewRect((g.screenW-boardWidth(size))/2, hudHeight, boardWidth(size), boardHeight(size))
}

// origin returns the top-left corner of the board frame.
func (g *Game) origin() (x, y int) {
	r := g.frame()
	return r.X, r.Y
}

// glyphPos returns the screen position of the glyph for cell c.
func (g *Game) glyphPos(c engine.Coord) (x, y int) {
	bx, by := g.origin()
	return bx + 2 + c.Col*cellWidth, by + 1 + c.Row
}

// cellAt maps a screen position to the cell drawn there. The spacer left
// of a glyph belongs to that glyph's cell.
func (g *Game) cellAt(x, y int) (engine.Coord, bool) {
	r := g.frame()
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if !inner.Contains(x, y) {
		return engine.Coord{}, false
	}
	c := engine.At(y-inner.Y, (x-inner.X)/cellWidth)
	return c, engine.InBounds(c, g.board.Size())
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	r := g.frame()
	g.renderHUD(dst, r.X)
	dst.DrawBox(r, core.ColorDefault)
	g.renderCells(dst)
	g.renderFooter(dst, r.Bottom())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.MinSize()
	need := fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH)

	panel := dst.Bounds().Centered(len(need)+4, 4)
	if panel.X >= 0 && panel.Y >= 0 {
		dst.DrawBox(panel, core.ColorGray)
	}
	dst.DrawTextCentered(panel.Y+1, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(panel.Y+2, need, core.ColorGray)
}

// renderHUD draws the title and the status line.
func (g *Game) renderHUD(dst *core.Screen, bx int) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	left := fmt.Sprintf("Mines: %d", g.MinesLeft())
	dst.DrawTextColored(max(bx, 0), 1, left, g.palette.Mine)

	right := fmt.Sprintf("Hidden: %d  Moves: %d", g.board.Remaining(), g.moves)
	rx := bx + boardWidth(g.board.Size()) - len(right)
	dst.DrawText(max(rx, max(bx, 0)+len(left)+2), 1, right)
}

// renderCells draws every cell from the view and the cursor brackets.
func (g *Game) renderCells(dst *core.Screen) {
	for _, v := range g.view {
		r, c := g.glyph(v)
		x, y := g.glyphPos(v.Coord)
		dst.SetColored(x, y, r, c)
	}

	if g.board.State().Terminal() {
		return
	}
	x, y := g.glyphPos(g.cursor)
	dst.SetColored(x-1, y, '[', g.palette.Cursor)
	dst.SetColored(x+1, y, ']', g.palette.Cursor)
}

// glyph picks the rune and colour for a cell.
func (g *Game) glyph(v engine.CellView) (rune, core.Color) {
	switch {
	case !v.Exposed && v.Flagged:
		return glyphFlag, g.palette.Flag
	case !v.Exposed:
		return glyphHidden, g.palette.Hidden
	case v.Kind == engine.KindMine:
		if g.detonated != nil && *g.detonated == v.Coord {
			return glyphDetonated, g.palette.Mine
		}
		return glyphMine, g.palette.Mine
	case v.Kind == engine.KindNumbered:
		return rune('0' + v.Adjacent), g.palette.Numbers[v.Adjacent-1]
	default:
		return glyphBlank, g.palette.Blank
	}
}

// renderFooter draws the key hint, or the outcome banner once the game ends.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch g.board.State() {
	case engine.Won:
		dst.DrawTextCentered(y, "YOU WIN!  r: new board  q: quit", core.ColorBrightGreen)
	case engine.Lost:
		dst.DrawTextCentered(y, "GAME OVER  r: new board  q: quit", core.ColorBrightRed)
	default:
		dst.DrawTextCentered(y, "arrows: move  space: reveal  f: flag", core.ColorGray)
	}
}
