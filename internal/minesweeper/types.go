// Package minesweeper implements the board model and rules of Minesweeper:
// randomized mine placement, adjacent-mine counting, flood reveal and the
// play state machine. It has no external dependencies and does no I/O, so
// any presentation layer (terminal, web, tests) can drive it.
package minesweeper

import "fmt"

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Kind is the derived classification of a cell.
// It is computed from the mine flag and the adjacent count, never stored.
type Kind uint8

const (
	KindBlank    Kind = iota // No mine, no adjacent mines
	KindNumbered             // No mine, 1-8 adjacent mines
	KindMine
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "Blank"
	case KindNumbered:
		return "Numbered"
	case KindMine:
		return "Mine"
	default:
		return "Unknown"
	}
}

// GameState is the state of the play state machine.
// Won and Lost are terminal.
type GameState uint8

const (
	StillInProgress GameState = iota
	Won
	Lost
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StillInProgress:
		return "StillInProgress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further reveal can change the outcome.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}

// CellView is a read-only copy of a cell's state at a given position.
type CellView struct {
	Coord
	Kind     Kind
	Adjacent int  // Adjacent mine count, only meaningful for non-mine cells
	Exposed  bool // Revealed to the player
	Flagged  bool // Marked by the player as a suspected mine
}

// PlayResult is returned by Board.Play for every action.
type PlayResult struct {
	// Succeeded is false only when the action exposed a mine.
	Succeeded bool

	// State is the game state after the action.
	State GameState

	// Affected lists the cells whose visible state changed, in the order
	// they changed. Presentation layers redraw only these.
	Affected []CellView
}
