package minesweeper

import "fmt"

// Board is a size x size Minesweeper grid and its play state machine.
//
// A Board is not safe for concurrent use; wrap it in a SyncBoard when more
// than one goroutine drives it.
type Board struct {
	size      int
	mineCount int
	rng       RandomSource
	cells     []cell // Row-major: index = row*size + col

	exposed     int // Number of exposed cells, mines included
	flags       int // Number of flagged cells
	state       GameState
	initialized bool
}

// NewBoard validates the configuration and returns an empty board.
// Initialize must be called before Play.
func NewBoard(size, mineCount int, rng RandomSource) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d must be positive", ErrInvalidConfiguration, size)
	}
	if mineCount < 0 || mineCount > size*size {
		return nil, fmt.Errorf("%w: mine count %d must be in [0, %d]", ErrInvalidConfiguration, mineCount, size*size)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}

	return &Board{
		size:      size,
		mineCount: mineCount,
		rng:       rng,
		cells:     make([]cell, size*size),
	}, nil
}

// Initialize places the mines, derives the adjacent counts and resets all
// counters. Calling it again re-randomizes the board.
func (b *Board) Initialize() {
	placeMines(b.cells, b.mineCount, b.rng)
	countNeighbors(b.cells, b.size)

	b.exposed = 0
	b.flags = 0
	b.state = StillInProgress
	b.initialized = true
}

// Play applies one user action to the cell at (row, col): a flag toggle
// when flag is true, a reveal otherwise.
func (b *Board) Play(row, col int, flag bool) (PlayResult, error) {
	if !b.initialized {
		return PlayResult{}, ErrNotInitialized
	}
	pos := Coord{Row: row, Col: col}
	if err := b.checkBounds(pos); err != nil {
		return PlayResult{}, err
	}

	if flag {
		return b.toggleFlag(pos), nil
	}
	return b.reveal(pos), nil
}

// toggleFlag flips the flag of an unexposed cell. Flags never change the
// exposed count or the game state.
func (b *Board) toggleFlag(pos Coord) PlayResult {
	result := PlayResult{Succeeded: true, State: b.state}
	if b.state.Terminal() {
		return result
	}

	c := &b.cells[b.index(pos)]
	if !c.toggleFlag() {
		return result
	}
	if c.flagged {
		b.flags++
	} else {
		b.flags--
	}
	result.Affected = []CellView{c.view(pos)}
	return result
}

// reveal exposes a cell, floods from it when it is blank and runs the
// state transition.
func (b *Board) reveal(pos Coord) PlayResult {
	if b.state.Terminal() {
		return PlayResult{Succeeded: true, State: b.state}
	}

	c := &b.cells[b.index(pos)]
	wasFlagged := c.flagged
	if !c.expose() {
		// Re-clicking an exposed cell is an idempotent success.
		return PlayResult{Succeeded: true, State: b.state}
	}
	if wasFlagged {
		b.flags--
	}
	b.exposed++
	affected := []CellView{c.view(pos)}

	switch c.kind() {
	case KindMine:
		b.state = Lost
		return PlayResult{Succeeded: false, State: b.state, Affected: affected}
	case KindBlank:
		affected = b.flood(pos, affected)
	}

	if b.exposed == b.size*b.size-b.mineCount {
		b.state = Won
	}
	return PlayResult{Succeeded: true, State: b.state, Affected: affected}
}

// ExposeAll exposes every hidden cell so a presentation layer can render
// the whole board, typically after a terminal state. It does not flood and
// leaves a terminal state as it is. Called while the game is still in
// progress it ends the game: Lost if the board holds a mine, which is now
// exposed, and Won otherwise, since every safe cell is exposed.
func (b *Board) ExposeAll() error {
	if !b.initialized {
		return ErrNotInitialized
	}
	for i := range b.cells {
		wasFlagged := b.cells[i].flagged
		if b.cells[i].expose() {
			b.exposed++
			if wasFlagged {
				b.flags--
			}
		}
	}
	if b.state == StillInProgress {
		if b.mineCount > 0 {
			b.state = Lost
		} else {
			b.state = Won
		}
	}
	return nil
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (CellView, error) {
	pos := Coord{Row: row, Col: col}
	if err := b.checkBounds(pos); err != nil {
		return CellView{}, err
	}
	return b.cells[b.index(pos)].view(pos), nil
}

// Cells returns a copy of every cell in row-major order.
func (b *Board) Cells() []CellView {
	views := make([]CellView, len(b.cells))
	for i := range b.cells {
		views[i] = b.cells[i].view(b.coord(i))
	}
	return views
}

// Mines returns the positions of all mines in row-major order.
func (b *Board) Mines() []Coord {
	mines := make([]Coord, 0, b.mineCount)
	for i := range b.cells {
		if b.cells[i].mine {
			mines = append(mines, b.coord(i))
		}
	}
	return mines
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// MineCount returns the configured number of mines.
func (b *Board) MineCount() int {
	return b.mineCount
}

// ExposedCount returns the number of exposed cells.
func (b *Board) ExposedCount() int {
	return b.exposed
}

// Flags returns the number of flagged cells.
func (b *Board) Flags() int {
	return b.flags
}

// Remaining returns the number of safe cells still hidden.
func (b *Board) Remaining() int {
	remaining := 0
	for i := range b.cells {
		if !b.cells[i].mine && !b.cells[i].exposed {
			remaining++
		}
	}
	return remaining
}

// State returns the current game state.
func (b *Board) State() GameState {
	return b.state
}

// Initialized returns true once Initialize has run.
func (b *Board) Initialized() bool {
	return b.initialized
}

// index converts a coordinate to a slot index.
func (b *Board) index(c Coord) int {
	return c.Row*b.size + c.Col
}

// coord converts a slot index to a coordinate.
func (b *Board) coord(i int) Coord {
	return Coord{Row: i / b.size, Col: i % b.size}
}

// checkBounds rejects positions outside the board.
func (b *Board) checkBounds(c Coord) error {
	if !InBounds(c, b.size) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, b.size, b.size)
	}
	return nil
}
