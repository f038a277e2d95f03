package minesweeper

// cell holds the state of one grid slot. Its position is the slot index,
// so shuffling slots never leaves a stale row/column behind.
type cell struct {
	mine     bool  // Set during placement, never cleared
	exposed  bool  // Monotonic: false -> true
	flagged  bool  // Toggled freely while unexposed
	adjacent uint8 // Computed once during initialization
}

// kind derives the classification from the immutable fields.
func (c *cell) kind() Kind {
	switch {
	case c.mine:
		return KindMine
	case c.adjacent > 0:
		return KindNumbered
	default:
		return KindBlank
	}
}

// expose marks the cell exposed and reports whether it changed.
// An exposed cell's flag is irrelevant, so it is cleared.
func (c *cell) expose() bool {
	if c.exposed {
		return false
	}
	c.exposed = true
	c.flagged = false
	return true
}

// toggleFlag flips the flag on an unexposed cell and reports whether it changed.
func (c *cell) toggleFlag() bool {
	if c.exposed {
		return false
	}
	c.flagged = !c.flagged
	return true
}

// view returns a read-only copy of the cell at position pos.
func (c *cell) view(pos Coord) CellView {
	return CellView{
		Coord:    pos,
		Kind:     c.kind(),
		Adjacent: int(c.adjacent),
		Exposed:  c.exposed,
		Flagged:  c.flagged,
	}
}
