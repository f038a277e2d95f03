package minesweeper

import "testing"

// scriptedSource returns its values in order, then 0 forever.
// A draw of 0 keeps the Fisher-Yates slot in place.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	defer func() { s.calls++ }()
	if s.calls < len(s.values) {
		v := s.values[s.calls]
		if v < 0 || v >= n {
			panic("scriptedSource: value out of range")
		}
		return v
	}
	return 0
}

// newTestBoard builds an initialized board with mines at the given positions.
func newTestBoard(t *testing.T, size int, mines ...Coord) *Board {
	t.Helper()

	b, err := NewBoard(size, len(mines), &scriptedSource{})
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	for i := range b.cells {
		b.cells[i] = cell{}
	}
	for _, m := range mines {
		b.cells[b.index(m)].mine = true
	}
	countNeighbors(b.cells, size)
	b.state = StillInProgress
	b.initialized = true
	return b
}

// mustPlay calls Play and fails the test on error.
func mustPlay(t *testing.T, b *Board, row, col int, flag bool) PlayResult {
	t.Helper()

	result, err := b.Play(row, col, flag)
	if err != nil {
		t.Fatalf("Play(%d, %d, %v) failed: %v", row, col, flag, err)
	}
	return result
}

// countExposed counts exposed cells by scanning the grid.
func countExposed(b *Board) int {
	n := 0
	for i := range b.cells {
		if b.cells[i].exposed {
			n++
		}
	}
	return n
}
