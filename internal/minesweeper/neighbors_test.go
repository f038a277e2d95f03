package minesweeper

import "testing"

func TestNeighborsCount(t *testing.T) {
	tests := []struct {
		name     string
		pos      Coord
		size     int
		expected int
	}{
		{"top-left corner", At(0, 0), 5, 3},
		{"top-right corner", At(0, 4), 5, 3},
		{"bottom-left corner", At(4, 0), 5, 3},
		{"bottom-right corner", At(4, 4), 5, 3},
		{"top edge", At(0, 2), 5, 5},
		{"left edge", At(2, 0), 5, 5},
		{"interior", At(2, 2), 5, 8},
		{"single cell board", At(0, 0), 1, 0},
		{"two by two", At(1, 1), 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Neighbors(tc.pos, tc.size)
			if len(got) != tc.expected {
				t.Errorf("Neighbors(%v, %d) returned %d positions, expected %d", tc.pos, tc.size, len(got), tc.expected)
			}
		})
	}
}

func TestNeighborsNoWraparound(t *testing.T) {
	for _, n := range Neighbors(At(0, 0), 4) {
		if !InBounds(n, 4) {
			t.Errorf("neighbor %v is out of bounds", n)
		}
		if n.Row > 1 || n.Col > 1 {
			t.Errorf("neighbor %v wrapped around the board", n)
		}
	}
}

func TestNeighborsExcludeSelf(t *testing.T) {
	seen := make(map[Coord]bool)
	for _, n := range Neighbors(At(2, 2), 5) {
		if n == At(2, 2) {
			t.Error("Neighbors() should not include the cell itself")
		}
		if seen[n] {
			t.Errorf("duplicate neighbor %v", n)
		}
		seen[n] = true
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		pos      Coord
		expected bool
	}{
		{At(0, 0), true},
		{At(2, 2), true},
		{At(-1, 0), false},
		{At(0, -1), false},
		{At(3, 0), false},
		{At(0, 3), false},
	}

	for _, tc := range tests {
		if got := InBounds(tc.pos, 3); got != tc.expected {
			t.Errorf("InBounds(%v, 3) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}
