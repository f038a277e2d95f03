package minesweeper

import "testing"

func TestFloodStopsAtNumberedColumn(t *testing.T) {
	// - 2 * 2 -
	// - 3 * 3 -
	// ...
	// - 2 * 2 -
	b := newTestBoard(t, 5, At(0, 2), At(1, 2), At(2, 2), At(3, 2), At(4, 2))

	result := mustPlay(t, b, 0, 0, false)

	if len(result.Affected) != 10 {
		t.Errorf("Affected has %d cells, expected 10", len(result.Affected))
	}
	if result.State != StillInProgress {
		t.Errorf("State = %v, expected StillInProgress", result.State)
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			v, err := b.Cell(row, col)
			if err != nil {
				t.Fatalf("Cell(%d, %d) failed: %v", row, col, err)
			}
			shouldExpose := col <= 1
			if v.Exposed != shouldExpose {
				t.Errorf("cell %v: Exposed = %v, expected %v", v.Coord, v.Exposed, shouldExpose)
			}
			if col == 1 && v.Kind != KindNumbered {
				t.Errorf("cell %v: kind = %v, expected Numbered border", v.Coord, v.Kind)
			}
		}
	}
}

func TestFloodVisitsEachCellOnce(t *testing.T) {
	b := newTestBoard(t, 10)

	result := mustPlay(t, b, 4, 7, false)

	if len(result.Affected) != 100 {
		t.Errorf("Affected has %d cells, expected 100", len(result.Affected))
	}
	seen := make(map[Coord]bool)
	for _, v := range result.Affected {
		if seen[v.Coord] {
			t.Errorf("cell %v reported twice", v.Coord)
		}
		seen[v.Coord] = true
	}
	if b.ExposedCount() != 100 {
		t.Errorf("ExposedCount() = %d, expected 100", b.ExposedCount())
	}
	if result.State != Won {
		t.Errorf("State = %v, expected Won", result.State)
	}
}

func TestFloodSkipsExposedCells(t *testing.T) {
	// A mine in the corner leaves a single blank region.
	b := newTestBoard(t, 4, At(3, 3))
	mustPlay(t, b, 2, 2, false) // Numbered, exposed alone

	result := mustPlay(t, b, 0, 0, false)

	for _, v := range result.Affected {
		if v.Coord == At(2, 2) {
			t.Error("flood reported an already exposed cell")
		}
	}
	if b.ExposedCount() != 15 {
		t.Errorf("ExposedCount() = %d, expected 15", b.ExposedCount())
	}
	if result.State != Won {
		t.Errorf("State = %v, expected Won", result.State)
	}
}

func TestFloodClearsFlags(t *testing.T) {
	b := newTestBoard(t, 4)
	mustPlay(t, b, 3, 3, true)

	mustPlay(t, b, 0, 0, false)

	v, _ := b.Cell(3, 3)
	if !v.Exposed || v.Flagged {
		t.Errorf("cell (3,3) = %+v, expected exposed and unflagged", v)
	}
	if b.Flags() != 0 {
		t.Errorf("Flags() = %d, expected 0", b.Flags())
	}
}

func TestFloodOrderIsBreadthFirst(t *testing.T) {
	b := newTestBoard(t, 5)

	result := mustPlay(t, b, 0, 0, false)

	// Chebyshev distance from the start never decreases along the output.
	last := 0
	for _, v := range result.Affected {
		d := max(v.Row, v.Col)
		if d < last {
			t.Fatalf("cell %v at distance %d reported after distance %d", v.Coord, d, last)
		}
		last = d
	}
}
