package minesweeper

import (
	"math/rand"
	"testing"
)

func TestPlaceMinesIdentityShuffle(t *testing.T) {
	cells := make([]cell, 9)
	placeMines(cells, 4, &scriptedSource{})

	for i, c := range cells {
		if c.mine != (i < 4) {
			t.Errorf("slot %d: mine = %v, expected %v", i, c.mine, i < 4)
		}
	}
}

func TestPlaceMinesScriptedPosition(t *testing.T) {
	// The first draw swaps slot 0 (the only mine) with slot 12.
	cells := make([]cell, 25)
	placeMines(cells, 1, &scriptedSource{values: []int{12}})

	for i, c := range cells {
		if c.mine != (i == 12) {
			t.Errorf("slot %d: mine = %v, expected %v", i, c.mine, i == 12)
		}
	}
}

// rangeRecorder checks the bound of every draw.
type rangeRecorder struct {
	bounds []int
}

func (r *rangeRecorder) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	return n - 1
}

func TestPlaceMinesDrawRanges(t *testing.T) {
	rec := &rangeRecorder{}
	cells := make([]cell, 16)
	placeMines(cells, 5, rec)

	if len(rec.bounds) != 16 {
		t.Fatalf("expected 16 draws, got %d", len(rec.bounds))
	}
	for i, n := range rec.bounds {
		if n != 16-i {
			t.Errorf("draw %d: bound = %d, expected %d", i, n, 16-i)
		}
	}

	mines := 0
	for _, c := range cells {
		if c.mine {
			mines++
		}
	}
	if mines != 5 {
		t.Errorf("expected 5 mines after shuffle, got %d", mines)
	}
}

func TestPlaceMinesResetsState(t *testing.T) {
	cells := []cell{
		{mine: true, exposed: true, flagged: true, adjacent: 3},
		{exposed: true, adjacent: 1},
	}
	placeMines(cells, 0, &scriptedSource{})

	for i, c := range cells {
		if c != (cell{}) {
			t.Errorf("slot %d not reset: %+v", i, c)
		}
	}
}

func TestPlaceMinesSpreadsPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hits := make([]int, 4)

	for trial := 0; trial < 4000; trial++ {
		cells := make([]cell, 4)
		placeMines(cells, 1, rng)
		for i, c := range cells {
			if c.mine {
				hits[i]++
			}
		}
	}

	for i, h := range hits {
		if h < 800 || h > 1200 {
			t.Errorf("slot %d hit %d times out of 4000, expected about 1000", i, h)
		}
	}
}

func TestCountNeighbors(t *testing.T) {
	// * * -
	// - - -
	// - - -
	cells := make([]cell, 9)
	cells[0].mine = true
	cells[1].mine = true
	countNeighbors(cells, 3)

	expected := []uint8{
		1, 1, 1,
		2, 2, 1,
		0, 0, 0,
	}
	for i, c := range cells {
		if c.adjacent != expected[i] {
			t.Errorf("slot %d: adjacent = %d, expected %d", i, c.adjacent, expected[i])
		}
	}
}
