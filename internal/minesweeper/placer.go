package minesweeper

// RandomSource supplies uniform random integers.
// *math/rand.Rand satisfies it; tests supply scripted sources.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int
}

// placeMines resets every slot, marks the first mineCount slots in
// row-major order as mines and then shuffles all slots in place with
// Fisher-Yates: for each i, j is drawn uniformly from [i, len) and the
// slots are swapped.
func placeMines(cells []cell, mineCount int, rng RandomSource) {
	for i := range cells {
		cells[i] = cell{mine: i < mineCount}
	}

	n := len(cells)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(n-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// countNeighbors increments the adjacent count of every neighbor of every
// mine. Mines adjacent to mines accumulate a count too; it is never shown.
func countNeighbors(cells []cell, size int) {
	for i := range cells {
		if !cells[i].mine {
			continue
		}
		for _, n := range Neighbors(Coord{Row: i / size, Col: i % size}, size) {
			cells[n.Row*size+n.Col].adjacent++
		}
	}
}
