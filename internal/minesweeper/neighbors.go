package minesweeper

// Offsets is the Moore neighborhood: the eight relative positions
// around a cell, row by row.
var Offsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InBounds returns true if the coordinate lies on a size x size board.
func InBounds(c Coord, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Neighbors returns the valid adjacent positions of c on a size x size
// board. Offsets that fall off the board are dropped; there is no wraparound.
func Neighbors(c Coord, size int) []Coord {
	result := make([]Coord, 0, len(Offsets))
	for _, off := range Offsets {
		n := Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if InBounds(n, size) {
			result = append(result, n)
		}
	}
	return result
}
