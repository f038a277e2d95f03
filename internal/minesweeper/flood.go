package minesweeper

// flood exposes the connected region of blank cells around start plus the
// ring of numbered cells that borders it. start must already be exposed.
// Exposed cells are appended to affected, which is returned.
//
// A blank cell has no mine neighbors, so the frontier never reaches a mine.
// A cell is enqueued only on the transition to exposed, so each cell is
// visited at most once.
func (b *Board) flood(start Coord, affected []CellView) []CellView {
	queue := []Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range Neighbors(current, b.size) {
			c := &b.cells[b.index(n)]
			wasFlagged := c.flagged
			if !c.expose() {
				continue
			}
			if wasFlagged {
				b.flags--
			}
			b.exposed++
			affected = append(affected, c.view(n))

			if c.kind() == KindBlank {
				queue = append(queue, n)
			}
		}
	}

	return affected
}
