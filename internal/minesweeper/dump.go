package minesweeper

import (
	"strconv"
	"strings"
)

// String returns the true board as text, independent of exposure:
// '-' for blank, the digit for numbered and '*' for mines. Cells in a row
// are concatenated and every row after the first is preceded by "| ".
// An uninitialized board renders as blanks.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size*b.size + 2*b.size)

	for row := 0; row < b.size; row++ {
		if row != 0 {
			sb.WriteString("| ")
		}
		for col := 0; col < b.size; col++ {
			c := &b.cells[row*b.size+col]
			switch c.kind() {
			case KindBlank:
				sb.WriteByte('-')
			case KindNumbered:
				sb.WriteString(strconv.Itoa(int(c.adjacent)))
			case KindMine:
				sb.WriteByte('*')
			}
		}
	}
	return sb.String()
}
