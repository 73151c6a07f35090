package game

import "fmt"

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBoard checks if the cell is within the board bounds.
func (c Cell) InBoard() bool {
	return 0 <= c.Row && c.Row < Size && 0 <= c.Col && c.Col < Size
}

// Distance returns the Chebyshev distance between two cells, the board's
// adjacency metric.
func Distance(a, b Cell) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

// Adjacent checks if two distinct cells touch, diagonals included.
func Adjacent(a, b Cell) bool {
	return Distance(a, b) == 1
}

// Neighbors returns the in-board cells adjacent to c in row-major order.
func Neighbors(c Cell) []Cell {
	cells := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if n.InBoard() {
				cells = append(cells, n)
			}
		}
	}
	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
