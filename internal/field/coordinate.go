package field

import "fmt"

// Coordinate is an immutable (row, column) pair. It is comparable and can be
// used as a map key.
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"col"`
}

func Of(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// Compare orders coordinates row-major: lower row first, then lower column.
func Compare(a, b Coordinate) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	}
	return 0
}

func (c Coordinate) Less(o Coordinate) bool {
	return Compare(c, o) < 0
}

// Neighbors returns the eight surrounding coordinates in row-major order.
// The result is not filtered by any field bounds.
func (c Coordinate) Neighbors() [8]Coordinate {
	var out [8]Coordinate
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Coordinate{c.Row + dr, c.Column + dc}
			i++
		}
	}
	return out
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}
