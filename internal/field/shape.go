package field

import "fmt"

// Shape is a fixed set of valid coordinates together with the cell stored at
// each of them. The coordinate set never changes after construction.
type Shape interface {
	Contains(c Coordinate) bool
	// Get returns a handle to the cell at c. Mutations through the handle are
	// visible to every later Get.
	Get(c Coordinate) (*Cell, error)
	Replace(c Coordinate, cell Cell) error
	// Coordinates lists every valid coordinate exactly once. Callers must not
	// modify the returned slice.
	Coordinates() []Coordinate
	Len() int
	// Bounds is the size of the smallest grid enclosing the shape.
	Bounds() (columns, rows int)
}

// RectangularShape stores its cells in an arena indexed by row*columns+column.
type RectangularShape struct {
	columns, rows int
	cells         []Cell
	coords        []Coordinate
}

func newRectangularShape(columns, rows int) *RectangularShape {
	s := &RectangularShape{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
		coords:  make([]Coordinate, 0, columns*rows),
	}
	for r := range rows {
		for c := range columns {
			s.coords = append(s.coords, Coordinate{r, c})
		}
	}
	return s
}

func (s *RectangularShape) index(c Coordinate) (int, bool) {
	if c.Row < 0 || c.Row >= s.rows || c.Column < 0 || c.Column >= s.columns {
		return 0, false
	}
	return c.Row*s.columns + c.Column, true
}

func (s *RectangularShape) Contains(c Coordinate) bool {
	_, ok := s.index(c)
	return ok
}

func (s *RectangularShape) Get(c Coordinate) (*Cell, error) {
	i, ok := s.index(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return &s.cells[i], nil
}

func (s *RectangularShape) Replace(c Coordinate, cell Cell) error {
	i, ok := s.index(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	s.cells[i] = cell
	return nil
}

func (s *RectangularShape) Coordinates() []Coordinate { return s.coords }
func (s *RectangularShape) Len() int                  { return len(s.cells) }
func (s *RectangularShape) Bounds() (int, int)        { return s.columns, s.rows }
