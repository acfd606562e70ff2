package field

import "fmt"

// ShapeFactory builds the empty shape of one topology.
type ShapeFactory interface {
	Create() (Shape, error)
}

// MaxCells bounds the size of a single field.
const MaxCells = 1 << 24

type RectangularFactory struct {
	columns, rows int
}

func NewRectangularFactory(columns, rows int) (*RectangularFactory, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: invalid rectangle dimensions %dx%d",
			ErrInvalidArgument, columns, rows)
	}
	if columns > MaxCells/rows {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells",
			ErrInvalidArgument, columns, rows, MaxCells)
	}
	return &RectangularFactory{columns: columns, rows: rows}, nil
}

// Create returns a fresh columns x rows shape with every cell empty.
func (f RectangularFactory) Create() (Shape, error) {
	return newRectangularShape(f.columns, f.rows), nil
}

// CombFactory is the hook for a honeycomb topology. It is not implemented.
type CombFactory struct {
	Rows int
}

func (f CombFactory) Create() (Shape, error) {
	return nil, fmt.Errorf("%w: comb with %d rows", ErrUnsupportedTopology, f.Rows)
}
