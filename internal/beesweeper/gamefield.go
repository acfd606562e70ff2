package beesweeper

import (
	"github.com/vancomm/beesweeper-server/internal/field"
)

// GameField is the live board: a shape plus the remaining marker budget.
// markersAvailable plus the number of marked cells stays equal to the
// initial budget.
type GameField struct {
	shape            field.Shape
	markersAvailable int
}

func newGameField(shape field.Shape, numMarkers int) *GameField {
	return &GameField{shape: shape, markersAvailable: numMarkers}
}

func (f *GameField) Contains(c field.Coordinate) bool {
	return f.shape.Contains(c)
}

// Get returns the cell handle at c, or [field.ErrOutOfBounds].
func (f *GameField) Get(c field.Coordinate) (*field.Cell, error) {
	return f.shape.Get(c)
}

// cell must only be called for coordinates the shape contains.
func (f *GameField) cell(c field.Coordinate) *field.Cell {
	cell, err := f.shape.Get(c)
	if err != nil {
		panic(err)
	}
	return cell
}

func (f *GameField) Coordinates() []field.Coordinate {
	return f.shape.Coordinates()
}

func (f *GameField) Bounds() (columns, rows int) {
	return f.shape.Bounds()
}

func (f *GameField) MarkersAvailable() int {
	return f.markersAvailable
}

func (f *GameField) BeeCoordinates() []field.Coordinate {
	return f.collect((*field.Cell).IsBee)
}

func (f *GameField) MarkedCoordinates() []field.Coordinate {
	return f.collect((*field.Cell).IsMarked)
}

func (f *GameField) collect(pred func(*field.Cell) bool) []field.Coordinate {
	var out []field.Coordinate
	for _, c := range f.shape.Coordinates() {
		if pred(f.cell(c)) {
			out = append(out, c)
		}
	}
	return out
}

// Reveal uncovers an unrevealed bee and reports it through beeHit. Anything
// else is a no-op at this level.
func (f *GameField) Reveal(c field.Coordinate) (status OperationStatus, beeHit bool) {
	if !f.shape.Contains(c) {
		return IndexOOB, false
	}
	cell := f.cell(c)
	if cell.IsBee() && !cell.IsRevealed() {
		cell.Reveal()
		return Success, true
	}
	return Success, false
}

// Mark spends one marker on c. With an exhausted budget the call still
// reports Success but leaves the cell unmarked.
func (f *GameField) Mark(c field.Coordinate) OperationStatus {
	if !f.shape.Contains(c) {
		return IndexOOB
	}
	cell := f.cell(c)
	if cell.IsMarked() {
		return Fail
	}
	if f.markersAvailable > 0 {
		f.markersAvailable--
		cell.Mark()
	}
	return Success
}

func (f *GameField) Unmark(c field.Coordinate) OperationStatus {
	if !f.shape.Contains(c) {
		return IndexOOB
	}
	cell := f.cell(c)
	if !cell.IsMarked() {
		return Fail
	}
	f.markersAvailable++
	cell.Unmark()
	return Success
}
