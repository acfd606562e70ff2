package beesweeper

import (
	"fmt"

	"github.com/vancomm/beesweeper-server/internal/field"
)

// GameFieldFactory assembles a playable field from a topology and a bee
// placement strategy. Given a deterministic generator the result is
// reproducible.
type GameFieldFactory struct {
	shapes field.ShapeFactory
	bees   field.CoordinateGenerator
}

func NewGameFieldFactory(
	shapes field.ShapeFactory, bees field.CoordinateGenerator,
) *GameFieldFactory {
	return &GameFieldFactory{shapes: shapes, bees: bees}
}

func (f *GameFieldFactory) Create(numBees, numMarkers int) (*GameField, error) {
	if numBees < 1 {
		return nil, fmt.Errorf(
			"%w: can't generate a field with less than 1 bee", field.ErrInvalidArgument,
		)
	}
	if numMarkers < 0 {
		return nil, fmt.Errorf(
			"%w: negative marker budget %d", field.ErrInvalidArgument, numMarkers,
		)
	}

	shape, err := f.shapes.Create()
	if err != nil {
		return nil, err
	}

	if err := initializeEmptyCells(shape); err != nil {
		return nil, err
	}
	if err := placeBees(shape, numBees, f.bees); err != nil {
		return nil, err
	}
	if err := countSurroundingBees(shape); err != nil {
		return nil, err
	}

	return newGameField(shape, numMarkers), nil
}

func initializeEmptyCells(shape field.Shape) error {
	for _, c := range shape.Coordinates() {
		if err := shape.Replace(c, field.NewCell(false)); err != nil {
			return err
		}
	}
	return nil
}

func placeBees(shape field.Shape, numBees int, gen field.CoordinateGenerator) error {
	if numBees >= shape.Len() {
		return fmt.Errorf(
			"%w: number of bees must be below number of cells (%d bees, %d cells)",
			field.ErrInvalidArgument, numBees, shape.Len(),
		)
	}
	coords, err := gen.Select(numBees, shape)
	if err != nil {
		return err
	}
	if len(coords) != numBees {
		return fmt.Errorf(
			"%w: generator returned %d coordinates, want %d",
			field.ErrInvalidArgument, len(coords), numBees,
		)
	}
	seen := make(map[field.Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if _, dup := seen[c]; dup {
			return fmt.Errorf(
				"%w: generator returned %s twice", field.ErrInvalidArgument, c,
			)
		}
		seen[c] = struct{}{}
		if err := shape.Replace(c, field.NewCell(true)); err != nil {
			return err
		}
	}
	return nil
}

func countSurroundingBees(shape field.Shape) error {
	for _, c := range shape.Coordinates() {
		cell, err := shape.Get(c)
		if err != nil {
			return err
		}
		if cell.IsBee() {
			continue
		}
		n := 0
		for _, nb := range c.Neighbors() {
			if !shape.Contains(nb) {
				continue
			}
			other, err := shape.Get(nb)
			if err != nil {
				return err
			}
			if other.IsBee() {
				n++
			}
		}
		if err := cell.SetSurroundingBees(n); err != nil {
			return err
		}
	}
	return nil
}
