package beesweeper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vancomm/beesweeper-server/internal/field"
)

// beesAt places bees at fixed coordinates.
type beesAt []field.Coordinate

func (b beesAt) Select(n int, shape field.Shape) ([]field.Coordinate, error) {
	if n != len(b) {
		return nil, fmt.Errorf("%w: fixture holds %d bees, asked for %d",
			field.ErrInvalidArgument, len(b), n)
	}
	return b, nil
}

func fixtureGame(t *testing.T, columns, rows int, bees ...field.Coordinate) *Game {
	t.Helper()
	g, err := NewRectangularGame(columns, rows, len(bees), WithGenerator(beesAt(bees)))
	require.NoError(t, err)
	return g
}

// snapshot captures everything an operation could mutate.
type snapshot struct {
	status  GameStatus
	markers int
	cells   []CellView
	dump    string
}

func snap(g *Game) snapshot {
	return snapshot{g.Status(), g.MarkersAvailable(), g.Cells(), g.Dump()}
}
