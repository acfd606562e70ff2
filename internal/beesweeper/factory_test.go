package beesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/beesweeper-server/internal/field"
)

func TestNewRectangularGameCounts(t *testing.T) {
	t.Parallel()

	for columns := 1; columns <= 5; columns++ {
		for rows := 1; rows <= 5; rows++ {
			for bees := 1; bees < columns*rows; bees++ {
				g, err := NewRectangularGame(columns, rows, bees, WithSeed(uint64(bees)))
				require.NoError(t, err, "%dx%d(%d)", columns, rows, bees)

				assert.Len(t, g.field.BeeCoordinates(), bees)
				assert.Equal(t, bees, g.MarkersAvailable())
				assert.Equal(t, InProgress, g.Status())
				assertSurroundingCounts(t, g.field)
			}
		}
	}
}

func assertSurroundingCounts(t *testing.T, f *GameField) {
	t.Helper()
	safe := 0
	for _, c := range f.Coordinates() {
		cell := f.cell(c)
		if cell.IsBee() {
			continue
		}
		safe++
		want := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				nb := field.Of(c.Row+dr, c.Column+dc)
				if nb != c && f.Contains(nb) && f.cell(nb).IsBee() {
					want++
				}
			}
		}
		assert.Equal(t, want, cell.SurroundingBees(), "cell %s", c)
	}
	assert.Equal(t, len(f.Coordinates())-len(f.BeeCoordinates()), safe)
}

func TestNewRectangularGameInvalid(t *testing.T) {
	tests := []struct {
		name                string
		columns, rows, bees int
		opts                []Option
	}{
		{name: "zero columns", columns: 0, rows: 3, bees: 1},
		{name: "negative rows", columns: 3, rows: -1, bees: 1},
		{name: "no bees", columns: 3, rows: 3, bees: 0},
		{name: "negative bees", columns: 3, rows: 3, bees: -2},
		{name: "bees fill the field", columns: 3, rows: 3, bees: 9},
		{name: "more bees than cells", columns: 2, rows: 2, bees: 7},
		{name: "single cell", columns: 1, rows: 1, bees: 1},
		{name: "too many cells", columns: 1 << 30, rows: 1 << 30, bees: 1},
		{name: "negative markers", columns: 3, rows: 3, bees: 1, opts: []Option{WithMarkers(-1)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := NewRectangularGame(test.columns, test.rows, test.bees, test.opts...)
			assert.ErrorIs(t, err, field.ErrInvalidArgument)
			assert.Nil(t, g)
		})
	}
}

func TestNewCombGame(t *testing.T) {
	g, err := NewCombGame(4, 3)
	assert.ErrorIs(t, err, field.ErrUnsupportedTopology)
	assert.Nil(t, g)
}

func TestFactoryDeterministic(t *testing.T) {
	a, err := NewRectangularGame(16, 16, 40, WithSeed(1234))
	require.NoError(t, err)
	b, err := NewRectangularGame(16, 16, 40, WithSeed(1234))
	require.NoError(t, err)
	assert.Equal(t, a.field.BeeCoordinates(), b.field.BeeCoordinates())
}

func TestFactoryCenterBee(t *testing.T) {
	g := fixtureGame(t, 3, 3, field.Of(1, 1))

	// diagonal neighbors count, so the corners see the center bee too
	assert.Equal(t, 1, g.field.cell(field.Of(0, 0)).SurroundingBees())
	assert.Equal(t, 1, g.field.cell(field.Of(0, 1)).SurroundingBees())
	for _, c := range g.Coordinates() {
		if c != field.Of(1, 1) {
			assert.Equal(t, 1, g.field.cell(c).SurroundingBees(), "cell %s", c)
		}
	}
}

func TestFactoryRejectsBadGenerator(t *testing.T) {
	shapes, err := field.NewRectangularFactory(3, 3)
	require.NoError(t, err)

	dup := beesAt{field.Of(0, 0), field.Of(0, 0)}
	_, err = NewGameFieldFactory(shapes, dup).Create(2, 2)
	assert.ErrorIs(t, err, field.ErrInvalidArgument)

	outside := beesAt{field.Of(5, 5)}
	_, err = NewGameFieldFactory(shapes, outside).Create(1, 1)
	assert.ErrorIs(t, err, field.ErrOutOfBounds)
}
