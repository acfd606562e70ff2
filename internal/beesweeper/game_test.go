package beesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/beesweeper-server/internal/field"
)

func TestTwoCellGame(t *testing.T) {
	t.Run("reveal the safe cell", func(t *testing.T) {
		g := fixtureGame(t, 2, 1, field.Of(0, 0))
		assert.Equal(t, Success, g.Reveal(field.Of(0, 1)))
		assert.Equal(t, Won, g.Status())
	})
	t.Run("reveal the bee", func(t *testing.T) {
		g := fixtureGame(t, 2, 1, field.Of(0, 0))
		assert.Equal(t, Success, g.Reveal(field.Of(0, 0)))
		assert.Equal(t, Lost, g.Status())
	})
}

func TestWinByRevealingAllSafeCells(t *testing.T) {
	bees := []field.Coordinate{field.Of(0, 0), field.Of(2, 3)}
	g := fixtureGame(t, 4, 3, bees...)

	safe := 0
	for _, c := range g.Coordinates() {
		if c == bees[0] || c == bees[1] {
			continue
		}
		assert.Equal(t, InProgress, g.Status(), "before revealing %s", c)
		require.Equal(t, Success, g.Reveal(c))
		safe++
	}
	assert.Equal(t, 10, safe)
	assert.Equal(t, Won, g.Status())
}

func TestWinByMarkingAllBees(t *testing.T) {
	bees := []field.Coordinate{field.Of(0, 2), field.Of(2, 0)}
	g := fixtureGame(t, 3, 3, bees...)

	assert.Equal(t, Success, g.Mark(bees[0]))
	assert.Equal(t, InProgress, g.Status())
	assert.Equal(t, Success, g.Mark(bees[1]))
	assert.Equal(t, Won, g.Status())
	assert.Equal(t, 0, g.MarkersAvailable())
}

func TestMarkingSafeCellsDoesNotWin(t *testing.T) {
	g := fixtureGame(t, 3, 3, field.Of(1, 1))

	assert.Equal(t, Success, g.Mark(field.Of(0, 0)))
	assert.Equal(t, InProgress, g.Status())
	// budget of one marker is spent, the bee cannot be marked
	assert.Equal(t, Success, g.Mark(field.Of(1, 1)))
	assert.Equal(t, InProgress, g.Status())

	assert.Equal(t, Success, g.Unmark(field.Of(0, 0)))
	assert.Equal(t, Success, g.Mark(field.Of(1, 1)))
	assert.Equal(t, Won, g.Status())
}

func TestLossIsIrreversible(t *testing.T) {
	bee := field.Of(1, 1)
	g := fixtureGame(t, 3, 3, bee)

	require.Equal(t, Success, g.Reveal(bee))
	require.Equal(t, Lost, g.Status())

	for _, c := range g.Coordinates() {
		g.Reveal(c)
	}
	assert.Equal(t, Lost, g.Status())
	assert.Equal(t, Fail, g.Mark(bee))
	assert.Equal(t, Lost, g.Status())
}

func TestWinIsIrreversible(t *testing.T) {
	g := fixtureGame(t, 2, 1, field.Of(0, 0))
	require.Equal(t, Success, g.Reveal(field.Of(0, 1)))
	require.Equal(t, Won, g.Status())

	assert.Equal(t, Success, g.Reveal(field.Of(0, 0)))
	assert.Equal(t, Won, g.Status())
	assert.Equal(t, Fail, g.Forfeit())
}

func TestRedundantOperationsFail(t *testing.T) {
	g := fixtureGame(t, 3, 3, field.Of(2, 2))

	require.Equal(t, Success, g.Reveal(field.Of(0, 0)))
	before := snap(g)
	assert.Equal(t, Fail, g.Reveal(field.Of(0, 0)))
	assert.Equal(t, Fail, g.Mark(field.Of(0, 0)))
	assert.Equal(t, Fail, g.Unmark(field.Of(0, 1)))
	assert.Equal(t, before, snap(g))

	require.Equal(t, Success, g.Mark(field.Of(0, 1)))
	before = snap(g)
	assert.Equal(t, Fail, g.Mark(field.Of(0, 1)))
	assert.Equal(t, before, snap(g))
}

func TestOutOfBoundsLeavesStateUnchanged(t *testing.T) {
	g := fixtureGame(t, 3, 2, field.Of(0, 1))
	require.Equal(t, Success, g.Mark(field.Of(0, 1)))
	require.Equal(t, Success, g.Reveal(field.Of(1, 2)))

	before := snap(g)
	for _, c := range []field.Coordinate{
		field.Of(-1, 0), field.Of(0, -1), field.Of(2, 0), field.Of(0, 3), field.Of(99, 99),
	} {
		assert.Equal(t, IndexOOB, g.Reveal(c), c)
		assert.Equal(t, IndexOOB, g.Mark(c), c)
		assert.Equal(t, IndexOOB, g.Unmark(c), c)
		_, ok := g.Cell(c)
		assert.False(t, ok)
	}
	assert.Equal(t, before, snap(g))
}

func TestMarkUnmarkRoundTrip(t *testing.T) {
	g, err := NewRectangularGame(5, 5, 4, WithSeed(3))
	require.NoError(t, err)

	for _, c := range g.Coordinates() {
		markers := g.MarkersAvailable()
		require.Equal(t, Success, g.Mark(c))
		require.Equal(t, Success, g.Unmark(c))
		assert.Equal(t, markers, g.MarkersAvailable())
		v, _ := g.Cell(c)
		assert.False(t, v.Marked)
	}
}

func TestForfeit(t *testing.T) {
	g := fixtureGame(t, 3, 3, field.Of(1, 1))
	assert.Equal(t, Success, g.Forfeit())
	assert.Equal(t, Lost, g.Status())
	assert.Equal(t, Fail, g.Forfeit())
}

func TestRandomPlaythrough(t *testing.T) {
	t.Parallel()

	for seed := range uint64(50) {
		g, err := NewRectangularGame(6, 5, 5, WithSeed(seed))
		require.NoError(t, err)

		for _, c := range g.Coordinates() {
			if g.Status().Terminal() {
				break
			}
			bee := g.field.cell(c).IsBee()
			require.Equal(t, Success, g.Reveal(c))
			if bee {
				assert.Equal(t, Lost, g.Status())
			} else {
				assert.NotEqual(t, Lost, g.Status())
			}
		}
		assert.True(t, g.Status().Terminal())
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "SUCCESS", Success.String())
	assert.Equal(t, "INDEX_OOB", IndexOOB.String())
	assert.Equal(t, "FAIL", Fail.String())
	assert.Equal(t, "IN_PROGRESS", InProgress.String())
	assert.Equal(t, "WON", Won.String())
	assert.Equal(t, "LOST", Lost.String())
	assert.False(t, InProgress.Terminal())
}
