package beesweeper

import (
	"fmt"

	"github.com/vancomm/beesweeper-server/internal/field"
)

// Game owns one field and the overall status. Status changes only while the
// game is in progress; Won and Lost are terminal. Game is not safe for
// concurrent use.
type Game struct {
	field  *GameField
	status GameStatus
}

type options struct {
	gen     field.CoordinateGenerator
	markers *int
}

type Option func(*options)

// WithSeed places bees with a deterministic random generator.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.gen = field.NewRandomGenerator(seed) }
}

func WithGenerator(gen field.CoordinateGenerator) Option {
	return func(o *options) { o.gen = gen }
}

// WithMarkers overrides the marker budget, which defaults to the bee count.
func WithMarkers(n int) Option {
	return func(o *options) { o.markers = &n }
}

func NewGame(f *GameField) *Game {
	return &Game{field: f, status: InProgress}
}

func NewRectangularGame(columns, rows, numBees int, opts ...Option) (*Game, error) {
	shapes, err := field.NewRectangularFactory(columns, rows)
	if err != nil {
		return nil, err
	}
	return newGame(shapes, numBees, opts)
}

func NewCombGame(rows, numBees int, opts ...Option) (*Game, error) {
	return newGame(field.CombFactory{Rows: rows}, numBees, opts)
}

func newGame(shapes field.ShapeFactory, numBees int, opts []Option) (*Game, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.gen == nil {
		o.gen = field.NewUnseededRandomGenerator()
	}
	markers := numBees
	if o.markers != nil {
		markers = *o.markers
	}

	f, err := NewGameFieldFactory(shapes, o.gen).Create(numBees, markers)
	if err != nil {
		return nil, fmt.Errorf("unable to create game field: %w", err)
	}
	return NewGame(f), nil
}

func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) finish(s GameStatus) {
	if g.status == InProgress {
		g.status = s
	}
}

func (g *Game) Reveal(c field.Coordinate) OperationStatus {
	if !g.field.Contains(c) {
		return IndexOOB
	}
	cell := g.field.cell(c)
	if cell.IsRevealed() {
		return Fail
	}
	if cell.IsBee() {
		g.field.Reveal(c)
		g.finish(Lost)
		return Success
	}

	cell.Reveal()
	if g.allSafeCellsRevealed() {
		g.finish(Won)
	}
	return Success
}

func (g *Game) Mark(c field.Coordinate) OperationStatus {
	if !g.field.Contains(c) {
		return IndexOOB
	}
	cell := g.field.cell(c)
	if cell.IsRevealed() || cell.IsMarked() {
		return Fail
	}

	if status := g.field.Mark(c); status != Success {
		return status
	}
	if g.allBeesMarked() {
		g.finish(Won)
	}
	return Success
}

func (g *Game) Unmark(c field.Coordinate) OperationStatus {
	if !g.field.Contains(c) {
		return IndexOOB
	}
	if !g.field.cell(c).IsMarked() {
		return Fail
	}
	return g.field.Unmark(c)
}

// Forfeit ends an in-progress game as lost.
func (g *Game) Forfeit() OperationStatus {
	if g.status.Terminal() {
		return Fail
	}
	g.finish(Lost)
	return Success
}

func (g *Game) allSafeCellsRevealed() bool {
	for _, c := range g.field.Coordinates() {
		cell := g.field.cell(c)
		if !cell.IsBee() && !cell.IsRevealed() {
			return false
		}
	}
	return true
}

func (g *Game) allBeesMarked() bool {
	bees := g.field.BeeCoordinates()
	if len(bees) == 0 {
		return false
	}
	for _, c := range bees {
		if !g.field.cell(c).IsMarked() {
			return false
		}
	}
	return true
}
