package beesweeper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/beesweeper-server/internal/field"
)

// CellView is what a player may know about a cell. Bee and SurroundingBees
// stay nil while the cell is covered and the game is in progress.
type CellView struct {
	field.Coordinate
	Revealed        bool  `json:"revealed"`
	Marked          bool  `json:"marked"`
	Bee             *bool `json:"bee,omitempty"`
	SurroundingBees *int  `json:"surrounding_bees,omitempty"`
}

func (g *Game) Bounds() (columns, rows int) {
	return g.field.Bounds()
}

func (g *Game) Coordinates() []field.Coordinate {
	return g.field.Coordinates()
}

func (g *Game) MarkersAvailable() int {
	return g.field.MarkersAvailable()
}

func (g *Game) Cell(c field.Coordinate) (CellView, bool) {
	if !g.field.Contains(c) {
		return CellView{}, false
	}
	cell := g.field.cell(c)
	v := CellView{
		Coordinate: c,
		Revealed:   cell.IsRevealed(),
		Marked:     cell.IsMarked(),
	}
	if cell.IsRevealed() || g.status.Terminal() {
		bee := cell.IsBee()
		v.Bee = &bee
		if !bee {
			n := cell.SurroundingBees()
			v.SurroundingBees = &n
		}
	}
	return v, true
}

// Cells returns the view of every cell in the field's coordinate order.
func (g *Game) Cells() []CellView {
	coords := g.field.Coordinates()
	out := make([]CellView, 0, len(coords))
	for _, c := range coords {
		v, _ := g.Cell(c)
		out = append(out, v)
	}
	return out
}

// Symbol renders a cell view as one character:
//
//	.  covered
//	*  marked
//	0-8 revealed safe cell
//	B  bee
func (v CellView) Symbol() string {
	switch {
	case v.Marked:
		return "*"
	case v.Bee != nil && *v.Bee:
		return "B"
	case v.SurroundingBees != nil:
		return strconv.Itoa(*v.SurroundingBees)
	default:
		return "."
	}
}

// Dump renders the board row by row. Bees are only shown for revealed cells
// or once the game is over.
func (g *Game) Dump() string {
	columns, rows := g.Bounds()
	var b strings.Builder
	for r := range rows {
		for c := range columns {
			if c > 0 {
				b.WriteByte(' ')
			}
			v, ok := g.Cell(field.Of(r, c))
			if !ok {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(v.Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Game) String() string {
	columns, rows := g.Bounds()
	return fmt.Sprintf("Game{%dx%d, %s, markers=%d}",
		columns, rows, g.status, g.MarkersAvailable())
}
