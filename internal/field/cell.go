package field

import "fmt"

const maxSurroundingBees = 8

// Cell is the mutable state of a single location. The bee flag is fixed when
// the cell is created.
type Cell struct {
	bee             bool
	surroundingBees int
	revealed        bool
	marked          bool
}

func NewCell(bee bool) Cell {
	return Cell{bee: bee}
}

func (c *Cell) IsBee() bool          { return c.bee }
func (c *Cell) IsRevealed() bool     { return c.revealed }
func (c *Cell) IsMarked() bool       { return c.marked }
func (c *Cell) SurroundingBees() int { return c.surroundingBees }

// SetSurroundingBees stores the neighbour bee count. It is only meaningful for
// non-bee cells.
func (c *Cell) SetSurroundingBees(n int) error {
	if c.bee {
		return fmt.Errorf("%w: bee cells carry no surrounding count", ErrInvalidArgument)
	}
	if n < 0 || n > maxSurroundingBees {
		return fmt.Errorf("%w: surrounding count %d not in 0..%d",
			ErrInvalidArgument, n, maxSurroundingBees)
	}
	c.surroundingBees = n
	return nil
}

func (c *Cell) Reveal() { c.revealed = true }
func (c *Cell) Mark()   { c.marked = true }
func (c *Cell) Unmark() { c.marked = false }
