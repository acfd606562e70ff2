package field

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// CoordinateGenerator selects n distinct coordinates of a shape.
type CoordinateGenerator interface {
	Select(n int, shape Shape) ([]Coordinate, error)
}

// RandomGenerator picks every subset of size n with equal probability.
type RandomGenerator struct {
	r *rand.Rand
}

func NewRandomGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{r: rand.New(rand.NewPCG(seed, seed))}
}

func NewUnseededRandomGenerator() *RandomGenerator {
	return &RandomGenerator{r: rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))}
}

func (g *RandomGenerator) Select(n int, shape Shape) ([]Coordinate, error) {
	all := shape.Coordinates()
	if n < 0 || n > len(all) {
		return nil, fmt.Errorf(
			"%w: asked to sample %d coordinates, but shape only has %d",
			ErrInvalidArgument, n, len(all),
		)
	}

	candidates := make([]Coordinate, len(all))
	copy(candidates, all)

	/*
	 * Pick n off the list at random, moving the last candidate into the
	 * slot just taken.
	 */
	picked := make([]Coordinate, 0, n)
	k := len(candidates)
	for range n {
		i := g.r.IntN(k)
		picked = append(picked, candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	return picked, nil
}
