package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Scatter adds each in-bounds position of grid with the given probability.
// 3D grids receive cells on level 0.
func (r *RNG) Scatter(grid Grid, density float64) int {
	if density <= 0 {
		return 0
	}
	added := 0
	for row := uint32(0); row < grid.Rows(); row++ {
		for col := uint32(0); col < grid.Cols(); col++ {
			if r.r.Float64() >= density {
				continue
			}
			c := At(row, col)
			if grid.Has(c) {
				continue
			}
			grid.Add(c)
			added++
		}
	}
	return added
}
