package fall

import "mad-sand/internal/core"

// spatialTargets extends the planar destinations with straight-down moves
// one level below, then one level above. Levels are unbounded.
func spatialTargets(dst []core.Cell, c core.Cell, cols uint32) []core.Cell {
	dst = planarTargets(dst, c, cols)
	return append(dst, c.Below(0, -1), c.Below(0, 1))
}

// Logic3D is the 3D falling rule. A nil *Logic3D leaves the grid untouched.
type Logic3D struct {
	seed  int64
	rng   *core.RNG
	moved int
}

// New3D returns a 3D falling rule. The seed feeds a random source kept for
// randomized level choice; the current rule is deterministic.
func New3D(seed int64) *Logic3D {
	return &Logic3D{seed: seed, rng: core.NewRNG(seed)}
}

// Step advances g by one step.
func (l *Logic3D) Step(g *core.Grid3D) {
	if l == nil {
		return
	}
	l.moved = advance(g, spatialTargets)
}

// Moved reports how many cells moved during the last step.
func (l *Logic3D) Moved() int {
	if l == nil {
		return 0
	}
	return l.moved
}

// Clear reseeds the random source and resets the move counter.
func (l *Logic3D) Clear() {
	if l == nil {
		return
	}
	l.rng = core.NewRNG(l.seed)
	l.moved = 0
}
