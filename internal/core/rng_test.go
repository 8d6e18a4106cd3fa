package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScatterDeterministic(t *testing.T) {
	a := NewGrid2D(16, 16)
	b := NewGrid2D(16, 16)

	na := NewRNG(7).Scatter(a, 0.3)
	nb := NewRNG(7).Scatter(b, 0.3)

	assert.Equal(t, na, nb)
	assert.Equal(t, a.DrawableCells(), b.DrawableCells())
	assert.Equal(t, na, a.Len())
	assert.Positive(t, na)
}

func TestScatterBounds(t *testing.T) {
	g := NewGrid3D(4, 5, 2)
	n := NewRNG(1).Scatter(g, 1)
	assert.Equal(t, 20, n)
	for _, c := range g.DrawableCells() {
		assert.True(t, c.InBounds(4, 5))
		assert.Equal(t, int32(0), c.Level)
	}
	assert.Zero(t, NewRNG(1).Scatter(g, 0))
}
