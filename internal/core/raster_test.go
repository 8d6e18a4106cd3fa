package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterize2D(t *testing.T) {
	g := NewGrid2D(2, 3)
	g.Add(At(0, 2))
	g.Add(At(1, 0))
	g.Add(At(4, 4))

	buf := NewByteGrid(0, 0)
	Rasterize(g, buf)

	assert.Equal(t, 3, buf.W)
	assert.Equal(t, 2, buf.H)
	assert.Equal(t, []uint8{0, 0, 1, 1, 0, 0}, buf.Cells())
	assert.Equal(t, uint8(1), buf.At(2, 0))
	assert.Equal(t, uint8(0), buf.At(9, 9))
}

func TestRasterize3DCountsLevels(t *testing.T) {
	g := NewGrid3D(1, 2, 3)
	g.Add(At3(0, 1, 0))
	g.Add(At3(0, 1, 1))
	g.Add(At3(0, 1, -4))

	buf := NewByteGrid(2, 1)
	buf.Cells()[0] = 9
	Rasterize(g, buf)

	assert.Equal(t, []uint8{0, 3}, buf.Cells())
}
