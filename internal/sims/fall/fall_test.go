package fall

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-sand/internal/core"
)

func newGrid(rows, cols uint32, cells ...core.Cell) *core.Grid2D {
	g := core.NewGrid2D(rows, cols)
	g.SetLogic(New())
	for _, c := range cells {
		g.Add(c)
	}
	return g
}

func step(t *testing.T, g core.Grid) {
	t.Helper()
	require.NoError(t, g.Step())
}

func assertCells(t *testing.T, g core.Grid, want ...core.Cell) {
	t.Helper()
	if diff := cmp.Diff(want, g.DrawableCells()); diff != "" {
		t.Fatalf("occupancy mismatch (-want +got):\n%s", diff)
	}
}

func TestStraightFallSettlesOnFloor(t *testing.T) {
	g := newGrid(3, 3, core.At(0, 1))

	step(t, g)
	assertCells(t, g, core.At(1, 1))

	step(t, g)
	assertCells(t, g, core.At(2, 1))

	step(t, g)
	assertCells(t, g, core.At(2, 1))
}

func TestNeighboursFallTogether(t *testing.T) {
	g := newGrid(4, 4, core.At(0, 0), core.At(0, 1))

	step(t, g)
	assertCells(t, g, core.At(1, 0), core.At(1, 1))
}

func TestStackedColumnFallsOneRowPerStep(t *testing.T) {
	g := newGrid(5, 1, core.At(0, 0), core.At(1, 0))

	step(t, g)
	assertCells(t, g, core.At(2, 0), core.At(1, 0))

	step(t, g)
	assertCells(t, g, core.At(3, 0), core.At(2, 0))

	step(t, g)
	assertCells(t, g, core.At(4, 0), core.At(3, 0))

	step(t, g)
	assertCells(t, g, core.At(4, 0), core.At(3, 0))
}

func TestSlidesDownLeftThenDownRight(t *testing.T) {
	g := newGrid(3, 3, core.At(2, 1), core.At(1, 1))
	step(t, g)
	assertCells(t, g, core.At(2, 0), core.At(2, 1))

	g = newGrid(3, 3, core.At(2, 0), core.At(2, 1), core.At(1, 1))
	step(t, g)
	assertCells(t, g, core.At(2, 0), core.At(2, 1), core.At(2, 2))

	g = newGrid(3, 3, core.At(2, 0), core.At(2, 1), core.At(2, 2), core.At(1, 1))
	step(t, g)
	assertCells(t, g, core.At(2, 0), core.At(2, 1), core.At(2, 2), core.At(1, 1))
}

func TestEdgeColumnsDoNotWrap(t *testing.T) {
	g := newGrid(2, 2, core.At(1, 0), core.At(0, 0))
	step(t, g)
	assertCells(t, g, core.At(1, 0), core.At(1, 1))

	g = newGrid(2, 2, core.At(1, 1), core.At(0, 1))
	step(t, g)
	assertCells(t, g, core.At(1, 0), core.At(1, 1))

	g = newGrid(2, 1, core.At(1, 0), core.At(0, 0))
	step(t, g)
	assertCells(t, g, core.At(1, 0), core.At(0, 0))
}

func TestContestedDestinationGoesToFirstVisited(t *testing.T) {
	// Both (1,0) and (1,2) want (2,1) once the column below them is full.
	// (1,0) is visited first and wins; (1,2) stays put.
	g := newGrid(3, 3,
		core.At(2, 0), core.At(2, 2),
		core.At(1, 0), core.At(1, 2),
	)
	step(t, g)
	assertCells(t, g, core.At(2, 0), core.At(2, 1), core.At(2, 2), core.At(1, 2))
}

func TestOutOfRangeCellsAreIgnored(t *testing.T) {
	g := newGrid(3, 3, core.At(0, 7), core.At(9, 1))
	step(t, g)
	assertCells(t, g, core.At(9, 1), core.At(0, 7))
}

func TestEmptyBoundsNoop(t *testing.T) {
	g := newGrid(0, 0, core.At(0, 0))
	step(t, g)
	assertCells(t, g, core.At(0, 0))
}

func TestStepProperties(t *testing.T) {
	rows, cols := uint32(12), uint32(9)
	g := newGrid(rows, cols)
	core.NewRNG(99).Scatter(g, 0.45)

	for i := 0; i < 20; i++ {
		before := g.DrawableCells()
		step(t, g)
		after := g.DrawableCells()

		require.Len(t, after, len(before), "a step never changes the cell count")

		prev := make(map[core.Cell]bool, len(before))
		maxRow := uint32(0)
		for _, c := range before {
			prev[c] = true
			if c.Row > maxRow {
				maxRow = c.Row
			}
		}
		for _, c := range before {
			if c.Row == rows-1 {
				require.Truef(t, g.Has(c), "floor cell %+v moved", c)
			}
		}
		for _, c := range after {
			require.True(t, c.InBounds(rows, cols))
			require.LessOrEqual(t, c.Row, maxRow+1, "no cell falls more than one row")
			if prev[c] {
				continue
			}
			// A new position must be reachable from some old cell one row up.
			ok := false
			for _, dc := range []int{-1, 0, 1} {
				src := core.Cell{Row: c.Row - 1, Col: uint32(int(c.Col) - dc)}
				if c.Row > 0 && prev[src] {
					ok = true
				}
			}
			require.Truef(t, ok, "cell %+v has no source one row above", c)
		}
	}
}

func TestLogicCountsMoves(t *testing.T) {
	l := New()
	g := core.NewGrid2D(3, 3)
	g.SetLogic(l)
	g.Add(core.At(0, 0))
	g.Add(core.At(2, 2))

	step(t, g)
	assert.Equal(t, 1, l.Moved())

	g.Clear()
	assert.Zero(t, l.Moved())
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"fall", "fall3d"} {
		f, ok := core.Kinds()[name]
		require.Truef(t, ok, "%s not registered", name)
		g := f(core.Size{Rows: 3, Cols: 4, Levels: 2})
		assert.Equal(t, uint32(3), g.Rows())
		assert.Equal(t, uint32(4), g.Cols())
		assert.NoError(t, g.Step())
	}
	assert.Equal(t, 2, core.Kinds()["fall"](core.Size{Rows: 1, Cols: 1}).Dims())
	assert.Equal(t, 3, core.Kinds()["fall3d"](core.Size{Rows: 1, Cols: 1}).Dims())
}

func TestTypedNilLogicLeavesGridUntouched(t *testing.T) {
	g2 := core.NewGrid2D(3, 3)
	g2.SetLogic((*Logic)(nil))
	g2.Add(core.At(0, 1))
	assert.NotPanics(t, func() { step(t, g2) })
	assertCells(t, g2, core.At(0, 1))
	assert.NotPanics(t, g2.Clear)
	assert.Zero(t, (*Logic)(nil).Moved())

	g3 := core.NewGrid3D(3, 3, 2)
	g3.SetLogic((*Logic3D)(nil))
	g3.Add(core.At3(0, 1, 1))
	assert.NotPanics(t, func() { step(t, g3) })
	assertCells(t, g3, core.At3(0, 1, 1))
	assert.NotPanics(t, g3.Clear)
	assert.Zero(t, (*Logic3D)(nil).Moved())
}
