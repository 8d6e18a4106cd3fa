// Package fall implements the falling-sand movement rules for 2D and 3D
// grids.
//
// A step visits every occupied cell once, nearest the floor first, and moves
// it at most one row down. The list of cells to visit is captured when the
// step starts; each destination is tested against the live occupancy, so a
// cell that wins a contested destination blocks the cells visited after it.
package fall

import (
	"time"

	"mad-sand/internal/core"
)

// maxTargets bounds the number of destinations a rule proposes per cell.
const maxTargets = 5

type mover interface {
	core.Grid
	Move(from, to core.Cell)
}

// targetFunc appends the destinations of c, in priority order, to dst.
type targetFunc func(dst []core.Cell, c core.Cell, cols uint32) []core.Cell

// planarTargets proposes down, down-left and down-right on the cell's own
// level.
func planarTargets(dst []core.Cell, c core.Cell, cols uint32) []core.Cell {
	dst = append(dst, c.Below(0, 0))
	if c.Col > 0 {
		dst = append(dst, c.Below(-1, 0))
	}
	if c.Col < cols-1 {
		dst = append(dst, c.Below(1, 0))
	}
	return dst
}

func advance(g mover, targets targetFunc) int {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return 0
	}
	var buf [maxTargets]core.Cell
	moved := 0
	for _, c := range g.DrawableCells() {
		// Floor cells never move; out-of-range cells are left for the next
		// resize to prune.
		if c.Row >= rows-1 || c.Col >= cols {
			continue
		}
		for _, to := range targets(buf[:0], c, cols) {
			if g.Has(to) {
				continue
			}
			g.Move(c, to)
			moved++
			break
		}
	}
	return moved
}

// Logic is the 2D falling rule. Its only state is the move count of the
// last step, reset by Clear. A nil *Logic leaves the grid untouched.
type Logic struct {
	moved int
}

// New returns a 2D falling rule.
func New() *Logic { return &Logic{} }

// Step advances g by one step.
func (l *Logic) Step(g *core.Grid2D) {
	if l == nil {
		return
	}
	l.moved = advance(g, planarTargets)
}

// Moved reports how many cells moved during the last step.
func (l *Logic) Moved() int {
	if l == nil {
		return 0
	}
	return l.moved
}

// Clear resets the move counter.
func (l *Logic) Clear() {
	if l != nil {
		l.moved = 0
	}
}

func init() {
	core.Register("fall", func(size core.Size) core.Grid {
		g := core.NewGrid2D(size.Rows, size.Cols)
		g.SetLogic(New())
		return g
	})
	core.Register("fall3d", func(size core.Size) core.Grid {
		g := core.NewGrid3D(size.Rows, size.Cols, size.Levels)
		g.SetLogic(New3D(time.Now().UnixNano()))
		return g
	})
}
