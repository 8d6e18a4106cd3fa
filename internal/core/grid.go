package core

import (
	"errors"
	"slices"
)

// ErrNoLogic is returned by Step when no Logic is attached to the grid.
var ErrNoLogic = errors.New("core: no logic attached")

// Grid is the capability shared by the 2D and 3D grid variants.
//
// Add, Remove and Has never validate coordinates against the current bounds.
// Out-of-range cells are pruned by the next SetRows/SetCols and skipped by
// the step rules. Grids are not safe for concurrent use.
type Grid interface {
	Add(c Cell)
	Remove(c Cell) bool
	Has(c Cell) bool
	Clear()
	Step() error

	Rows() uint32
	Cols() uint32
	SetRows(n uint32)
	SetCols(n uint32)

	// DrawableCells returns a fresh snapshot of the occupancy in Compare order.
	DrawableCells() []Cell
	Len() int
	Dims() int
}

// Logic advances a grid of type G by one step. Implementations mutate the
// grid only through its Add, Remove and Move methods.
type Logic[G Grid] interface {
	Step(grid G)
	Clear()
}

// cellSet is the occupancy set backing both grid variants.
type cellSet map[Cell]struct{}

func (s cellSet) sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, Compare)
	return out
}

// plane holds the row/col bounds and occupancy common to both variants.
type plane struct {
	rows, cols uint32
	cells      cellSet
}

func newPlane(rows, cols uint32) plane {
	return plane{rows: rows, cols: cols, cells: cellSet{}}
}

// Rows returns the row bound.
func (p *plane) Rows() uint32 { return p.rows }

// Cols returns the column bound.
func (p *plane) Cols() uint32 { return p.cols }

// SetRows updates the row bound and prunes cells that no longer fit.
func (p *plane) SetRows(n uint32) {
	p.rows = n
	p.prune()
}

// SetCols updates the column bound and prunes cells that no longer fit.
func (p *plane) SetCols(n uint32) {
	p.cols = n
	p.prune()
}

// Len returns the number of occupied cells.
func (p *plane) Len() int { return len(p.cells) }

// DrawableCells returns the occupied cells in Compare order.
func (p *plane) DrawableCells() []Cell { return p.cells.sorted() }

func (p *plane) prune() {
	for c := range p.cells {
		if !c.InBounds(p.rows, p.cols) {
			delete(p.cells, c)
		}
	}
}

func (p *plane) move(from, to Cell) {
	delete(p.cells, from)
	p.cells[to] = struct{}{}
}
