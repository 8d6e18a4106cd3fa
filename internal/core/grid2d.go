package core

// Grid2D is a rows × cols grid. Cell levels are dropped on the way in.
type Grid2D struct {
	plane
	logic Logic[*Grid2D]
}

// NewGrid2D allocates an empty 2D grid.
func NewGrid2D(rows, cols uint32) *Grid2D {
	return &Grid2D{plane: newPlane(rows, cols)}
}

// SetLogic attaches l, replacing any previous logic. Pass an untyped nil to
// detach; a typed nil pointer stays attached and Step calls it.
func (g *Grid2D) SetLogic(l Logic[*Grid2D]) { g.logic = l }

// Dims reports 2.
func (g *Grid2D) Dims() int { return 2 }

// Add marks c occupied.
func (g *Grid2D) Add(c Cell) { g.cells[c.Flat()] = struct{}{} }

// Remove clears c and reports whether it was occupied.
func (g *Grid2D) Remove(c Cell) bool {
	c = c.Flat()
	if _, ok := g.cells[c]; !ok {
		return false
	}
	delete(g.cells, c)
	return true
}

// Has reports whether c is occupied.
func (g *Grid2D) Has(c Cell) bool {
	_, ok := g.cells[c.Flat()]
	return ok
}

// Move relocates from to to in one operation.
func (g *Grid2D) Move(from, to Cell) { g.move(from.Flat(), to.Flat()) }

// Clear empties the grid and lets the logic drop per-session state.
func (g *Grid2D) Clear() {
	clear(g.cells)
	if g.logic != nil {
		g.logic.Clear()
	}
}

// Step runs the attached logic once.
func (g *Grid2D) Step() error {
	if g.logic == nil {
		return ErrNoLogic
	}
	g.logic.Step(g)
	return nil
}
