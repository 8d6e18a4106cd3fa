package core

// Grid3D extends the rows × cols plane with a level axis. Only rows and cols
// are bounds-checked on resize; levels is a display hint and cells may sit
// on any level, including negative ones.
type Grid3D struct {
	plane
	levels uint32
	logic  Logic[*Grid3D]
}

// NewGrid3D allocates an empty 3D grid.
func NewGrid3D(rows, cols, levels uint32) *Grid3D {
	return &Grid3D{plane: newPlane(rows, cols), levels: levels}
}

// SetLogic attaches l, replacing any previous logic. Pass an untyped nil to
// detach; a typed nil pointer stays attached and Step calls it.
func (g *Grid3D) SetLogic(l Logic[*Grid3D]) { g.logic = l }

// Dims reports 3.
func (g *Grid3D) Dims() int { return 3 }

// Levels returns the level display bound.
func (g *Grid3D) Levels() uint32 { return g.levels }

// SetLevels updates the level display bound. It never prunes.
func (g *Grid3D) SetLevels(n uint32) { g.levels = n }

// Add marks c occupied.
func (g *Grid3D) Add(c Cell) { g.cells[c] = struct{}{} }

// Remove clears c and reports whether it was occupied.
func (g *Grid3D) Remove(c Cell) bool {
	if _, ok := g.cells[c]; !ok {
		return false
	}
	delete(g.cells, c)
	return true
}

// Has reports whether c is occupied.
func (g *Grid3D) Has(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Move relocates from to to in one operation.
func (g *Grid3D) Move(from, to Cell) { g.move(from, to) }

// Clear empties the grid and lets the logic drop per-session state.
func (g *Grid3D) Clear() {
	clear(g.cells)
	if g.logic != nil {
		g.logic.Clear()
	}
}

// Step runs the attached logic once.
func (g *Grid3D) Step() error {
	if g.logic == nil {
		return ErrNoLogic
	}
	g.logic.Step(g)
	return nil
}

