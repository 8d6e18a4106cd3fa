package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or 0 outside the buffer.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Resize reallocates the buffer when the dimensions change.
func (g *ByteGrid) Resize(w, h int) {
	if w == g.W && h == g.H {
		return
	}
	g.W, g.H = w, h
	g.data = make([]uint8, w*h)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Rasterize projects the drawable cells of grid onto buf, resizing it to
// cols × rows. Each value counts the occupied levels at that position,
// saturating at 255; 2D grids produce 0/1.
func Rasterize(grid Grid, buf *ByteGrid) {
	buf.Resize(int(grid.Cols()), int(grid.Rows()))
	buf.Clear()
	for _, c := range grid.DrawableCells() {
		if !c.InBounds(grid.Rows(), grid.Cols()) {
			continue
		}
		idx := buf.Index(int(c.Col), int(c.Row))
		if buf.data[idx] < 255 {
			buf.data[idx]++
		}
	}
}
