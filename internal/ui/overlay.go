//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay highlights the cell under the pointer on top of the grid view.
type Overlay struct {
	cellWidth int
	show      bool

	hover    bool
	row, col uint32
	tint     color.RGBA
}

// NewOverlay constructs an overlay for a view drawn at cellWidth pixels per
// cell.
func NewOverlay(cellWidth int) *Overlay {
	return &Overlay{cellWidth: cellWidth, show: true, tint: color.RGBA{R: 120, G: 200, B: 255, A: 200}}
}

// Update tracks the hovered cell. H toggles the highlight.
func (o *Overlay) Update(rows, cols uint32) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	mx, my := ebiten.CursorPosition()
	o.row, o.col, o.hover = CellAt(mx, my, o.cellWidth, rows, cols)
}

// Hovered returns the cell under the pointer.
func (o *Overlay) Hovered() (uint32, uint32, bool) {
	return o.row, o.col, o.hover
}

// SetTint changes the highlight colour, typically to reflect the held tool.
func (o *Overlay) SetTint(c color.RGBA) { o.tint = c }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hover || o.cellWidth <= 0 {
		return
	}
	w := float32(o.cellWidth)
	x := float32(o.col) * w
	y := float32(o.row) * w
	vector.StrokeRect(screen, x+0.5, y+0.5, w-1, w-1, 1, o.tint, false)
}
