//go:build ebiten

package render

import (
	"image/color"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads a rasterized grid into a single RGBA image and draws
// it scaled to the cell width.
type GridPainter struct {
	raster  *core.ByteGrid
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA

	Border color.Color
}

// NewGridPainter allocates a painter using palette to colour raster values.
func NewGridPainter(palette []color.RGBA) *GridPainter {
	return &GridPainter{
		raster:  core.NewByteGrid(0, 0),
		palette: palette,
		Border:  color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil {
		bw, bh := gp.img.Bounds().Dx(), gp.img.Bounds().Dy()
		if bw == w && bh == h {
			return
		}
		gp.img.Dispose()
	}
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit rasterizes grid and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid core.Grid, cellWidth int) {
	core.Rasterize(grid, gp.raster)
	if gp.raster.W == 0 || gp.raster.H == 0 {
		return
	}
	gp.ensure(gp.raster.W, gp.raster.H)
	if len(gp.palette) == 2 {
		fillBinaryRGBA(gp.buf, gp.raster.Cells(), gp.palette[1], gp.palette[0])
	} else {
		fillPaletteRGBA(gp.buf, gp.raster.Cells(), gp.palette)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellWidth), float64(cellWidth))
	dst.DrawImage(gp.img, op)
}

// DrawBorders strokes the frame and, when inner is set, the lines between
// cells.
func (gp *GridPainter) DrawBorders(dst *ebiten.Image, rows, cols uint32, cellWidth int, inner bool) {
	cw := float32(cellWidth)
	width, height := cw*float32(cols), cw*float32(rows)
	if inner {
		for col := uint32(1); col < cols; col++ {
			x := cw * float32(col)
			vector.StrokeLine(dst, x, 0, x, height, 1, gp.Border, false)
		}
		for row := uint32(1); row < rows; row++ {
			y := cw * float32(row)
			vector.StrokeLine(dst, 0, y, width, y, 1, gp.Border, false)
		}
	}
	vector.StrokeRect(dst, 0, 0, width, height, 1, gp.Border, false)
}
