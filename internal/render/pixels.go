package render

import "image/color"

// fillBinaryRGBA converts raster values into RGBA pixels in buf. Any non-zero
// value is drawn with on.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts raster values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// DepthPalette returns off followed by levels shades ramping from a dim
// variant of on up to on itself, so stacked 3D cells read brighter.
func DepthPalette(on, off color.RGBA, levels int) []color.RGBA {
	if levels < 1 {
		levels = 1
	}
	palette := make([]color.RGBA, levels+1)
	palette[0] = off
	for i := 1; i <= levels; i++ {
		w := 0.4 + 0.6*float64(i)/float64(levels)
		palette[i] = color.RGBA{
			R: blend(off.R, on.R, w),
			G: blend(off.G, on.G, w),
			B: blend(off.B, on.B, w),
			A: 255,
		}
	}
	return palette
}

func blend(a, b uint8, w float64) uint8 {
	return uint8(float64(a)*(1-w) + float64(b)*w + 0.5)
}
