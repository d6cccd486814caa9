// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import "github.com/gogpu/bitfont/surface"

// Stipple masks applied to alternate rows of greyed-out glyphs.
const (
	stippleOdd  = 0xAA
	stippleEven = 0x55
	stippleNone = 0xFF
)

// stippleMask returns the mask for the given destination row.
func stippleMask(row int) byte {
	if row%2 != 0 {
		return stippleOdd
	}
	return stippleEven
}

// glyphCursor walks a glyph bitmap one byte at a time. Rows start on byte
// boundaries, so the cursor jumps to the next row's first byte however
// many bytes of the current row were fetched.
type glyphCursor struct {
	data     []byte
	stride   int
	rowStart int
	pos      int
}

func newGlyphCursor(data []byte, width int) glyphCursor {
	return glyphCursor{data: data, stride: (width + 7) >> 3}
}

// next returns the next byte of the current row. Past the end of the
// data it returns 0.
func (c *glyphCursor) next() byte {
	var b byte
	if c.pos < len(c.data) {
		b = c.data[c.pos]
	}
	c.pos++
	return b
}

// nextRow moves to the first byte of the following row.
func (c *glyphCursor) nextRow() {
	c.rowStart += c.stride
	c.pos = c.rowStart
}

// Draw rasterizes a glyph onto the font's surface with its top-left
// corner at (left, top), writing color for every set bit. greyed applies a
// checkerboard stipple that drops half of the foreground pixels.
//
// The glyph is clipped against the surface, using the display size when
// the surface is upscaled. Drawing a glyph the font does not have logs a
// warning and draws nothing.
func (f *Font) Draw(glyph uint16, top, left int, color uint8, greyed bool) {
	if int(glyph) >= len(f.chars) {
		f.warnMissing(glyph)
		return
	}
	if f.screen == nil {
		return
	}

	width, height := surface.Bounds(f.screen)
	f.rasterize(int(glyph), top, left, greyed, width, height, func(x, y int) {
		f.screen.PutPixel(x, y, color)
	})
}

// DrawToBuffer is Draw with an 8-bit indexed buffer as target instead of
// the surface. The buffer is bufWidth pixels wide and bufHeight rows high;
// pixel (x, y) is buffer[y*bufWidth+x]. Writes never leave the buffer.
func (f *Font) DrawToBuffer(glyph uint16, top, left int, color uint8, greyed bool, buffer []byte, bufWidth, bufHeight int) {
	if int(glyph) >= len(f.chars) {
		f.warnMissing(glyph)
		return
	}

	f.rasterize(int(glyph), top, left, greyed, bufWidth, bufHeight, func(x, y int) {
		if off := y*bufWidth + x; off < len(buffer) {
			buffer[off] = color
		}
	})
}

// rasterize calls plot for every visible foreground pixel of glyph i.
// The glyph is clipped to clipWidth x clipHeight; pixels left of or above
// the origin are skipped.
func (f *Font) rasterize(i, top, left int, greyed bool, clipWidth, clipHeight int, plot func(x, y int)) {
	info := f.chars[i]
	width := min(int(info.width), clipWidth-left)
	height := min(int(info.height), clipHeight-top)
	if width <= 0 || height <= 0 {
		return
	}

	cur := newGlyphCursor(f.charSpan(i).Bytes(), int(info.width))
	mask := byte(stippleNone)

	for row := 0; row < height; row++ {
		y := top + row
		if greyed {
			mask = stippleMask(y)
		}

		var b byte
		for col := 0; col < width; col++ {
			if col&7 == 0 {
				b = cur.next() & mask
			}
			if b&0x80 != 0 {
				if x := left + col; x >= 0 && y >= 0 {
					plot(x, y)
				}
			}
			b <<= 1
		}
		cur.nextRow()
	}
}

func (f *Font) warnMissing(glyph uint16) {
	f.log().Warn("bitfont: font is missing glyph",
		"font", f.Name(),
		"glyph", int(glyph))
}
