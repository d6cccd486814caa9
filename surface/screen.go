// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// Screen is a CPU-based PixelSurface backed by an *image.Paletted.
type Screen struct {
	width  int
	height int
	scale  int
	img    *image.Paletted
}

var _ PixelSurface = (*Screen)(nil)

// NewScreen creates a screen. Zero fields of opts take the values of
// DefaultOptions.
func NewScreen(opts Options) *Screen {
	opts = opts.withDefaults()
	rect := image.Rect(0, 0, opts.Width*opts.Scale, opts.Height*opts.Scale)

	return &Screen{
		width:  opts.Width,
		height: opts.Height,
		scale:  opts.Scale,
		img:    image.NewPaletted(rect, opts.Palette),
	}
}

// Width returns the logical width.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the logical height.
func (s *Screen) Height() int {
	return s.height
}

// Upscaled reports whether the display is larger than the logical screen.
func (s *Screen) Upscaled() bool {
	return s.scale > 1
}

// DisplayWidth returns the width of the backing image.
func (s *Screen) DisplayWidth() int {
	return s.width * s.scale
}

// DisplayHeight returns the height of the backing image.
func (s *Screen) DisplayHeight() int {
	return s.height * s.scale
}

// Scale returns the upscale factor.
func (s *Screen) Scale() int {
	return s.scale
}

// PutPixel writes a color index. On an upscaled screen (x, y) are display
// coordinates. Out of range writes are dropped.
func (s *Screen) PutPixel(x, y int, c uint8) {
	if !(image.Point{X: x, Y: y}.In(s.img.Rect)) {
		return
	}
	s.img.Pix[s.img.PixOffset(x, y)] = c
}

// PutLogicalPixel writes a color index at logical coordinates, filling
// the scale x scale block it covers on the display.
func (s *Screen) PutLogicalPixel(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	for dy := 0; dy < s.scale; dy++ {
		row := s.img.PixOffset(x*s.scale, y*s.scale+dy)
		for dx := 0; dx < s.scale; dx++ {
			s.img.Pix[row+dx] = c
		}
	}
}

// ColorIndexAt returns the color index at display coordinates, or 0
// outside the screen.
func (s *Screen) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(s.img.Rect)) {
		return 0
	}
	return s.img.ColorIndexAt(x, y)
}

// Clear fills the whole screen with color index c.
func (s *Screen) Clear(c uint8) {
	for i := range s.img.Pix {
		s.img.Pix[i] = c
	}
}

// Image returns the backing image. It is not a copy.
func (s *Screen) Image() *image.Paletted {
	return s.img
}
