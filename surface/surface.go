// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// PixelSurface is a drawable target addressed by palette index.
type PixelSurface interface {
	// Width returns the logical width in pixels.
	Width() int

	// Height returns the logical height in pixels.
	Height() int

	// Upscaled reports whether the display resolution differs from the
	// logical one. Clipping must then use the display dimensions.
	Upscaled() bool

	// DisplayWidth returns the physical width. Only meaningful when
	// Upscaled is true.
	DisplayWidth() int

	// DisplayHeight returns the physical height. Only meaningful when
	// Upscaled is true.
	DisplayHeight() int

	// PutPixel writes color index c at (x, y). Writes outside the
	// surface are ignored.
	PutPixel(x, y int, c uint8)
}

// Bounds returns the dimensions a rasterizer should clip against: the
// display size on upscaled surfaces, the logical size otherwise.
func Bounds(s PixelSurface) (width, height int) {
	if s.Upscaled() {
		return s.DisplayWidth(), s.DisplayHeight()
	}
	return s.Width(), s.Height()
}
