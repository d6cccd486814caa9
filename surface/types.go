// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image/color"

// Options configures a Screen.
type Options struct {
	// Width is the logical width in pixels (default 320).
	Width int

	// Height is the logical height in pixels (default 200).
	Height int

	// Scale is the integer upscale factor of the display. Values below 2
	// mean the screen is not upscaled.
	Scale int

	// Palette maps color indices to colors. Defaults to EGAPalette.
	Palette color.Palette
}

// DefaultOptions returns the options of a 320x200 EGA screen.
func DefaultOptions() Options {
	return Options{
		Width:   320,
		Height:  200,
		Scale:   1,
		Palette: EGAPalette,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if len(o.Palette) == 0 {
		o.Palette = def.Palette
	}
	return o
}

// EGAPalette is the 16-color EGA palette.
var EGAPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xaa, 0xff},
	color.RGBA{0x00, 0xaa, 0x00, 0xff},
	color.RGBA{0x00, 0xaa, 0xaa, 0xff},
	color.RGBA{0xaa, 0x00, 0x00, 0xff},
	color.RGBA{0xaa, 0x00, 0xaa, 0xff},
	color.RGBA{0xaa, 0x55, 0x00, 0xff},
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	color.RGBA{0x55, 0x55, 0x55, 0xff},
	color.RGBA{0x55, 0x55, 0xff, 0xff},
	color.RGBA{0x55, 0xff, 0x55, 0xff},
	color.RGBA{0x55, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x55, 0x55, 0xff},
	color.RGBA{0xff, 0x55, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0x55, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}
