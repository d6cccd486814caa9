// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel targets fonts are drawn onto.
//
// PixelSurface is the minimal contract a glyph rasterizer needs: logical
// and display dimensions, whether the display is upscaled, and single
// pixel writes with a palette index. Fonts only ever call PutPixel, so any
// framebuffer can be adapted with a few methods.
//
// # Screen
//
// Screen is the software implementation, backed by an *image.Paletted at
// display resolution:
//
//	s := surface.NewScreen(surface.Options{Width: 320, Height: 200, Scale: 2})
//	font.Draw('A', 10, 10, 15, false)
//	img := s.Image()
//
// When Scale is greater than one the screen is upscaled: DisplayWidth and
// DisplayHeight report the scaled size and PutPixel addresses display
// pixels directly, because fonts prepared for an upscaled screen are
// already at display size.
//
// # Modes
//
// Named screen configurations can be registered and looked up:
//
//	opts, ok := surface.Lookup("hires")
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
