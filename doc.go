// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bitfont renders glyphs from SCI bitmap font resources.
//
// # Overview
//
// A font resource is a packed table of variable-width, fixed-height
// 1-bit glyphs:
//
//	offset 0..1   reserved
//	offset 2..3   glyph count        (uint16)
//	offset 4..5   line height        (uint16)
//	offset 6+2i   offset of glyph i  (uint16)
//	at each glyph offset:
//	  byte 0      width  (uint8)
//	  byte 1      height (uint8)
//	  byte 2..    bitmap, MSB first, each row padded to a whole byte
//
// 16-bit fields are little-endian, except for modern resources from
// big-endian platform builds (see WithBigEndian).
//
// # Quick Start
//
//	resMan := resource.NewManager()
//	if _, err := resource.LoadPatches(os.DirFS("game"), resMan); err != nil {
//	    log.Fatal(err)
//	}
//
//	screen := surface.NewScreen(surface.DefaultOptions())
//	f, err := bitfont.New(resMan, screen, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	f.DrawString("Hello", 10, 10, 15, false)
//
// # Drawing
//
// Draw writes glyph pixels to the font's PixelSurface, clipped to its
// bounds. DrawToBuffer does the same into a caller-owned 8-bit buffer.
// Both can render a "greyed" glyph, where alternate rows are masked with
// 0x55 and 0xAA stipples to dim disabled controls.
//
// Asking for a glyph the font does not have is not an error: metrics
// return zero, CharData returns nil and drawing logs a warning through
// the package logger (see SetLogger).
//
// # Interoperability
//
// Face wraps a Font as a golang.org/x/image/font.Face, and Cache keeps one
// open Font per resource id.
package bitfont
