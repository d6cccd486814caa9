// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a Font to golang.org/x/image/font.Face so it can be used
// with font.Drawer.
//
// Glyphs hang from the top of the line: the ascent is the full line
// height and the descent is zero. There is no kerning.
//
// Closing a Face does not close the Font.
type Face struct {
	font   *Font
	greyed bool
}

var _ font.Face = (*Face)(nil)

// NewFace returns a face for f.
func NewFace(f *Font) *Face {
	return &Face{font: f}
}

// NewGreyedFace returns a face that renders glyphs with the greyed-out
// stipple.
func NewGreyedFace(f *Font) *Face {
	return &Face{font: f, greyed: true}
}

// Close implements font.Face. It is a no-op.
func (fc *Face) Close() error {
	return nil
}

// lookup returns the glyph for r if the font has one.
func (fc *Face) lookup(r rune) (uint16, bool) {
	g, ok := fc.font.GlyphIndex(r)
	if !ok || int(g) >= fc.font.NumGlyphs() {
		return 0, false
	}
	return g, true
}

// Glyph implements font.Face.
func (fc *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	g, ok := fc.lookup(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	w, h := fc.font.CharWidth(g), fc.font.CharHeight(g)
	x := dot.X.Round()
	y := dot.Y.Round() - fc.font.Height()

	// The stipple follows the destination row, so a glyph landing on an
	// odd row is rasterized one row down and the padding row dropped.
	pad := y & 1
	buf := make([]byte, w*(h+pad))
	fc.font.DrawToBuffer(g, pad, 0, 0xff, fc.greyed, buf, w, h+pad)
	alpha := &image.Alpha{Pix: buf[w*pad:], Stride: w, Rect: image.Rect(0, 0, w, h)}

	return image.Rect(x, y, x+w, y+h), alpha, image.Point{}, fixed.I(w), true
}

// GlyphBounds implements font.Face.
func (fc *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := fc.lookup(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}

	w, h := fc.font.CharWidth(g), fc.font.CharHeight(g)
	ascent := fc.font.Height()
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(0, -ascent),
		Max: fixed.P(w, h-ascent),
	}
	return bounds, fixed.I(w), true
}

// GlyphAdvance implements font.Face.
func (fc *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, ok := fc.lookup(r)
	if !ok {
		return 0, false
	}
	return fixed.I(fc.font.CharWidth(g)), true
}

// Kern implements font.Face. Bitmap fonts have no kerning.
func (fc *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics implements font.Face.
func (fc *Face) Metrics() font.Metrics {
	h := fixed.I(fc.font.Height())
	return font.Metrics{
		Height:     h,
		Ascent:     h,
		Descent:    0,
		CapHeight:  h,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
