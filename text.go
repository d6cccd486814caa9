// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import "strings"

// GlyphIndex maps a rune to a glyph index through the font's character
// map. ok is false if the character map cannot encode r. The index may
// still be beyond NumGlyphs.
func (f *Font) GlyphIndex(r rune) (glyph uint16, ok bool) {
	if f.charmap == nil {
		if r < 0 || r > 0xff {
			return 0, false
		}
		return uint16(r), true
	}
	b, ok := f.charmap.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return uint16(b), true
}

// StringWidth returns the width in pixels of the widest line of s.
// Runes without a glyph count as zero width.
func (f *Font) StringWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		w := 0
		for _, r := range line {
			if g, ok := f.GlyphIndex(r); ok {
				w += f.CharWidth(g)
			}
		}
		widest = max(widest, w)
	}
	return widest
}

// StringHeight returns the height in pixels of s: one line height for
// every line break plus the tallest glyph of the last line.
func (f *Font) StringHeight(s string) int {
	lines := strings.Split(s, "\n")
	tallest := 0
	for _, r := range lines[len(lines)-1] {
		if g, ok := f.GlyphIndex(r); ok {
			tallest = max(tallest, f.CharHeight(g))
		}
	}
	return (len(lines)-1)*f.Height() + tallest
}

// DrawString draws s onto the font's surface starting at (left, top).
// Each glyph advances the pen by its width; '\n' moves the pen one line
// height down and back to left. Runes the character map cannot encode
// are logged and skipped.
func (f *Font) DrawString(s string, top, left int, color uint8, greyed bool) {
	x, y := left, top
	for _, r := range s {
		if r == '\n' {
			x = left
			y += f.Height()
			continue
		}
		g, ok := f.GlyphIndex(r)
		if !ok {
			f.log().Warn("bitfont: rune not in character map", "font", f.Name(), "rune", string(r))
			continue
		}
		f.Draw(g, y, x, color, greyed)
		x += f.CharWidth(g)
	}
}
