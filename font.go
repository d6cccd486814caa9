// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"log/slog"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/bitfont/internal/span"
	"github.com/gogpu/bitfont/resource"
	"github.com/gogpu/bitfont/surface"
)

// SystemFontID selects the embedded system font on modern versions.
const SystemFontID resource.ID = -1

// fontIDMask strips the flag bits some games put into font numbers.
const fontIDMask = 0x7ff

// Header layout.
const (
	headerCountOffset  = 2
	headerHeightOffset = 4
	headerTableOffset  = 6
	glyphHeaderSize    = 2
)

// ownership tells Close whether the font data must be returned to the
// provider.
type ownership uint8

const (
	ownStatic ownership = iota // embedded data, never released
	ownLeased                  // locked through a Provider
)

// decoding selects how 16-bit header fields are read. It is chosen once
// from the provenance of the data.
type decoding uint8

const (
	// decodeLE reads little-endian. Used for the embedded system font.
	decodeLE decoding = iota

	// decodeSE32LE reads a leased resource in little-endian order.
	decodeSE32LE

	// decodeSE32BE reads a leased resource from a big-endian build of a
	// modern interpreter.
	decodeSE32BE
)

// decodingFor picks the strategy for a leased resource.
func decodingFor(v Version, bigEndian bool) decoding {
	if bigEndian && v.Modern() {
		return decodeSE32BE
	}
	return decodeSE32LE
}

func (d decoding) String() string {
	switch d {
	case decodeSE32LE:
		return "SE32/LE"
	case decodeSE32BE:
		return "SE32/BE"
	default:
		return "LE"
	}
}

// charInfo is one entry of the glyph table.
type charInfo struct {
	offset int
	width  uint8
	height uint8
}

// Font is a bitmap font loaded from a font resource.
//
// Glyphs have variable width and a fixed line height. Each glyph is a
// 1 bit per pixel bitmap, MSB first, with every row padded to a whole
// byte. The glyph table is decoded once in New; after that a Font is
// read-only and may be queried from any goroutine, though drawing to a
// shared surface needs the surface's own synchronization.
//
// A Font must be closed to release its resource.
type Font struct {
	id     resource.ID
	screen surface.PixelSurface

	provider resource.Provider
	handle   *resource.Handle
	own      ownership
	closed   bool

	data   span.Span
	decode decoding

	height uint16
	chars  []charInfo

	logger  *slog.Logger
	charmap *charmap.Charmap
}

// New loads font id through provider and binds it to screen.
//
// On modern versions SystemFontID selects the embedded system font and
// the provider is not consulted. Otherwise, if the provider does not know
// id, the id is retried once with only its low 11 bits. The lookup failing
// is fatal and reported as ErrFontNotFound. On a legacy version
// SystemFontID is rejected with ErrInvalidFontID before any lookup.
//
// screen may be nil for fonts that only use DrawToBuffer or Face.
// On error the returned font is nil and no resource remains locked.
func New(provider resource.Provider, screen surface.PixelSurface, id resource.ID, opts ...Option) (*Font, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Font{
		id:       id,
		screen:   screen,
		provider: provider,
		logger:   o.logger,
		charmap:  o.charmap,
	}

	if o.version.Modern() && id == SystemFontID {
		f.own = ownStatic
		f.data = span.New(systemFontData, systemFontName)
		f.decode = decodeLE
	} else {
		if id == SystemFontID {
			return nil, ErrInvalidFontID
		}
		h, err := lockFont(provider, id, f.log())
		if err != nil {
			return nil, err
		}
		f.own = ownLeased
		f.handle = h
		f.data = span.New(h.Data, h.Name())
		f.decode = decodingFor(o.version, o.bigEndian)
	}

	if err := f.load(); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.log().Debug("bitfont: font loaded",
		"font", f.Name(),
		"glyphs", len(f.chars),
		"height", f.height,
		"decoding", f.decode.String(),
		"version", o.version.String())
	return f, nil
}

// lockFont locks the font resource, retrying once with the masked id.
func lockFont(provider resource.Provider, id resource.ID, logger *slog.Logger) (*resource.Handle, error) {
	if provider == nil {
		return nil, &NotFoundError{ID: id, Err: resource.ErrNotFound}
	}

	if !provider.Exists(resource.KindFont, id) {
		masked := id & fontIDMask
		logger.Debug("bitfont: font not found, retrying with masked id",
			"id", int(id), "masked", int(masked))
		id = masked
	}

	h, err := provider.Lock(resource.KindFont, id)
	if err != nil {
		return nil, &NotFoundError{ID: id, Err: err}
	}
	return h, nil
}

// load decodes the header and the glyph table.
func (f *Font) load() error {
	count, err := f.uint16At(headerCountOffset)
	if err != nil {
		return &MalformedError{Font: f.Name(), Glyph: -1, Err: err}
	}
	height, err := f.uint16At(headerHeightOffset)
	if err != nil {
		return &MalformedError{Font: f.Name(), Glyph: -1, Err: err}
	}

	chars := make([]charInfo, count)
	for i := range chars {
		off, err := f.uint16At(headerTableOffset + i*2)
		if err != nil {
			return &MalformedError{Font: f.Name(), Glyph: i, Err: err}
		}
		// Width and height are single bytes in every decoding.
		w, err := f.data.Uint8At(int(off))
		if err != nil {
			return &MalformedError{Font: f.Name(), Glyph: i, Err: err}
		}
		h, err := f.data.Uint8At(int(off) + 1)
		if err != nil {
			return &MalformedError{Font: f.Name(), Glyph: i, Err: err}
		}
		chars[i] = charInfo{offset: int(off), width: w, height: h}
	}

	f.height = height
	f.chars = chars
	return nil
}

// uint16At reads a header field with the font's decoding.
func (f *Font) uint16At(off int) (uint16, error) {
	switch f.decode {
	case decodeSE32BE:
		return f.data.Uint16BEAt(off)
	default:
		return f.data.Uint16LEAt(off)
	}
}

// Close releases the font resource. Closing the system font or closing
// twice is a no-op.
func (f *Font) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.own != ownLeased {
		return nil
	}
	h := f.handle
	f.handle = nil
	return f.provider.Unlock(h)
}

// log returns the font's logger or the package logger.
func (f *Font) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return Logger()
}

// ResourceID returns the id passed to New, before any masking.
func (f *Font) ResourceID() resource.ID {
	return f.id
}

// Name returns the resource name used in diagnostics.
func (f *Font) Name() string {
	return f.data.Name()
}

// Height returns the line height of the font.
func (f *Font) Height() int {
	return int(f.height)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.chars)
}

// CharWidth returns the width of a glyph, or 0 for a glyph the font does
// not have.
func (f *Font) CharWidth(glyph uint16) int {
	if int(glyph) >= len(f.chars) {
		return 0
	}
	return int(f.chars[glyph].width)
}

// CharHeight returns the height of a glyph, or 0 for a glyph the font
// does not have.
func (f *Font) CharHeight(glyph uint16) int {
	if int(glyph) >= len(f.chars) {
		return 0
	}
	return int(f.chars[glyph].height)
}

// CharData returns the packed bitmap of a glyph without its width and
// height bytes, or nil for a glyph the font does not have. The slice
// aliases the resource and must not be modified.
func (f *Font) CharData(glyph uint16) []byte {
	if int(glyph) >= len(f.chars) {
		return nil
	}
	return f.charSpan(int(glyph)).Bytes()
}

// charSpan returns the bitmap of glyph i. It runs up to the next glyph's
// record, or to the end of the data for the last glyph, and is clamped to
// the data.
func (f *Font) charSpan(i int) span.Span {
	end := f.data.Len()
	if i+1 < len(f.chars) {
		end = f.chars[i+1].offset
	}
	start := f.chars[i].offset + glyphHeaderSize
	return f.data.Clamp(start, end-start)
}
