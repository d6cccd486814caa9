// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"testing"

	"github.com/gogpu/bitfont/resource"
	"github.com/gogpu/bitfont/surface"
)

// glyphDef describes one glyph of a synthetic font.
type glyphDef struct {
	w, h uint8
	data []byte
}

// encodeFont builds a font resource with glyph records packed right after
// the offset table.
func encodeFont(order binary.ByteOrder, height uint16, glyphs []glyphDef) []byte {
	buf := make([]byte, headerTableOffset+2*len(glyphs))
	order.PutUint16(buf[headerCountOffset:], uint16(len(glyphs)))
	order.PutUint16(buf[headerHeightOffset:], height)
	for i, g := range glyphs {
		order.PutUint16(buf[headerTableOffset+2*i:], uint16(len(buf)))
		buf = append(buf, g.w, g.h)
		buf = append(buf, g.data...)
	}
	return buf
}

// scenarioGlyphs is a two glyph font: glyph 0 at offset 10 is three
// pixels wide with bits 111, glyph 1 at offset 13 is the last glyph.
var scenarioGlyphs = []glyphDef{
	{w: 3, h: 1, data: []byte{0xE0}},
	{w: 8, h: 2, data: []byte{0xFF, 0x81}},
}

// pixel is one recorded surface write.
type pixel struct {
	x, y  int
	color uint8
}

// recordingSurface is a PixelSurface that records every write.
type recordingSurface struct {
	width, height         int
	upscaled              bool
	dispWidth, dispHeight int
	writes                []pixel
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) Width() int         { return s.width }
func (s *recordingSurface) Height() int        { return s.height }
func (s *recordingSurface) Upscaled() bool     { return s.upscaled }
func (s *recordingSurface) DisplayWidth() int  { return s.dispWidth }
func (s *recordingSurface) DisplayHeight() int { return s.dispHeight }

func (s *recordingSurface) PutPixel(x, y int, c uint8) {
	s.writes = append(s.writes, pixel{x: x, y: y, color: c})
}

// set returns the written pixels as a set of coordinates.
func (s *recordingSurface) set() map[[2]int]uint8 {
	m := make(map[[2]int]uint8, len(s.writes))
	for _, p := range s.writes {
		m[[2]int{p.x, p.y}] = p.color
	}
	return m
}

// countingProvider wraps a Manager and records the calls made to it.
type countingProvider struct {
	*resource.Manager
	exists  []resource.ID
	locks   []resource.ID
	unlocks int
}

func newCountingProvider() *countingProvider {
	return &countingProvider{Manager: resource.NewManager()}
}

func (p *countingProvider) Exists(kind resource.Kind, id resource.ID) bool {
	p.exists = append(p.exists, id)
	return p.Manager.Exists(kind, id)
}

func (p *countingProvider) Lock(kind resource.Kind, id resource.ID) (*resource.Handle, error) {
	p.locks = append(p.locks, id)
	return p.Manager.Lock(kind, id)
}

func (p *countingProvider) Unlock(h *resource.Handle) error {
	p.unlocks++
	return p.Manager.Unlock(h)
}

func (p *countingProvider) calls() int {
	return len(p.exists) + len(p.locks) + p.unlocks
}

// mustAdd registers a font resource or fails the test.
func mustAdd(t testing.TB, p interface {
	Add(resource.Kind, resource.ID, []byte) error
}, id resource.ID, data []byte) {
	t.Helper()
	if err := p.Add(resource.KindFont, id, data); err != nil {
		t.Fatal(err)
	}
}

// mustNew opens a font and closes it when the test ends.
func mustNew(t testing.TB, p resource.Provider, s *recordingSurface, id resource.ID, opts ...Option) *Font {
	t.Helper()
	var screen surface.PixelSurface
	if s != nil {
		screen = s
	}
	f, err := New(p, screen, id, opts...)
	if err != nil {
		t.Fatalf("New(%d) = %v", id, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// captureLogger returns a debug logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
