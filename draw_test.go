// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gogpu/bitfont/resource"
)

// newTestFont loads glyphs as font 1 bound to s.
func newTestFont(t testing.TB, s *recordingSurface, glyphs []glyphDef, opts ...Option) *Font {
	t.Helper()
	p := resource.NewManager()
	mustAdd(t, p, 1, encodeFont(binary.LittleEndian, 8, glyphs))
	return mustNew(t, p, s, 1, opts...)
}

// solid returns a glyph with every pixel set.
func solid(w, h uint8) glyphDef {
	data := make([]byte, int((w+7)>>3)*int(h))
	for i := range data {
		data[i] = 0xFF
	}
	return glyphDef{w: w, h: h, data: data}
}

func TestDrawScenario(t *testing.T) {
	s := newRecordingSurface(320, 200)
	f := newTestFont(t, s, scenarioGlyphs)

	f.Draw(0, 0, 0, 5, false)

	want := []pixel{{0, 0, 5}, {1, 0, 5}, {2, 0, 5}}
	if len(s.writes) != len(want) {
		t.Fatalf("wrote %d pixels, want %d: %+v", len(s.writes), len(want), s.writes)
	}
	for i, p := range want {
		if s.writes[i] != p {
			t.Errorf("write %d = %+v, want %+v", i, s.writes[i], p)
		}
	}
}

func TestDrawMissingGlyph(t *testing.T) {
	s := newRecordingSurface(320, 200)
	logger, buf := captureLogger()
	f := newTestFont(t, s, scenarioGlyphs, WithLogger(logger))

	f.Draw(2, 0, 0, 5, false)
	f.Draw(500, 0, 0, 5, true)

	if len(s.writes) != 0 {
		t.Errorf("missing glyph wrote %d pixels", len(s.writes))
	}
	out := buf.String()
	if strings.Count(out, "missing glyph") != 2 {
		t.Errorf("expected two missing glyph warnings, got: %s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "font=font.001") || !strings.Contains(out, "glyph=500") {
		t.Errorf("warning lacks font or glyph attributes: %s", out)
	}
}

func TestDrawMissingGlyphUsesPackageLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	logger, buf := captureLogger()
	SetLogger(logger)

	s := newRecordingSurface(320, 200)
	f := newTestFont(t, s, scenarioGlyphs)
	f.Draw(9, 0, 0, 1, false)

	if !strings.Contains(buf.String(), "glyph=9") {
		t.Errorf("package logger did not receive the warning: %s", buf.String())
	}
}

func TestDrawClipping(t *testing.T) {
	tests := []struct {
		name      string
		top, left int
		want      int
		minX      int
		maxX      int
		maxY      int
	}{
		{"inside", 0, 0, 16, 0, 7, 1},
		{"right edge", 0, 6, 4, 6, 7, 1},
		{"bottom edge", 5, 0, 8, 0, 7, 5},
		{"fully right", 0, 8, 0, 0, 0, 0},
		{"fully below", 6, 0, 0, 0, 0, 0},
		{"far outside", 100, 100, 0, 0, 0, 0},
		{"negative left", 0, -3, 10, 0, 4, 1},
		{"negative top", -1, 0, 8, 0, 7, 0},
		{"fully above", -2, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordingSurface(8, 6)
			f := newTestFont(t, s, []glyphDef{solid(8, 2)})

			f.Draw(0, tt.top, tt.left, 1, false)

			if len(s.writes) != tt.want {
				t.Fatalf("wrote %d pixels, want %d", len(s.writes), tt.want)
			}
			for _, p := range s.writes {
				if p.x < 0 || p.y < 0 || p.x >= 8 || p.y >= 6 {
					t.Fatalf("out of bounds write at (%d, %d)", p.x, p.y)
				}
				if p.x < tt.minX || p.x > tt.maxX || p.y > tt.maxY {
					t.Errorf("unexpected write at (%d, %d)", p.x, p.y)
				}
			}
		})
	}
}

func TestDrawUpscaledUsesDisplayBounds(t *testing.T) {
	s := newRecordingSurface(4, 4)
	s.upscaled = true
	s.dispWidth, s.dispHeight = 8, 8
	f := newTestFont(t, s, []glyphDef{solid(8, 8)})

	f.Draw(0, 0, 0, 2, false)
	if len(s.writes) != 64 {
		t.Errorf("upscaled draw wrote %d pixels, want 64", len(s.writes))
	}

	s.writes = nil
	s.upscaled = false
	f.Draw(0, 0, 0, 2, false)
	if len(s.writes) != 16 {
		t.Errorf("logical draw wrote %d pixels, want 16", len(s.writes))
	}
}

func TestDrawGreyed(t *testing.T) {
	s := newRecordingSurface(64, 64)
	f := newTestFont(t, s, []glyphDef{solid(8, 4)})

	const top = 3
	f.Draw(0, top, 0, 9, true)

	got := s.set()
	for row := 0; row < 4; row++ {
		y := top + row
		mask := byte(0x55)
		if y%2 != 0 {
			mask = 0xAA
		}
		for x := 0; x < 8; x++ {
			_, set := got[[2]int{x, y}]
			want := mask&(0x80>>x) != 0
			if set != want {
				t.Errorf("pixel (%d, %d) set = %v, want %v", x, y, set, want)
			}
		}
	}
	if len(s.writes) != 16 {
		t.Errorf("greyed draw wrote %d pixels, want 16", len(s.writes))
	}

	s.writes = nil
	f.Draw(0, top, 0, 9, false)
	if len(s.writes) != 32 {
		t.Errorf("plain draw wrote %d pixels, want 32", len(s.writes))
	}
}

func TestDrawGreyedNegativeTop(t *testing.T) {
	s := newRecordingSurface(8, 8)
	f := newTestFont(t, s, []glyphDef{solid(8, 2)})

	// Row -1 is dropped; row 0 uses the even stipple.
	f.Draw(0, -1, 0, 1, true)
	got := s.set()
	for x := 0; x < 8; x++ {
		_, set := got[[2]int{x, 0}]
		if want := x%2 == 1; set != want {
			t.Errorf("pixel (%d, 0) set = %v, want %v", x, set, want)
		}
	}
}

func TestDrawClippedKeepsRowCadence(t *testing.T) {
	// Two rows of a 16 pixel glyph; each row is two bytes.
	g := glyphDef{w: 16, h: 2, data: []byte{0xF0, 0x00, 0x90, 0x00}}
	s := newRecordingSurface(4, 4)
	f := newTestFont(t, s, []glyphDef{g})

	f.Draw(0, 0, 0, 1, false)

	got := s.set()
	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true, {3, 0}: true,
		{0, 1}: true, {3, 1}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("wrote %v, want %v", got, want)
	}
	for p := range want {
		if _, ok := got[p]; !ok {
			t.Errorf("missing pixel %v", p)
		}
	}
}

func TestDrawWideGlyph(t *testing.T) {
	g := glyphDef{w: 10, h: 2, data: []byte{0x80, 0x40, 0x01, 0xC0}}
	s := newRecordingSurface(32, 32)
	f := newTestFont(t, s, []glyphDef{g})

	f.Draw(0, 0, 0, 1, false)

	got := s.set()
	for _, p := range [][2]int{{0, 0}, {9, 0}, {7, 1}, {8, 1}, {9, 1}} {
		if _, ok := got[p]; !ok {
			t.Errorf("missing pixel %v", p)
		}
	}
	if len(got) != 5 {
		t.Errorf("wrote %d pixels, want 5: %v", len(got), got)
	}
}

func TestDrawShortBitmap(t *testing.T) {
	// The last glyph claims four rows but carries one byte.
	s := newRecordingSurface(16, 16)
	f := newTestFont(t, s, []glyphDef{{w: 8, h: 4, data: []byte{0x81}}})

	f.Draw(0, 0, 0, 1, false)

	if len(s.writes) != 2 {
		t.Errorf("wrote %d pixels, want 2", len(s.writes))
	}
}

func TestDrawNilSurface(t *testing.T) {
	f := newTestFont(t, nil, scenarioGlyphs)
	f.Draw(0, 0, 0, 1, false)
}

func TestDrawToBufferScenario(t *testing.T) {
	f := newTestFont(t, nil, scenarioGlyphs)

	const w, h = 6, 4
	buf := make([]byte, w*h)
	f.DrawToBuffer(0, 1, 2, 5, false, buf, w, h)

	for i, v := range buf {
		x, y := i%w, i/w
		want := byte(0)
		if y == 1 && x >= 2 && x <= 4 {
			want = 5
		}
		if v != want {
			t.Errorf("buf(%d, %d) = %d, want %d", x, y, v, want)
		}
	}
}

func TestDrawToBufferClipping(t *testing.T) {
	f := newTestFont(t, nil, []glyphDef{solid(8, 8)})

	tests := []struct {
		name      string
		top, left int
		want      int
	}{
		{"inside", 0, 0, 16},
		{"clipped right and bottom", 2, 2, 4},
		{"negative left", 0, -6, 8},
		{"negative top", -7, 0, 4},
		{"outside", 4, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 16)
			f.DrawToBuffer(0, tt.top, tt.left, 3, false, buf, 4, 4)

			n := 0
			for _, v := range buf {
				if v == 3 {
					n++
				}
			}
			if n != tt.want {
				t.Errorf("set %d pixels, want %d", n, tt.want)
			}
		})
	}
}

func TestDrawToBufferShortBuffer(t *testing.T) {
	f := newTestFont(t, nil, []glyphDef{solid(8, 8)})

	buf := make([]byte, 10)
	f.DrawToBuffer(0, 0, 0, 1, false, buf, 4, 4)

	for i, v := range buf {
		if v != 1 {
			t.Errorf("buf[%d] = %d, want 1", i, v)
		}
	}
}

func TestDrawToBufferMissingGlyph(t *testing.T) {
	logger, out := captureLogger()
	f := newTestFont(t, nil, scenarioGlyphs, WithLogger(logger))

	buf := make([]byte, 64)
	f.DrawToBuffer(7, 0, 0, 1, false, buf, 8, 8)

	for _, v := range buf {
		if v != 0 {
			t.Fatal("missing glyph wrote into the buffer")
		}
	}
	if !strings.Contains(out.String(), "glyph=7") {
		t.Errorf("missing glyph not logged: %s", out.String())
	}
}

func TestDrawToBufferMatchesDraw(t *testing.T) {
	const w, h = 40, 20
	s := newRecordingSurface(w, h)
	f := mustNew(t, nil, s, SystemFontID, WithVersion(SCI2))

	for g := uint16(0); int(g) < f.NumGlyphs(); g++ {
		for _, greyed := range []bool{false, true} {
			s.writes = nil
			f.Draw(g, 3, 5, 1, greyed)

			buf := make([]byte, w*h)
			f.DrawToBuffer(g, 3, 5, 1, greyed, buf, w, h)

			got := s.set()
			for i, v := range buf {
				_, drawn := got[[2]int{i % w, i / w}]
				if drawn != (v == 1) {
					t.Fatalf("glyph %d greyed=%v: pixel (%d, %d) differs", g, greyed, i%w, i/w)
				}
			}
		}
	}
}

func BenchmarkDraw(b *testing.B) {
	s := newRecordingSurface(320, 200)
	f := mustNew(b, nil, s, SystemFontID, WithVersion(SCI2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.writes = s.writes[:0]
		f.Draw('W', 10, 10, 15, false)
	}
}

func BenchmarkDrawToBuffer(b *testing.B) {
	f := mustNew(b, nil, nil, SystemFontID, WithVersion(SCI2))
	buf := make([]byte, 320*200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.DrawToBuffer('W', 10, 10, 15, true, buf, 320, 200)
	}
}
