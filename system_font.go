// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

// systemFontName is reported in diagnostics for the embedded font.
const systemFontName = "system font"

// systemFontData is the embedded 128-glyph baseline font used when a
// modern interpreter asks for SystemFontID. Its header fields are
// always little-endian.
var systemFontData = []byte{
	0x00, 0x00, 0x80, 0x00, 0x08, 0x00, 0x06, 0x01, 0x09, 0x01, 0x0c, 0x01,
	0x0f, 0x01, 0x12, 0x01, 0x15, 0x01, 0x18, 0x01, 0x1b, 0x01, 0x1e, 0x01,
	0x21, 0x01, 0x26, 0x01, 0x29, 0x01, 0x2c, 0x01, 0x2f, 0x01, 0x32, 0x01,
	0x35, 0x01, 0x38, 0x01, 0x3b, 0x01, 0x3e, 0x01, 0x41, 0x01, 0x44, 0x01,
	0x47, 0x01, 0x4a, 0x01, 0x4d, 0x01, 0x50, 0x01, 0x53, 0x01, 0x56, 0x01,
	0x59, 0x01, 0x5c, 0x01, 0x5f, 0x01, 0x62, 0x01, 0x65, 0x01, 0x68, 0x01,
	0x71, 0x01, 0x7a, 0x01, 0x83, 0x01, 0x8c, 0x01, 0x95, 0x01, 0x9e, 0x01,
	0xa7, 0x01, 0xb0, 0x01, 0xb9, 0x01, 0xc2, 0x01, 0xc9, 0x01, 0xd3, 0x01,
	0xdc, 0x01, 0xe5, 0x01, 0xee, 0x01, 0xf7, 0x01, 0x00, 0x02, 0x09, 0x02,
	0x12, 0x02, 0x1b, 0x02, 0x24, 0x02, 0x2d, 0x02, 0x36, 0x02, 0x3f, 0x02,
	0x48, 0x02, 0x51, 0x02, 0x5a, 0x02, 0x63, 0x02, 0x6c, 0x02, 0x75, 0x02,
	0x7e, 0x02, 0x87, 0x02, 0x90, 0x02, 0x99, 0x02, 0xa2, 0x02, 0xab, 0x02,
	0xb4, 0x02, 0xbd, 0x02, 0xc6, 0x02, 0xcf, 0x02, 0xd8, 0x02, 0xe1, 0x02,
	0xea, 0x02, 0xf3, 0x02, 0xfc, 0x02, 0x05, 0x03, 0x0e, 0x03, 0x17, 0x03,
	0x20, 0x03, 0x29, 0x03, 0x32, 0x03, 0x3b, 0x03, 0x44, 0x03, 0x4d, 0x03,
	0x56, 0x03, 0x5f, 0x03, 0x68, 0x03, 0x71, 0x03, 0x7a, 0x03, 0x83, 0x03,
	0x8c, 0x03, 0x95, 0x03, 0x9e, 0x03, 0xa7, 0x03, 0xb0, 0x03, 0xb9, 0x03,
	0xc2, 0x03, 0xcb, 0x03, 0xd4, 0x03, 0xdd, 0x03, 0xe6, 0x03, 0xef, 0x03,
	0xf8, 0x03, 0x01, 0x04, 0x0a, 0x04, 0x13, 0x04, 0x1c, 0x04, 0x25, 0x04,
	0x2e, 0x04, 0x37, 0x04, 0x40, 0x04, 0x49, 0x04, 0x52, 0x04, 0x5b, 0x04,
	0x64, 0x04, 0x6d, 0x04, 0x76, 0x04, 0x7f, 0x04, 0x88, 0x04, 0x91, 0x04,
	0x9b, 0x04, 0xa4, 0x04, 0xad, 0x04, 0xb6, 0x04, 0xbf, 0x04, 0x02, 0x01,
	0x00, 0x02, 0x01, 0x00, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01,
	0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01,
	0x40, 0x13, 0x01, 0x00, 0x00, 0x00, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40,
	0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40,
	0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40,
	0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40,
	0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40,
	0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40, 0x02, 0x01, 0x40,
	0x04, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x07, 0x40,
	0x40, 0x40, 0x40, 0x00, 0x40, 0x00, 0x05, 0x07, 0x50, 0x50, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x06, 0x07, 0x28, 0x7c, 0x28, 0x28, 0x7c, 0x28, 0x00,
	0x04, 0x07, 0x20, 0x30, 0x40, 0x20, 0x10, 0x60, 0x20, 0x06, 0x07, 0x24,
	0x58, 0x34, 0x28, 0x40, 0x00, 0x00, 0x04, 0x07, 0x20, 0x30, 0x40, 0x20,
	0x40, 0x30, 0x20, 0x03, 0x07, 0x20, 0x20, 0x40, 0x00, 0x00, 0x00, 0x00,
	0x04, 0x07, 0x10, 0x20, 0x40, 0x40, 0x40, 0x20, 0x10, 0x04, 0x07, 0x40,
	0x20, 0x10, 0x10, 0x10, 0x20, 0x40, 0x06, 0x05, 0x10, 0x54, 0x38, 0x54,
	0x10, 0x04, 0x08, 0x00, 0x20, 0x20, 0x70, 0x20, 0x20, 0x00, 0x00, 0x03,
	0x07, 0x00, 0x00, 0x00, 0x00, 0x20, 0x20, 0x40, 0x05, 0x07, 0x00, 0x00,
	0x00, 0x70, 0x00, 0x00, 0x00, 0x04, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x60, 0x00, 0x05, 0x07, 0x08, 0x10, 0x10, 0x20, 0x20, 0x40, 0x00, 0x05,
	0x07, 0x30, 0x48, 0x58, 0x68, 0x48, 0x30, 0x00, 0x05, 0x07, 0x20, 0x60,
	0x20, 0x20, 0x20, 0x70, 0x00, 0x05, 0x07, 0x30, 0x48, 0x08, 0x30, 0x40,
	0x78, 0x00, 0x05, 0x07, 0x70, 0x08, 0x30, 0x08, 0x08, 0x70, 0x00, 0x05,
	0x07, 0x18, 0x28, 0x48, 0x78, 0x08, 0x08, 0x00, 0x05, 0x07, 0x78, 0x40,
	0x70, 0x08, 0x08, 0x70, 0x00, 0x05, 0x07, 0x30, 0x40, 0x70, 0x48, 0x48,
	0x30, 0x00, 0x05, 0x07, 0x78, 0x08, 0x10, 0x20, 0x20, 0x20, 0x00, 0x05,
	0x07, 0x30, 0x48, 0x30, 0x48, 0x48, 0x30, 0x00, 0x05, 0x07, 0x30, 0x48,
	0x48, 0x38, 0x08, 0x30, 0x00, 0x02, 0x07, 0x00, 0x40, 0x00, 0x00, 0x40,
	0x00, 0x00, 0x03, 0x07, 0x00, 0x20, 0x00, 0x00, 0x20, 0x20, 0x40, 0x04,
	0x07, 0x00, 0x10, 0x20, 0x40, 0x20, 0x10, 0x00, 0x04, 0x07, 0x00, 0x00,
	0x70, 0x00, 0x70, 0x00, 0x00, 0x04, 0x07, 0x00, 0x40, 0x20, 0x10, 0x20,
	0x40, 0x00, 0x04, 0x07, 0x20, 0x50, 0x10, 0x20, 0x20, 0x00, 0x20, 0x08,
	0x07, 0x1c, 0x2a, 0x55, 0x55, 0x2e, 0x18, 0x00, 0x05, 0x07, 0x30, 0x48,
	0x48, 0x78, 0x48, 0x48, 0x00, 0x05, 0x07, 0x70, 0x48, 0x70, 0x48, 0x48,
	0x70, 0x00, 0x05, 0x07, 0x30, 0x48, 0x40, 0x40, 0x48, 0x30, 0x00, 0x05,
	0x07, 0x70, 0x48, 0x48, 0x48, 0x48, 0x70, 0x00, 0x05, 0x07, 0x78, 0x40,
	0x70, 0x40, 0x40, 0x78, 0x00, 0x05, 0x07, 0x78, 0x40, 0x70, 0x40, 0x40,
	0x40, 0x00, 0x05, 0x07, 0x30, 0x48, 0x40, 0x58, 0x48, 0x30, 0x00, 0x05,
	0x07, 0x48, 0x48, 0x78, 0x48, 0x48, 0x48, 0x00, 0x04, 0x07, 0x70, 0x20,
	0x20, 0x20, 0x20, 0x70, 0x00, 0x05, 0x07, 0x08, 0x08, 0x08, 0x08, 0x48,
	0x30, 0x00, 0x05, 0x07, 0x48, 0x50, 0x60, 0x50, 0x48, 0x48, 0x00, 0x05,
	0x07, 0x40, 0x40, 0x40, 0x40, 0x40, 0x78, 0x00, 0x06, 0x07, 0x44, 0x6c,
	0x54, 0x44, 0x44, 0x44, 0x00, 0x06, 0x07, 0x44, 0x64, 0x54, 0x4c, 0x44,
	0x44, 0x00, 0x05, 0x07, 0x30, 0x48, 0x48, 0x48, 0x48, 0x30, 0x00, 0x05,
	0x07, 0x70, 0x48, 0x48, 0x70, 0x40, 0x40, 0x00, 0x06, 0x07, 0x30, 0x48,
	0x48, 0x48, 0x48, 0x38, 0x04, 0x05, 0x07, 0x70, 0x48, 0x48, 0x70, 0x48,
	0x48, 0x00, 0x05, 0x07, 0x30, 0x48, 0x20, 0x10, 0x48, 0x30, 0x00, 0x06,
	0x07, 0x7c, 0x10, 0x10, 0x10, 0x10, 0x10, 0x00, 0x05, 0x07, 0x48, 0x48,
	0x48, 0x48, 0x48, 0x30, 0x00, 0x06, 0x07, 0x44, 0x44, 0x44, 0x44, 0x28,
	0x10, 0x00, 0x06, 0x07, 0x44, 0x44, 0x44, 0x54, 0x54, 0x28, 0x00, 0x06,
	0x07, 0x44, 0x28, 0x10, 0x10, 0x28, 0x44, 0x00, 0x06, 0x07, 0x44, 0x44,
	0x28, 0x10, 0x10, 0x10, 0x00, 0x05, 0x07, 0x78, 0x08, 0x10, 0x20, 0x40,
	0x78, 0x00, 0x03, 0x07, 0x60, 0x40, 0x40, 0x40, 0x40, 0x40, 0x60, 0x05,
	0x07, 0x40, 0x20, 0x20, 0x10, 0x10, 0x08, 0x00, 0x03, 0x07, 0x60, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x60, 0x04, 0x07, 0x20, 0x50, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x04, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x70, 0x03,
	0x07, 0x40, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 0x07, 0x00, 0x30,
	0x08, 0x38, 0x48, 0x38, 0x00, 0x05, 0x07, 0x40, 0x40, 0x70, 0x48, 0x48,
	0x70, 0x00, 0x05, 0x07, 0x00, 0x30, 0x48, 0x40, 0x48, 0x30, 0x00, 0x05,
	0x07, 0x08, 0x08, 0x38, 0x48, 0x48, 0x38, 0x00, 0x05, 0x07, 0x00, 0x30,
	0x48, 0x78, 0x40, 0x38, 0x00, 0x05, 0x07, 0x18, 0x20, 0x70, 0x20, 0x20,
	0x20, 0x00, 0x05, 0x07, 0x00, 0x30, 0x48, 0x48, 0x38, 0x48, 0x30, 0x05,
	0x07, 0x40, 0x40, 0x50, 0x68, 0x48, 0x48, 0x00, 0x02, 0x07, 0x40, 0x00,
	0x40, 0x40, 0x40, 0x40, 0x00, 0x04, 0x07, 0x10, 0x00, 0x10, 0x10, 0x10,
	0x10, 0x60, 0x04, 0x07, 0x40, 0x50, 0x50, 0x60, 0x50, 0x50, 0x00, 0x02,
	0x07, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x00, 0x06, 0x07, 0x00, 0x68,
	0x54, 0x54, 0x54, 0x54, 0x00, 0x05, 0x07, 0x00, 0x50, 0x68, 0x48, 0x48,
	0x48, 0x00, 0x05, 0x07, 0x00, 0x30, 0x48, 0x48, 0x48, 0x30, 0x00, 0x05,
	0x07, 0x00, 0x70, 0x48, 0x48, 0x70, 0x40, 0x40, 0x05, 0x07, 0x00, 0x30,
	0x48, 0x48, 0x38, 0x08, 0x08, 0x05, 0x07, 0x00, 0x58, 0x60, 0x40, 0x40,
	0x40, 0x00, 0x05, 0x07, 0x00, 0x38, 0x40, 0x30, 0x08, 0x70, 0x00, 0x04,
	0x07, 0x20, 0x70, 0x20, 0x20, 0x20, 0x20, 0x00, 0x05, 0x07, 0x00, 0x48,
	0x48, 0x48, 0x48, 0x38, 0x00, 0x06, 0x07, 0x00, 0x44, 0x44, 0x44, 0x28,
	0x10, 0x00, 0x06, 0x07, 0x00, 0x54, 0x54, 0x54, 0x54, 0x28, 0x00, 0x05,
	0x07, 0x00, 0x48, 0x48, 0x30, 0x48, 0x48, 0x00, 0x05, 0x07, 0x00, 0x48,
	0x48, 0x48, 0x38, 0x08, 0x70, 0x05, 0x08, 0x00, 0x78, 0x08, 0x30, 0x40,
	0x78, 0x00, 0x00, 0x04, 0x07, 0x10, 0x20, 0x20, 0x40, 0x20, 0x20, 0x10,
	0x03, 0x07, 0x40, 0x40, 0x40, 0x00, 0x40, 0x40, 0x40, 0x04, 0x07, 0x40,
	0x20, 0x20, 0x10, 0x20, 0x20, 0x40, 0x05, 0x07, 0x28, 0x50, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x02, 0x01, 0x40,
}
