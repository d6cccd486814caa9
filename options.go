// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"log/slog"

	"golang.org/x/text/encoding/charmap"
)

// Option configures a Font during creation.
//
// Example:
//
//	f, err := bitfont.New(resMan, screen, 4,
//	    bitfont.WithVersion(bitfont.SCI21),
//	    bitfont.WithLogger(logger))
type Option func(*options)

// options holds optional configuration for Font creation.
type options struct {
	version   Version
	bigEndian bool
	logger    *slog.Logger
	charmap   *charmap.Charmap
}

// defaultOptions returns the default font options.
func defaultOptions() options {
	return options{
		version: SCI11,
		charmap: charmap.CodePage437,
	}
}

// WithVersion selects the interpreter generation. Modern versions accept
// SystemFontID. The default is SCI11.
func WithVersion(v Version) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithBigEndian marks resources as coming from a big-endian platform
// build. Header fields of leased resources are then read big-endian when
// the version is modern. The embedded system font is unaffected.
func WithBigEndian(bigEndian bool) Option {
	return func(o *options) {
		o.bigEndian = bigEndian
	}
}

// WithLogger sets a logger for this font, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCharmap sets the character map used to turn runes into glyph
// indices in StringWidth, DrawString and Face. The default is Code Page
// 437. With nil, runes below 256 map to the glyph of the same number.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(o *options) {
		o.charmap = cm
	}
}
