// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"errors"
	"fmt"

	"github.com/gogpu/bitfont/resource"
)

// Sentinel errors for font construction.
var (
	// ErrFontNotFound is returned when the font resource cannot be locked.
	ErrFontNotFound = errors.New("bitfont: font resource not found")

	// ErrInvalidFontID is returned when SystemFontID is requested from a
	// legacy interpreter, which has no embedded font.
	ErrInvalidFontID = errors.New("bitfont: invalid font id")

	// ErrMalformedFont is returned when the header, the offset table or a
	// glyph record lies outside the resource data.
	ErrMalformedFont = errors.New("bitfont: malformed font resource")

	// ErrUnknownVersion is returned by ParseVersion for names it does not
	// recognize.
	ErrUnknownVersion = errors.New("bitfont: unknown version")
)

// NotFoundError is returned when a font resource cannot be locked.
// ID is the id of the last lookup, after any compatibility masking.
type NotFoundError struct {
	ID  resource.ID
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bitfont: font resource %d not found: %v", e.ID, e.Err)
}

// Unwrap returns both ErrFontNotFound and the provider error.
func (e *NotFoundError) Unwrap() []error {
	return []error{ErrFontNotFound, e.Err}
}

// MalformedError describes an out of range field in a font resource.
// Glyph is -1 for header fields.
type MalformedError struct {
	Font  string
	Glyph int
	Err   error
}

func (e *MalformedError) Error() string {
	if e.Glyph < 0 {
		return fmt.Sprintf("bitfont: %s: malformed header: %v", e.Font, e.Err)
	}
	return fmt.Sprintf("bitfont: %s: malformed glyph %d: %v", e.Font, e.Glyph, e.Err)
}

// Unwrap returns both ErrMalformedFont and the underlying range error.
func (e *MalformedError) Unwrap() []error {
	return []error{ErrMalformedFont, e.Err}
}
