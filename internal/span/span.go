// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package span provides a bounds-checked, read-only view over a byte slice.
//
// Every read validates its offset against the length of the view, so a
// malformed resource produces an error instead of a panic.
package span

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read or slice falls outside the view.
var ErrOutOfBounds = errors.New("span: out of bounds")

// RangeError describes a failed access.
type RangeError struct {
	Name   string
	Offset int
	Need   int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("span: %s: reading %d bytes at offset %d exceeds length %d",
		e.Name, e.Need, e.Offset, e.Len)
}

// Unwrap allows errors.Is(err, ErrOutOfBounds).
func (e *RangeError) Unwrap() error {
	return ErrOutOfBounds
}

// Span is an immutable view over a byte slice.
// The zero value is an empty, valid span.
type Span struct {
	data []byte
	name string
}

// New creates a span over data. The name is used in error messages.
func New(data []byte, name string) Span {
	return Span{data: data, name: name}
}

// Len returns the number of bytes in the view.
func (s Span) Len() int {
	return len(s.data)
}

// Name returns the name given at creation.
func (s Span) Name() string {
	return s.name
}

// Empty reports whether the span has no bytes.
func (s Span) Empty() bool {
	return len(s.data) == 0
}

// Bytes returns the underlying bytes. The capacity is capped at the length
// so appending never writes into the resource. Callers must not modify
// the returned slice.
func (s Span) Bytes() []byte {
	return s.data[:len(s.data):len(s.data)]
}

func (s Span) check(off, n int) error {
	if off < 0 || n < 0 || off > len(s.data)-n {
		return &RangeError{Name: s.name, Offset: off, Need: n, Len: len(s.data)}
	}
	return nil
}

// Uint8At reads the byte at off.
func (s Span) Uint8At(off int) (uint8, error) {
	if err := s.check(off, 1); err != nil {
		return 0, err
	}
	return s.data[off], nil
}

// Uint16LEAt reads a little-endian uint16 at off.
func (s Span) Uint16LEAt(off int) (uint16, error) {
	if err := s.check(off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(s.data[off:]), nil
}

// Uint16BEAt reads a big-endian uint16 at off.
func (s Span) Uint16BEAt(off int) (uint16, error) {
	if err := s.check(off, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(s.data[off:]), nil
}

// Sub returns the view of n bytes starting at off.
func (s Span) Sub(off, n int) (Span, error) {
	if err := s.check(off, n); err != nil {
		return Span{}, err
	}
	return Span{data: s.data[off : off+n : off+n], name: s.name}, nil
}

// Clamp returns the view of at most n bytes starting at off. Parts of the
// requested range that fall outside the span are dropped; a range that
// lies entirely outside yields an empty span.
func (s Span) Clamp(off, n int) Span {
	if off < 0 {
		n += off
		off = 0
	}
	if n <= 0 || off >= len(s.data) {
		return Span{name: s.name}
	}
	if rest := len(s.data) - off; n > rest {
		n = rest
	}
	return Span{data: s.data[off : off+n : off+n], name: s.name}
}
