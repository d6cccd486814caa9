// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"fmt"
	"strings"
)

// Version identifies the interpreter generation a font is loaded for.
type Version uint8

// Interpreter generations. SCI2 and later are "modern": they ship the
// embedded system font and may carry big-endian resources.
const (
	SCI0 Version = iota
	SCI01
	SCI1
	SCI11
	SCI2
	SCI21
	SCI3
)

var versionNames = [...]string{
	SCI0:  "SCI0",
	SCI01: "SCI01",
	SCI1:  "SCI1",
	SCI11: "SCI1.1",
	SCI2:  "SCI2",
	SCI21: "SCI2.1",
	SCI3:  "SCI3",
}

// String returns the conventional name of the version.
func (v Version) String() string {
	if int(v) < len(versionNames) {
		return versionNames[v]
	}
	return fmt.Sprintf("Version(%d)", uint8(v))
}

// Modern reports whether v is SCI2 or later.
func (v Version) Modern() bool {
	return v >= SCI2
}

// ParseVersion parses a version name as returned by String. The dot may be
// omitted ("SCI11"), and case is ignored.
func ParseVersion(s string) (Version, error) {
	for v, name := range versionNames {
		if equalFoldNoDot(s, name) {
			return Version(v), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVersion, s)
}

func equalFoldNoDot(a, b string) bool {
	return strings.EqualFold(strings.ReplaceAll(a, ".", ""), strings.ReplaceAll(b, ".", ""))
}
