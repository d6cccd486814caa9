// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// ErrBadPatch is returned for patch files with a malformed header.
var ErrBadPatch = errors.New("resource: bad patch file")

// patchExtensions maps the numbered naming scheme ("4.fon") to kinds.
var patchExtensions = map[string]Kind{
	"v56": KindView,
	"p56": KindPic,
	"scr": KindScript,
	"tex": KindText,
	"snd": KindSound,
	"voc": KindVocab,
	"fon": KindFont,
	"cur": KindCursor,
	"pat": KindPatch,
}

// ParsePatchName recognizes both patch naming schemes, "font.004" and
// "4.fon". ok is false for any other file name.
func ParsePatchName(name string) (key Key, ok bool) {
	base, ext, found := strings.Cut(strings.ToLower(name), ".")
	if !found || base == "" || ext == "" {
		return Key{}, false
	}

	if kind, known := patchExtensions[ext]; known {
		n, err := strconv.Atoi(base)
		if err != nil || n < 0 {
			return Key{}, false
		}
		return Key{Kind: kind, ID: ID(n)}, true
	}

	for kind, kindName := range kindNames {
		if kindName != base {
			continue
		}
		n, err := strconv.Atoi(ext)
		if err != nil || n < 0 {
			return Key{}, false
		}
		return Key{Kind: Kind(kind), ID: ID(n)}, true
	}
	return Key{}, false
}

// DecodePatch strips the patch header from data. The first byte holds the
// resource kind with the high bit set, the second the size of any extra
// header that follows.
func DecodePatch(kind Kind, data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadPatch, len(data))
	}
	if got := Kind(data[0] & 0x7f); got != kind {
		return nil, fmt.Errorf("%w: header says %s, expected %s", ErrBadPatch, got, kind)
	}
	start := 2 + int(data[1])
	if start > len(data) {
		return nil, fmt.Errorf("%w: header size %d exceeds file size %d", ErrBadPatch, data[1], len(data))
	}
	return data[start:], nil
}

// LoadPatches reads every patch file in the root of fsys into m and
// returns the number of resources added. Files with other names are
// ignored.
func LoadPatches(fsys fs.FS, m *Manager) (int, error) {
	dirents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, fmt.Errorf("resource: reading patch directory: %w", err)
	}

	added := 0
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		key, ok := ParsePatchName(de.Name())
		if !ok {
			continue
		}

		raw, err := fs.ReadFile(fsys, de.Name())
		if err != nil {
			return added, fmt.Errorf("resource: reading %s: %w", de.Name(), err)
		}
		data, err := DecodePatch(key.Kind, raw)
		if err != nil {
			return added, fmt.Errorf("resource: %s: %w", de.Name(), err)
		}
		if err := m.Add(key.Kind, key.ID, data); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// EncodePatch prepends a patch header to data.
func EncodePatch(kind Kind, data []byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, 0x80|byte(kind), 0)
	return append(out, data...)
}
