// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"errors"
	"fmt"
)

// Sentinel errors for resource lookups.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("resource: not found")

	// ErrNotLocked is returned by Unlock for a handle that holds no lock.
	ErrNotLocked = errors.New("resource: not locked")
)

// Kind identifies the type of a resource. Values follow the numbering of
// the original resource map.
type Kind uint8

// Resource kinds.
const (
	KindView Kind = iota
	KindPic
	KindScript
	KindText
	KindSound
	KindMemory
	KindVocab
	KindFont
	KindCursor
	KindPatch
)

var kindNames = [...]string{
	KindView:   "view",
	KindPic:    "pic",
	KindScript: "script",
	KindText:   "text",
	KindSound:  "sound",
	KindMemory: "memory",
	KindVocab:  "vocab",
	KindFont:   "font",
	KindCursor: "cursor",
	KindPatch:  "patch",
}

// String returns the lower-case name used in patch file names.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind%d", uint8(k))
}

// ID is a resource number.
type ID int

// Key names one resource.
type Key struct {
	Kind Kind
	ID   ID
}

// String formats the key like a patch file name, e.g. "font.004".
func (k Key) String() string {
	return fmt.Sprintf("%s.%03d", k.Kind, k.ID)
}

// Handle is a locked resource. Data must not be modified.
type Handle struct {
	Key  Key
	Data []byte
}

// Name returns a human-readable name for diagnostics.
func (h *Handle) Name() string {
	return h.Key.String()
}

// Len returns the size of the resource data in bytes.
func (h *Handle) Len() int {
	return len(h.Data)
}

// Provider looks up and locks resources.
type Provider interface {
	// Exists reports whether the resource is known, without locking it.
	Exists(kind Kind, id ID) bool

	// Lock returns a handle to the resource, or an error wrapping
	// ErrNotFound.
	Lock(kind Kind, id ID) (*Handle, error)

	// Unlock releases a handle obtained from Lock.
	Unlock(h *Handle) error
}
