// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"fmt"
	"sort"
	"sync"
)

// Manager is a thread-safe in-memory Provider with per-resource lock
// counts.
type Manager struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

type entry struct {
	data  []byte
	locks int
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		entries: make(map[Key]*entry),
	}
}

// Add registers data under kind and id, replacing any previous resource
// that is not currently locked.
func (m *Manager) Add(kind Kind, id ID, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Key{Kind: kind, ID: id}
	if e, ok := m.entries[key]; ok && e.locks > 0 {
		return fmt.Errorf("resource: %s is locked %d times", key, e.locks)
	}
	m.entries[key] = &entry{data: data}
	return nil
}

// Exists implements Provider.
func (m *Manager) Exists(kind Kind, id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.entries[Key{Kind: kind, ID: id}]
	return ok
}

// Lock implements Provider.
func (m *Manager) Lock(kind Kind, id ID) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Key{Kind: kind, ID: id}
	e, ok := m.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	e.locks++
	return &Handle{Key: key, Data: e.data}, nil
}

// Unlock implements Provider.
func (m *Manager) Unlock(h *Handle) error {
	if h == nil {
		return ErrNotLocked
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[h.Key]
	if !ok || e.locks == 0 {
		return fmt.Errorf("%w: %s", ErrNotLocked, h.Key)
	}
	e.locks--
	return nil
}

// LockCount returns the number of outstanding locks on a resource.
func (m *Manager) LockCount(kind Kind, id ID) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[Key{Kind: kind, ID: id}]; ok {
		return e.locks
	}
	return 0
}

// List returns the ids of all resources of the given kind in ascending
// order.
func (m *Manager) List(kind Kind) []ID {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []ID
	for key := range m.entries {
		if key.Kind == kind {
			ids = append(ids, key.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
