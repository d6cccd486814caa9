// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Mode is a named screen configuration.
type Mode struct {
	// Name is the unique identifier for this mode.
	Name string

	// Options is passed to NewScreen.
	Options Options
}

// globalRegistry holds the built-in modes.
var globalRegistry = newDefaultRegistry()

// Registry manages named screen modes.
//
// Example registration:
//
//	surface.Register("wide", surface.Options{Width: 640, Height: 200})
//
// Example usage:
//
//	s, err := surface.NewScreenByName("hires")
type Registry struct {
	mu    sync.RWMutex
	modes map[string]Options
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{
		modes: make(map[string]Options),
	}
}

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("lowres", Options{Width: 320, Height: 200, Scale: 1})
	r.Register("hires", Options{Width: 320, Height: 200, Scale: 2})
	r.Register("svga", Options{Width: 640, Height: 480, Scale: 1})
	return r
}

// Register adds a mode to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, opts Options) {
	globalRegistry.Register(name, opts)
}

// Unregister removes a mode from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Lookup returns the options of a mode in the global registry.
func Lookup(name string) (Options, bool) {
	return globalRegistry.Lookup(name)
}

// List returns all registered mode names in the global registry, sorted.
func List() []string {
	return globalRegistry.List()
}

// NewScreenByName creates a screen from a mode in the global registry.
func NewScreenByName(name string) (*Screen, error) {
	return globalRegistry.NewScreenByName(name)
}

// Register adds a mode to this registry.
func (r *Registry) Register(name string, opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.modes == nil {
		r.modes = make(map[string]Options)
	}
	r.modes[name] = opts
}

// Unregister removes a mode from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.modes, name)
}

// Lookup returns the options registered under name.
func (r *Registry) Lookup(name string) (Options, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opts, ok := r.modes[name]
	return opts, ok
}

// List returns all mode names sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modes))
	for name := range r.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modes returns every registered mode sorted by name.
func (r *Registry) Modes() []Mode {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]Mode, 0, len(names))
	for _, name := range names {
		if opts, ok := r.modes[name]; ok {
			modes = append(modes, Mode{Name: name, Options: opts})
		}
	}
	return modes
}

// NewScreenByName creates a screen from a registered mode.
func (r *Registry) NewScreenByName(name string) (*Screen, error) {
	opts, ok := r.Lookup(name)
	if !ok {
		return nil, &ModeNotFoundError{Name: name}
	}
	return NewScreen(opts), nil
}

// ErrModeNotFound is matched by errors.Is for unknown mode names.
var ErrModeNotFound = errors.New("surface: mode not found")

// ModeNotFoundError is returned when a requested mode is not registered.
type ModeNotFoundError struct {
	Name string
}

func (e *ModeNotFoundError) Error() string {
	return "surface: mode not found: " + e.Name
}

// Is reports whether target is ErrModeNotFound.
func (e *ModeNotFoundError) Is(target error) bool {
	return target == ErrModeNotFound
}
