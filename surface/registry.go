// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// CanvasFactory creates a new Canvas with the given options.
// Implementations should validate options and return descriptive errors.
type CanvasFactory func(opts Options) (Canvas, error)

// Backend describes a registered canvas backend.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Built-in priorities:
	//   - 20: raster (pixel output)
	//   - 10: svg (vector output)
	//   - 0: recording (no output, captures commands)
	Priority int

	// Factory creates canvas instances.
	Factory CanvasFactory

	// Available reports if the backend can be used.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry manages registered canvas backends.
//
// Backends register themselves from init functions, so importing a
// backend package is enough to make it selectable:
//
//	func init() {
//	    surface.RegisterBackend("raster", 20, newRasterCanvas, nil)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Backend
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via RegisterBackend and NewCanvas.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Backend)}
}

// RegisterBackend adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterBackend(name string, priority int, factory CanvasFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// UnregisterBackend removes a backend from the global registry.
func UnregisterBackend(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns all registered backend names sorted by priority
// (highest first).
func Backends() []string {
	return globalRegistry.List()
}

// AvailableBackends returns names of available backends sorted by priority.
func AvailableBackends() []string {
	return globalRegistry.Available()
}

// NewCanvas creates a canvas using the best available backend.
func NewCanvas(opts Options) (Canvas, error) {
	return globalRegistry.NewCanvas(opts)
}

// NewCanvasByName creates a canvas using a specific named backend.
func NewCanvasByName(name string, opts Options) (Canvas, error) {
	return globalRegistry.NewCanvasByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory CanvasFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Backend)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the named backend's registration.
func (r *Registry) Get(name string) (*Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// NewCanvas creates a canvas using the best available backend, trying
// lower priorities when a factory fails.
func (r *Registry) NewCanvas(opts Options) (Canvas, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range available {
		c, err := r.NewCanvasByName(name, opts)
		if err == nil {
			return c, nil
		}
		Logger().Warn("surface: backend failed, trying next", "backend", name, "err", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewCanvasByName creates a canvas using a specific backend.
func (r *Registry) NewCanvasByName(name string, opts Options) (Canvas, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("surface: %s: invalid size %dx%d", name, opts.Width, opts.Height)
	}

	c, err := entry.Factory(opts)
	if err != nil {
		return nil, fmt.Errorf("surface: %s: %w", name, err)
	}
	Logger().Debug("surface: canvas created", "backend", name, "width", opts.Width, "height", opts.Height)
	return c, nil
}

// sortedNames returns backend names sorted by priority (highest first),
// then by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*Backend, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no canvas backends are
	// registered or available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in recording backend.
func init() {
	RegisterBackend("recording", 0, func(opts Options) (Canvas, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	}, nil)
}
