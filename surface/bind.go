// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "sync"

// DefaultID is the identifier tried when a requested canvas is unknown.
const DefaultID = "canvas"

// Bindings maps canvas identifiers to canvases.
type Bindings struct {
	mu       sync.RWMutex
	canvases map[string]Canvas
}

var globalBindings = &Bindings{}

// NewBindings creates an empty binding table.
// Most code should use the package-level Bind and Resolve.
func NewBindings() *Bindings {
	return &Bindings{canvases: make(map[string]Canvas)}
}

// Bind publishes c under id in the global table, replacing any previous
// canvas. Binding nil removes id.
func Bind(id string, c Canvas) { globalBindings.Bind(id, c) }

// Unbind removes id from the global table.
func Unbind(id string) { globalBindings.Unbind(id) }

// Lookup returns the canvas bound to id in the global table.
func Lookup(id string) (Canvas, bool) { return globalBindings.Lookup(id) }

// Resolve looks id up in the global table, falling back to DefaultID.
// It returns the identifier that matched.
func Resolve(id string) (Canvas, string, bool) { return globalBindings.Resolve(id) }

// Bind publishes c under id.
func (b *Bindings) Bind(id string, c Canvas) {
	if c == nil {
		b.Unbind(id)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.canvases == nil {
		b.canvases = make(map[string]Canvas)
	}
	b.canvases[id] = c
	Logger().Debug("surface: canvas bound", "id", id, "width", c.Width(), "height", c.Height())
}

// Unbind removes id.
func (b *Bindings) Unbind(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.canvases, id)
}

// Lookup returns the canvas bound to id.
func (b *Bindings) Lookup(id string) (Canvas, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	c, ok := b.canvases[id]
	return c, ok
}

// Resolve looks up id, then DefaultID.
func (b *Bindings) Resolve(id string) (Canvas, string, bool) {
	if c, ok := b.Lookup(id); ok {
		return c, id, true
	}
	if id != DefaultID {
		if c, ok := b.Lookup(DefaultID); ok {
			return c, DefaultID, true
		}
	}
	return nil, "", false
}

// IDs returns the bound identifiers in no particular order.
func (b *Bindings) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.canvases))
	for id := range b.canvases {
		ids = append(ids, id)
	}
	return ids
}
