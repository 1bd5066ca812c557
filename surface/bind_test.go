// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "testing"

func TestBindingsResolve(t *testing.T) {
	b := NewBindings()
	def := NewRecorder(1, 1)
	other := NewRecorder(2, 2)

	if _, _, ok := b.Resolve("x"); ok {
		t.Fatal("Resolve() on empty table should fail")
	}

	b.Bind(DefaultID, def)
	b.Bind("other", other)

	tests := []struct {
		id     string
		want   Canvas
		wantID string
	}{
		{"other", other, "other"},
		{DefaultID, def, DefaultID},
		{"missing", def, DefaultID},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, id, ok := b.Resolve(tt.id)
			if !ok || c != tt.want || id != tt.wantID {
				t.Errorf("Resolve(%q) = %v, %q, %v, want %v, %q", tt.id, c, id, ok, tt.want, tt.wantID)
			}
		})
	}
}

func TestBindingsBindNilUnbinds(t *testing.T) {
	b := NewBindings()
	b.Bind("a", NewRecorder(1, 1))
	b.Bind("a", nil)
	if _, ok := b.Lookup("a"); ok {
		t.Error("Bind(nil) should remove the binding")
	}
	if ids := b.IDs(); len(ids) != 0 {
		t.Errorf("IDs() = %v, want empty", ids)
	}
}

func TestGlobalBindings(t *testing.T) {
	c := NewRecorder(1, 1)
	Bind("global-test", c)
	defer Unbind("global-test")

	got, ok := Lookup("global-test")
	if !ok || got != c {
		t.Errorf("Lookup() = %v, %v, want bound recorder", got, ok)
	}
}
