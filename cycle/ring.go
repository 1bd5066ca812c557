package cycle

import "errors"

// ErrEmpty is returned when a sequence has no entries to read.
var ErrEmpty = errors.New("cycle: sequence has no entries")

// ring holds the state shared by Queue and Circlet: the entries, the
// cursor, the entry last read and whether any read has happened since
// the last reset.
type ring[T any] struct {
	entries []T
	index   int
	entry   T
	touched bool
}

func newRing[T any](entries []T) (ring[T], error) {
	if len(entries) == 0 {
		return ring[T]{}, ErrEmpty
	}
	r := ring[T]{entries: make([]T, len(entries))}
	copy(r.entries, entries)
	r.entry = r.entries[0]
	return r, nil
}

// advance reads the entry under the cursor and moves the cursor by step,
// wrapping at both ends.
func (r *ring[T]) advance(step int) (T, error) {
	n := len(r.entries)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	r.touched = true
	r.entry = r.entries[r.index]
	r.index = ((r.index+step)%n + n) % n
	return r.entry, nil
}

// Len returns the number of entries.
func (r *ring[T]) Len() int { return len(r.entries) }

// Index returns the cursor position.
func (r *ring[T]) Index() int { return r.index }

// Entry returns the entry returned by the last read, or the first entry
// when nothing has been read yet.
func (r *ring[T]) Entry() T { return r.entry }

// Entries returns a copy of the entries in order.
func (r *ring[T]) Entries() []T {
	out := make([]T, len(r.entries))
	copy(out, r.entries)
	return out
}

// Append adds entries at the end of the sequence.
// The cursor is left where it is.
func (r *ring[T]) Append(entries ...T) {
	if len(r.entries) == 0 && len(entries) > 0 {
		r.entry = entries[0]
	}
	r.entries = append(r.entries, entries...)
}

// Reset moves the cursor to the first entry and clears the touched state.
func (r *ring[T]) Reset() {
	r.index = 0
	r.touched = false
}

// IsEnd reports whether a read has happened and the cursor has wrapped
// back to the first entry.
func (r *ring[T]) IsEnd() bool { return r.touched && r.index == 0 }

// IsLast reports whether the cursor sits on the final entry.
func (r *ring[T]) IsLast() bool { return r.index == len(r.entries)-1 }

// IsSet reports whether the sequence holds any entries.
func (r *ring[T]) IsSet() bool { return len(r.entries) > 0 }
