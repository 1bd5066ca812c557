package cycle

// Circlet is a circular sequence that can be read in both directions.
type Circlet[T any] struct {
	ring[T]
}

// NewCirclet returns a Circlet over a copy of entries.
// It returns ErrEmpty when entries is empty.
func NewCirclet[T any](entries ...T) (*Circlet[T], error) {
	r, err := newRing(entries)
	if err != nil {
		return nil, err
	}
	return &Circlet[T]{ring: r}, nil
}

// Next returns the entry under the cursor and advances the cursor,
// wrapping to the first entry after the last one.
func (c *Circlet[T]) Next() (T, error) {
	return c.advance(1)
}

// Fore returns the entry under the cursor and steps the cursor back,
// wrapping to the last entry from the first one.
func (c *Circlet[T]) Fore() (T, error) {
	return c.advance(-1)
}
