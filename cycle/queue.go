package cycle

// Queue is a forward-only circular sequence.
//
// The zero value is an empty Queue; reading from it returns ErrEmpty
// until entries are appended.
type Queue[T any] struct {
	ring[T]
}

// NewQueue returns a Queue over a copy of entries.
// It returns ErrEmpty when entries is empty.
func NewQueue[T any](entries ...T) (*Queue[T], error) {
	r, err := newRing(entries)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{ring: r}, nil
}

// Next returns the entry under the cursor and advances the cursor,
// wrapping to the first entry after the last one.
func (q *Queue[T]) Next() (T, error) {
	return q.advance(1)
}
