package search

// RecencyBuffer holds the most recently pushed items, newest first, and
// never grows past its capacity.
type RecencyBuffer[T any] struct {
	items    []T
	capacity int
}

// NewRecencyBuffer returns an empty buffer holding at most capacity items.
func NewRecencyBuffer[T any](capacity int) *RecencyBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RecencyBuffer[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push inserts v at the front, evicting the oldest item when full.
func (b *RecencyBuffer[T]) Push(v T) {
	if b.capacity == 0 {
		return
	}
	if len(b.items) == b.capacity {
		b.items = b.items[:len(b.items)-1]
	}
	b.items = append(b.items, v)
	copy(b.items[1:], b.items[:len(b.items)-1])
	b.items[0] = v
}

// Items returns a copy of the contents, newest first.
func (b *RecencyBuffer[T]) Items() []T {
	items := make([]T, len(b.items))
	copy(items, b.items)
	return items
}

// Len returns the number of items held.
func (b *RecencyBuffer[T]) Len() int {
	return len(b.items)
}

// Cap returns the buffer capacity.
func (b *RecencyBuffer[T]) Cap() int {
	return b.capacity
}
