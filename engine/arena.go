package engine

// Arena is index-addressable contiguous storage for one entity type
// Owned by a Session; systems mutate through At, render reads a Snapshot copy
type Arena[T any] struct {
	items []T
}

// NewArena creates an empty arena with preallocated capacity
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Add appends an item and returns its index
func (a *Arena[T]) Add(v T) int {
	a.items = append(a.items, v)
	return len(a.items) - 1
}

// Len returns the number of stored items
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// At returns a pointer to the item at index i, valid until the next Add or Compact
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// Each calls fn with a pointer to every item in index order
func (a *Arena[T]) Each(fn func(i int, v *T)) {
	for i := range a.items {
		fn(i, &a.items[i])
	}
}

// Compact keeps items for which keep returns true, preserving order, in one pass
// Returns the number of removed items
func (a *Arena[T]) Compact(keep func(v *T) bool) int {
	n := 0
	for i := range a.items {
		if keep(&a.items[i]) {
			a.items[n] = a.items[i]
			n++
		}
	}
	removed := len(a.items) - n

	// Zero the tail so dropped values don't linger in the backing array
	var zero T
	for i := n; i < len(a.items); i++ {
		a.items[i] = zero
	}
	a.items = a.items[:n]
	return removed
}

// Snapshot returns a copy safe to read after further mutation
func (a *Arena[T]) Snapshot() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Reset empties the arena, keeping capacity
func (a *Arena[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
}
