// File: core/vector/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

// Iterator is a random-access cursor into a Vector. It stays usable until
// the next capacity-changing mutation; nothing tracks invalidation.
type Iterator[T any] struct {
	vec *Vector[T]
	off int
}

// Offset returns the distance from Begin().
func (it Iterator[T]) Offset() int {
	return it.off
}

// Ref returns a pointer to the element under the cursor.
func (it Iterator[T]) Ref() *T {
	return it.vec.Index(it.off)
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Set overwrites the element under the cursor.
func (it Iterator[T]) Set(value T) {
	*it.Ref() = value
}

// Next returns the cursor one element forward.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the cursor one element back.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add moves the cursor by n elements.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{vec: it.vec, off: it.off + n}
}

// Distance returns other.Offset() - it.Offset().
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.off - it.off
}

// Equal reports whether both cursors point at the same slot of the same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.off == other.off
}

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.off < other.off
}
