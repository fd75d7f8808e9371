// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
//
// Read/write contract of a growable random-access sequence.

package api

// Sequence is the container surface consumed by calling code.
// Implementations are single-threaded; callers serialize access externally.
type Sequence[T any] interface {
	// Size returns the logical element count.
	Size() int
	// Capacity returns the allocated slot count, always >= Size.
	Capacity() int
	// IsEmpty reports Size() == 0.
	IsEmpty() bool

	// At returns the element at index or an ErrOutOfRange error.
	At(index int) (*T, error)

	PushBack(v T)
	PopBack()
	Resize(n int)
	Reserve(n int)
	Clear()
}
