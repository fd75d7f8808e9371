// File: core/buffer/array_ptr.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"fmt"

	"github.com/momentics/hioload-vec/api"
)

// noCopy makes go vet flag value copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ArrayPtr is the sole owner of a block of T, or empty.
type ArrayPtr[T any] struct {
	_   noCopy
	raw []T
}

// New allocates n zero-valued elements. For n == 0 the handle stays empty.
func New[T any](n int) ArrayPtr[T] {
	if n < 0 {
		panic(fmt.Sprintf("buffer: negative allocation size %d", n))
	}
	if n == 0 {
		return ArrayPtr[T]{}
	}
	return ArrayPtr[T]{raw: make([]T, n)}
}

// FromRaw attaches an externally allocated block. The caller gives up the
// block: it must not keep using raw once attached.
func FromRaw[T any](raw []T) ArrayPtr[T] {
	if len(raw) == 0 {
		return ArrayPtr[T]{}
	}
	return ArrayPtr[T]{raw: raw[:len(raw):len(raw)]}
}

// Release returns the block and leaves the handle empty. No memory is freed.
func (p *ArrayPtr[T]) Release() []T {
	raw := p.raw
	p.raw = nil
	return raw
}

// Attach drops the current block and takes ownership of raw.
func (p *ArrayPtr[T]) Attach(raw []T) {
	if len(raw) == 0 {
		p.raw = nil
		return
	}
	p.raw = raw[:len(raw):len(raw)]
}

// Move transfers the block into a new handle; p becomes empty.
func (p *ArrayPtr[T]) Move() ArrayPtr[T] {
	return ArrayPtr[T]{raw: p.Release()}
}

// MoveFrom is move assignment: p drops its block and takes other's.
func (p *ArrayPtr[T]) MoveFrom(other *ArrayPtr[T]) {
	if p == other {
		return
	}
	p.raw = other.Release()
}

// At returns a pointer to element i. Only the allocation length is checked,
// by the Go runtime; callers own logical bounds.
func (p *ArrayPtr[T]) At(i int) *T {
	return &p.raw[i]
}

// Get returns the owned block, nil when empty.
func (p *ArrayPtr[T]) Get() []T {
	return p.raw
}

// Len returns the allocation length.
func (p *ArrayPtr[T]) Len() int {
	return len(p.raw)
}

// Valid reports whether a block is owned.
func (p *ArrayPtr[T]) Valid() bool {
	return p.raw != nil
}

// Swap exchanges blocks with other in O(1).
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.raw, other.raw = other.raw, p.raw
}

// Reset drops the owned block, if any. Later calls are no-ops.
func (p *ArrayPtr[T]) Reset() {
	p.raw = nil
}

var _ api.Owner[int] = (*ArrayPtr[int])(nil)
