// File: core/vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"fmt"
	"iter"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/core/buffer"
)

// Vector is a growable sequence of T. The zero value is an empty vector
// ready to use. Copy with Clone/Assign and transfer with Move/MoveAssign;
// never copy a Vector by value.
type Vector[T any] struct {
	array    buffer.ArrayPtr[T]
	size     int
	capacity int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector of n zero values.
func WithSize[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.array.Attach(allocate[T](n))
	v.size, v.capacity = n, n
	return v
}

// Filled returns a vector of n copies of value.
func Filled[T any](n int, value T) *Vector[T] {
	v := WithSize[T](n)
	data := v.array.Get()
	for i := range data {
		data[i] = value
	}
	return v
}

// FilledMove relocates *src into a vector of n elements. The value lands in
// the last slot; every other slot holds the zero value. *src is zeroed.
func FilledMove[T any](n int, src *T) *Vector[T] {
	v := WithSize[T](n)
	if n > 0 {
		*v.array.At(n - 1) = *src
	}
	var zero T
	*src = zero
	return v
}

// Of returns a vector holding a copy of values in order.
func Of[T any](values ...T) *Vector[T] {
	v := WithSize[T](len(values))
	copy(v.array.Get(), values)
	return v
}

// WithReserve returns an empty vector with the token's capacity allocated.
func WithReserve[T any](r ReserveProxy) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(r.Capacity())
	return v
}

func allocate[T any](n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	p := buffer.New[T](n)
	return p.Release()
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Index returns a pointer to element i without a size check.
// i >= Size() is a contract violation.
func (v *Vector[T]) Index(i int) *T {
	if debugChecks && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, v.size))
	}
	return v.array.At(i)
}

// At returns a pointer to element i, or an api.ErrOutOfRange error when
// i is not in [0, Size()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, api.OutOfRange(i, v.size)
	}
	return v.array.At(i), nil
}

// Get is the read-only form of At.
func (v *Vector[T]) Get(i int) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Clear sets the size to zero. Capacity and stored slots are untouched.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows the allocation to exactly n slots when n exceeds the current
// capacity, copying the elements over. The size is unchanged.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	fresh := buffer.New[T](n)
	copy(fresh.Get(), v.array.Get()[:v.size])
	v.array.Swap(&fresh)
	fresh.Reset()
	v.capacity = n
}

// Resize changes the size to n. Growing exposes zero values; shrinking keeps
// the dropped elements as placeholders.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	switch {
	case n == 0:
		v.Clear()
	case n <= v.size:
		v.size = n
	case n <= v.capacity:
		// The whole tail up to capacity is reset, not just [size, n).
		clear(v.array.Get()[v.size:v.capacity])
		v.size = n
	default:
		v.grow(max(n, 2*v.capacity))
		v.size = n
	}
}

// grow relocates the elements into a block of newCap zero values.
func (v *Vector[T]) grow(newCap int) {
	fresh := buffer.New[T](newCap)
	old := v.array.Get()[:v.size]
	copy(fresh.Get(), old)
	clear(old)
	v.array.MoveFrom(&fresh)
	v.capacity = newCap
}

// PushBack appends a copy of value. Amortized O(1).
func (v *Vector[T]) PushBack(value T) {
	v.Resize(v.size + 1)
	*v.array.At(v.size - 1) = value
}

// PushBackMove appends *value and zeroes the source.
func (v *Vector[T]) PushBackMove(value *T) {
	v.Resize(v.size + 1)
	*v.array.At(v.size - 1) = *value
	var zero T
	*value = zero
}

// PopBack drops the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
}

// Insert places value before pos and returns an iterator to it. pos must be
// in [Begin(), End()] of v. Insert may reallocate: iterators taken before the
// call are stale afterwards, including pos.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	off := v.checkPos(pos, true)
	*v.openSlot(off) = value
	return Iterator[T]{vec: v, off: off}
}

// InsertMove is Insert for a relocated value; *value is zeroed.
func (v *Vector[T]) InsertMove(pos Iterator[T], value *T) Iterator[T] {
	off := v.checkPos(pos, true)
	*v.openSlot(off) = *value
	var zero T
	*value = zero
	return Iterator[T]{vec: v, off: off}
}

// InsertAt is the index form of Insert and returns i.
func (v *Vector[T]) InsertAt(i int, value T) int {
	return v.Insert(Iterator[T]{vec: v, off: i}, value).off
}

// openSlot grows by one and shifts [off, oldEnd) right, last element first,
// so no source slot is overwritten before it is read.
func (v *Vector[T]) openSlot(off int) *T {
	v.Resize(v.size + 1)
	data := v.array.Get()
	for i := v.size - 1; i > off; i-- {
		data[i] = data[i-1]
	}
	return &data[off]
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place (End() if pos was the last one). pos must be in
// [Begin(), End()).
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	off := v.checkPos(pos, false)
	data := v.array.Get()
	for i := off; i+1 < v.size; i++ {
		data[i] = data[i+1]
	}
	var zero T
	data[v.size-1] = zero
	v.size--
	return Iterator[T]{vec: v, off: off}
}

// EraseAt is the index form of Erase and returns i.
func (v *Vector[T]) EraseAt(i int) int {
	return v.Erase(Iterator[T]{vec: v, off: i}).off
}

func (v *Vector[T]) checkPos(pos Iterator[T], allowEnd bool) int {
	if pos.vec != v {
		panic("vector: iterator belongs to another vector")
	}
	limit := v.size
	if !allowEnd {
		limit--
	}
	if pos.off < 0 || pos.off > limit {
		panic(fmt.Sprintf("vector: position %d outside [0,%d]", pos.off, limit))
	}
	return pos.off
}

// Swap exchanges contents with other in O(1) without allocating.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.array.Swap(&other.array)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Clone returns a deep copy whose capacity equals v.Size().
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	out.Assign(v)
	return out
}

// Assign replaces v's contents with a deep copy of src. The capacity after
// the call equals src.Size().
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	fresh := buffer.New[T](src.size)
	copy(fresh.Get(), src.Slice())
	v.array.Swap(&fresh)
	fresh.Reset()
	v.size, v.capacity = src.size, src.size
}

// Move transfers v's storage into a new vector and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	out.MoveAssign(v)
	return out
}

// MoveAssign drops v's storage and takes src's; src is left empty.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	v.array.MoveFrom(&src.array)
	v.size, v.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v}
}

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, off: v.size}
}

// Slice returns a view of [0, Size()). The view shares storage with v and is
// valid until the next capacity change.
func (v *Vector[T]) Slice() []T {
	return v.array.Get()[:v.size]
}

// All yields index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.Slice() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

// String formats the logical elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

var _ api.Sequence[int] = (*Vector[int])(nil)
