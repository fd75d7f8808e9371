package vector_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/core/vector"
)

func requireElems[T any](t *testing.T, v *vector.Vector[T], want ...T) {
	t.Helper()
	if diff := cmp.Diff(want, v.Slice(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestVector_ZeroValueIsEmpty(t *testing.T) {
	var v vector.Vector[int]
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 0, v.Capacity())
	assert.True(t, v.IsEmpty())
	assert.True(t, v.Begin().Equal(v.End()))

	v.PushBack(1)
	requireElems(t, &v, 1)
}

func TestVector_Constructors(t *testing.T) {
	v := vector.WithSize[int](3)
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 3, v.Capacity())
	requireElems(t, v, 0, 0, 0)

	f := vector.Filled(3, "x")
	requireElems(t, f, "x", "x", "x")

	empty := vector.WithSize[int](0)
	assert.Equal(t, 0, empty.Capacity())
	assert.True(t, empty.IsEmpty())

	src := []int{1, 2, 3}
	l := vector.Of(src...)
	src[0] = 100
	requireElems(t, l, 1, 2, 3)
	assert.Equal(t, 3, l.Capacity())
}

func TestVector_FilledMoveRelocatesOnce(t *testing.T) {
	s := "payload"
	v := vector.FilledMove(3, &s)
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, "", s)
	requireElems(t, v, "", "", "payload")

	z := "x"
	e := vector.FilledMove(0, &z)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "", z)
}

func TestVector_WithReserve(t *testing.T) {
	v := vector.WithReserve[int](vector.Reserve(5))
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 5, v.Capacity())
	assert.Equal(t, 5, vector.Reserve(5).Capacity())
	assert.Panics(t, func() { vector.Reserve(-1) })

	for i := 1; i <= 5; i++ {
		v.PushBack(i)
	}
	assert.Equal(t, 5, v.Capacity(), "reserved slots must absorb pushes")
}

func TestVector_Reserve(t *testing.T) {
	v := vector.Of(1, 2, 3)
	v.Reserve(2)
	assert.Equal(t, 3, v.Capacity())

	v.Reserve(10)
	assert.Equal(t, 10, v.Capacity())
	assert.Equal(t, 3, v.Size())
	requireElems(t, v, 1, 2, 3)
}

func TestVector_AtChecksBounds(t *testing.T) {
	v := vector.Of(10, 20, 30)

	p, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 30, *p)
	*p = 31
	requireElems(t, v, 10, 20, 31)

	_, err = v.At(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrOutOfRange))
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, api.ErrCodeOutOfRange, apiErr.Code)
	assert.Equal(t, 3, apiErr.Context["index"])
	assert.Equal(t, 3, apiErr.Context["size"])

	_, err = v.At(-1)
	assert.ErrorIs(t, err, api.ErrOutOfRange)

	got, err := v.Get(5)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
	assert.Equal(t, 0, got)
	requireElems(t, v, 10, 20, 31)
}

func TestVector_AtIgnoresPlaceholders(t *testing.T) {
	v := vector.Of(1, 2, 3)
	v.PopBack()
	_, err := v.At(2)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
	assert.Equal(t, 3, v.Capacity())
}

func TestVector_ClearKeepsCapacity(t *testing.T) {
	v := vector.Of(1, 2, 3)
	v.Clear()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 3, v.Capacity())
}

func TestVector_ResizeShrinkAndRegrow(t *testing.T) {
	v := vector.Of(1, 2, 3, 4)
	v.Resize(2)
	requireElems(t, v, 1, 2)
	assert.Equal(t, 4, v.Capacity())

	v.Resize(4)
	requireElems(t, v, 1, 2, 0, 0)
	assert.Equal(t, 4, v.Capacity())

	v.Resize(0)
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 4, v.Capacity())

	assert.Panics(t, func() { v.Resize(-1) })
}

func TestVector_ResizeBeyondCapacity(t *testing.T) {
	v := vector.Of(1, 2)
	v.Resize(3)
	requireElems(t, v, 1, 2, 0)
	assert.Equal(t, 4, v.Capacity())

	v.Resize(20)
	assert.Equal(t, 20, v.Size())
	assert.Equal(t, 20, v.Capacity(), "requested size is the floor when doubling is not enough")
	for i := 2; i < 20; i++ {
		assert.Equal(t, 0, *v.Index(i))
	}
}

func TestVector_ResizeWithinCapacityExposesZeroValues(t *testing.T) {
	v := vector.WithReserve[int](vector.Reserve(8))
	for i := 1; i <= 6; i++ {
		v.PushBack(i)
	}
	v.Resize(2)
	v.Resize(5)
	requireElems(t, v, 1, 2, 0, 0, 0)
}

func TestVector_PushBackDoublesCapacity(t *testing.T) {
	v := vector.New[int]()
	want := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, c := range want {
		v.PushBack(i)
		assert.Equal(t, c, v.Capacity(), "after %d pushes", i+1)
		assert.Equal(t, i+1, v.Size())
	}
}

func TestVector_PushPopRoundTrip(t *testing.T) {
	v := vector.Of(5, 6, 7)
	v.PushBack(8)
	v.PopBack()
	requireElems(t, v, 5, 6, 7)
}

func TestVector_PushBackMove(t *testing.T) {
	v := vector.New[[]byte]()
	b := []byte("abc")
	v.PushBackMove(&b)
	assert.Nil(t, b)
	assert.Equal(t, []byte("abc"), *v.Index(0))
}

func TestVector_PopBackEmptyPanics(t *testing.T) {
	v := vector.New[int]()
	assert.Panics(t, func() { v.PopBack() })
}

func TestVector_InsertBoundaries(t *testing.T) {
	v := vector.Of(2, 3)
	it := v.Insert(v.Begin(), 1)
	assert.Equal(t, 0, it.Offset())
	assert.Equal(t, 1, it.Value())
	requireElems(t, v, 1, 2, 3)
	assert.Equal(t, 4, v.Capacity())

	w := vector.Of(1, 2)
	it = w.Insert(w.End(), 9)
	assert.Equal(t, 2, it.Offset())
	requireElems(t, w, 1, 2, 9)

	e := vector.New[int]()
	e.Insert(e.Begin(), 5)
	requireElems(t, e, 5)
	assert.Equal(t, 1, e.Capacity())
}

func TestVector_InsertMiddle(t *testing.T) {
	v := vector.Of(1, 2, 4, 5)
	it := v.Insert(v.Begin().Add(2), 3)
	assert.Equal(t, 3, it.Value())
	requireElems(t, v, 1, 2, 3, 4, 5)

	assert.Equal(t, 2, v.InsertAt(2, 0))
	requireElems(t, v, 1, 2, 0, 3, 4, 5)
}

func TestVector_InsertMove(t *testing.T) {
	v := vector.Of("b")
	s := "a"
	v.InsertMove(v.Begin(), &s)
	assert.Equal(t, "", s)
	requireElems(t, v, "a", "b")
}

func TestVector_InsertBadPositionPanics(t *testing.T) {
	v := vector.Of(1, 2)
	other := vector.Of(1, 2)
	assert.Panics(t, func() { v.Insert(other.Begin(), 0) })
	assert.Panics(t, func() { v.Insert(v.End().Next(), 0) })
	assert.Panics(t, func() { v.Insert(v.Begin().Prev(), 0) })
	requireElems(t, v, 1, 2)
}

func TestVector_Erase(t *testing.T) {
	v := vector.Of(1, 2, 3)
	it := v.Erase(v.Begin())
	assert.Equal(t, 2, it.Value())
	requireElems(t, v, 2, 3)
	assert.Equal(t, 3, v.Capacity())

	it = v.Erase(v.Begin().Next())
	assert.True(t, it.Equal(v.End()))
	requireElems(t, v, 2)

	w := vector.Of(1, 2, 3, 4)
	assert.Equal(t, 1, w.EraseAt(1))
	requireElems(t, w, 1, 3, 4)
}

func TestVector_EraseBadPositionPanics(t *testing.T) {
	v := vector.Of(1, 2)
	assert.Panics(t, func() { v.Erase(v.End()) })
	e := vector.New[int]()
	assert.Panics(t, func() { e.Erase(e.Begin()) })
}

func TestVector_Swap(t *testing.T) {
	a := vector.Of(1, 2, 3)
	b := vector.WithReserve[int](vector.Reserve(10))
	b.PushBack(9)

	a.Swap(b)
	requireElems(t, a, 9)
	assert.Equal(t, 10, a.Capacity())
	requireElems(t, b, 1, 2, 3)
	assert.Equal(t, 3, b.Capacity())
}

func TestVector_CloneIsDeep(t *testing.T) {
	s := vector.WithReserve[int](vector.Reserve(10))
	s.PushBack(1)
	s.PushBack(2)
	s.PushBack(3)

	c := s.Clone()
	assert.True(t, vector.Equal(c, s))
	assert.Equal(t, 3, c.Capacity(), "capacity is not preserved across copy")

	*c.Index(0) = 100
	c.PushBack(4)
	requireElems(t, s, 1, 2, 3)
	assert.Equal(t, 10, s.Capacity())
}

func TestVector_Assign(t *testing.T) {
	dst := vector.Of(7, 7, 7, 7, 7)
	src := vector.Of(1, 2)
	dst.Assign(src)
	requireElems(t, dst, 1, 2)
	assert.Equal(t, 2, dst.Capacity())

	dst.Assign(dst)
	requireElems(t, dst, 1, 2)

	dst.Assign(vector.New[int]())
	assert.True(t, dst.IsEmpty())
	assert.Equal(t, 0, dst.Capacity())
}

func TestVector_MoveEmptiesSource(t *testing.T) {
	s := vector.Of(1, 2, 3)
	s.Reserve(8)

	m := s.Move()
	requireElems(t, m, 1, 2, 3)
	assert.Equal(t, 8, m.Capacity())
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 0, s.Capacity())

	s.PushBack(42)
	requireElems(t, s, 42)
	requireElems(t, m, 1, 2, 3)
}

func TestVector_MoveAssign(t *testing.T) {
	dst := vector.Of(9)
	src := vector.Of(1, 2)
	dst.MoveAssign(src)
	requireElems(t, dst, 1, 2)
	assert.True(t, src.IsEmpty())
	assert.Equal(t, 0, src.Capacity())

	dst.MoveAssign(dst)
	requireElems(t, dst, 1, 2)
}

func TestVector_Iterator(t *testing.T) {
	v := vector.Of(1, 2, 3)
	assert.Equal(t, 3, v.Begin().Distance(v.End()))
	assert.True(t, v.Begin().Less(v.End()))

	sum := 0
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		sum += it.Value()
	}
	assert.Equal(t, 6, sum)

	last := v.End().Prev()
	last.Set(30)
	assert.Equal(t, 30, *last.Ref())
	requireElems(t, v, 1, 2, 30)
}

func TestVector_RangeIterators(t *testing.T) {
	v := vector.Of("a", "b", "c")

	var idx []int
	var got []string
	for i, s := range v.All() {
		idx = append(idx, i)
		got = append(got, s)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got = got[:0]
	for s := range v.Values() {
		got = append(got, s)
		if s == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Equal(t, "[a b c]", v.String())
}

func TestVector_RandomOpsMatchSliceModel(t *testing.T) {
	v := vector.New[int]()
	var model []int
	// Fixed pseudo-random walk keeps the test deterministic.
	seed := uint32(12345)
	next := func(n int) int {
		seed = seed*1664525 + 1013904223
		return int(seed>>8) % n
	}
	for step := 0; step < 5000; step++ {
		switch next(6) {
		case 0, 1:
			v.PushBack(step)
			model = append(model, step)
		case 2:
			if len(model) > 0 {
				v.PopBack()
				model = model[:len(model)-1]
			}
		case 3:
			i := next(len(model) + 1)
			v.InsertAt(i, step)
			model = append(model[:i], append([]int{step}, model[i:]...)...)
		case 4:
			if len(model) > 0 {
				i := next(len(model))
				v.EraseAt(i)
				model = append(model[:i], model[i+1:]...)
			}
		case 5:
			n := next(len(model) + 3)
			v.Resize(n)
			if n <= len(model) {
				model = model[:n]
			} else {
				model = append(model, make([]int, n-len(model))...)
			}
		}
		require.LessOrEqual(t, v.Size(), v.Capacity())
		require.Equal(t, len(model), v.Size())
	}
	requireElems(t, v, model...)
}

func BenchmarkPushBack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 1024; j++ {
			v.PushBack(j)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 256; j++ {
			v.Insert(v.Begin(), j)
		}
	}
}
