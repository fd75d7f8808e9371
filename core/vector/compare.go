// File: core/vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import "cmp"

// Equal reports equal length and element-wise equality.
func Equal[T comparable](lhs, rhs *Vector[T]) bool {
	return EqualFunc(lhs, rhs, func(a, b T) bool { return a == b })
}

// NotEqual is !Equal.
func NotEqual[T comparable](lhs, rhs *Vector[T]) bool {
	return !Equal(lhs, rhs)
}

// Less reports whether lhs orders before rhs lexicographically.
func Less[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return LessFunc(lhs, rhs, func(a, b T) bool { return a < b })
}

// LessOrEqual is Equal || Less.
func LessOrEqual[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return Equal(lhs, rhs) || Less(lhs, rhs)
}

// Greater is !(Equal || Less).
func Greater[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return !(Equal(lhs, rhs) || Less(lhs, rhs))
}

// GreaterOrEqual is !Less.
func GreaterOrEqual[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return !Less(lhs, rhs)
}

// Compare returns -1, 0 or +1 from the same Less/Equal pair.
func Compare[T cmp.Ordered](lhs, rhs *Vector[T]) int {
	switch {
	case Less(lhs, rhs):
		return -1
	case Equal(lhs, rhs):
		return 0
	}
	return 1
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](lhs, rhs *Vector[T], eq func(a, b T) bool) bool {
	l, r := lhs.Slice(), rhs.Slice()
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if !eq(l[i], r[i]) {
			return false
		}
	}
	return true
}

// LessFunc is Less with a caller-supplied strict ordering.
func LessFunc[T any](lhs, rhs *Vector[T], less func(a, b T) bool) bool {
	l, r := lhs.Slice(), rhs.Slice()
	for i := 0; i < len(l) && i < len(r); i++ {
		if less(l[i], r[i]) {
			return true
		}
		if less(r[i], l[i]) {
			return false
		}
	}
	return len(l) < len(r)
}
