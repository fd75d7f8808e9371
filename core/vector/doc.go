// Package vector
// Author: momentics <momentics@gmail.com>
//
// Growable, contiguous, random-access sequence with value semantics.
//
// A Vector owns one buffer.ArrayPtr and tracks size (logical elements,
// [0, size)) separately from capacity (allocated slots). Slots in
// [size, capacity) always hold valid placeholder values and are never
// logically meaningful. Growth is explicit: Reserve is the allocation
// primitive, and Resize, PushBack and Insert double the capacity, using the
// requested size as a floor.
//
// Contract violations (bad positions, PopBack on an empty vector) panic.
// Unchecked indexing through Index is only asserted when built with the
// vecdebug tag. At is the checked accessor and reports api.ErrOutOfRange.
//
// Vectors are not safe for concurrent use. Wrap a Vector behind your own
// mutex if several goroutines need it.
package vector
