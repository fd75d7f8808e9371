// Package api
// Author: momentics
//
// Exclusive-ownership contracts for heap blocks backing sequence containers.
//
// A block has exactly one owner at a time. Ownership moves, it is never shared:
// Release hands the block to the caller and leaves the owner empty.

package api

// Owner describes a single-owner handle to a contiguous block of T.
type Owner[T any] interface {
	// Get returns the owned block, nil when the handle is empty.
	Get() []T

	// Release clears the handle and returns the block to the caller.
	// The handle must not be assumed to own anything afterwards.
	Release() []T

	// Valid reports whether a block is currently owned.
	Valid() bool

	// Len returns the allocation length of the owned block.
	Len() int
}
