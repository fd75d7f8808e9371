// File: core/vector/reserve.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import "fmt"

// ReserveProxy carries a capacity request for WithReserve.
type ReserveProxy struct {
	capacity int
}

// Reserve returns a token that pre-sizes a vector without changing its size.
func Reserve(capacity int) ReserveProxy {
	if capacity < 0 {
		panic(fmt.Sprintf("vector: negative reserve %d", capacity))
	}
	return ReserveProxy{capacity: capacity}
}

// Capacity returns the requested capacity.
func (r ReserveProxy) Capacity() int {
	return r.capacity
}
