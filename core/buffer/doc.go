// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Exclusive-ownership handle over a heap-allocated contiguous block.
//
// ArrayPtr knows nothing about logical size: it owns a raw allocation and
// implements the release/attach protocol used by the vector package when
// it grows, moves or swaps storage. Copying an ArrayPtr by value is rejected
// by go vet (copylocks); ownership moves through Move, MoveFrom, Swap and
// Release/FromRaw only.
package buffer
