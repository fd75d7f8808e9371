// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for hioload-vec drivers.
//
// Provides concurrent-safe state handling primitives including:
//   - Counter/gauge registry with snapshot reads
//   - Named debug probes, including per-sequence size/capacity probes
//   - Platform probes (CPU count, peak resident memory)
//
// The core container packages never import control; drivers such as the
// replay engine wire vectors into it.
package control
