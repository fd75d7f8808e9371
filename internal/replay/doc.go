// Package replay
// Author: momentics <momentics@gmail.com>
//
// Operation-script replay for vector workloads.
//
// A script is a TOML file listing steps (push_back, insert, erase, resize,
// ...) that are queued and applied in order to a primary vector, with a
// secondary vector taking part in clone/move/swap steps. The runner records
// reallocations and other counters in a control.MetricsRegistry and logs
// every capacity change through zerolog.
package replay
