//go:build vecdebug
// +build vecdebug

// File: core/vector/assert_debug.go
// Author: momentics <momentics@gmail.com>

package vector

const debugChecks = true
