//go:build !vecdebug
// +build !vecdebug

// File: core/vector/assert_release.go
// Author: momentics <momentics@gmail.com>

package vector

const debugChecks = false
