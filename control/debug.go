// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry for inspecting live sequences.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-vec/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts or replaces a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterSequence adds "<name>.size" and "<name>.capacity" probes.
// Probes read the sequence when DumpState runs, so the caller must not
// mutate it concurrently.
func RegisterSequence[T any](dp *DebugProbes, name string, seq api.Sequence[T]) {
	dp.RegisterProbe(name+".size", func() any { return seq.Size() })
	dp.RegisterProbe(name+".capacity", func() any { return seq.Capacity() })
}

// Unregister removes a probe.
func (dp *DebugProbes) Unregister(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// Names returns the registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
