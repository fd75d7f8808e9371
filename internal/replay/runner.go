// File: internal/replay/runner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package replay

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/eapache/queue"
	"github.com/rs/zerolog"

	"github.com/momentics/hioload-vec/control"
	"github.com/momentics/hioload-vec/core/vector"
)

// ErrInvalidStep reports a step that would violate a vector contract
// (PopBack on empty, position outside the sequence, negative size).
var ErrInvalidStep = errors.New("invalid replay step")

// Metric keys recorded by Runner.
const (
	MetricOps           = "replay.ops"
	MetricReallocations = "replay.reallocations"
	MetricPeakCapacity  = "replay.peak_capacity"
	MetricOutOfRange    = "replay.out_of_range"
)

// Report summarizes a finished run.
type Report struct {
	Name          string         `toml:"name"`
	Size          int            `toml:"size"`
	Capacity      int            `toml:"capacity"`
	Ops           int64          `toml:"ops"`
	Reallocations int64          `toml:"reallocations"`
	PeakCapacity  int64          `toml:"peak_capacity"`
	OutOfRange    int64          `toml:"out_of_range"`
	Contents      []string       `toml:"contents"`
	Secondary     []string       `toml:"secondary"`
	Probes        map[string]any `toml:"probes,omitempty"`
}

// Runner replays one script. A Runner is not reusable across goroutines.
type Runner struct {
	cfg     Config
	log     zerolog.Logger
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
}

// NewRunner prepares a run of cfg.
func NewRunner(cfg Config, log zerolog.Logger) *Runner {
	return &Runner{
		cfg:     cfg,
		log:     log.With().Str("script", cfg.Name).Logger(),
		metrics: control.NewMetricsRegistry(),
		probes:  control.NewDebugProbes(),
	}
}

// Metrics exposes the run counters.
func (r *Runner) Metrics() *control.MetricsRegistry {
	return r.metrics
}

// Run validates the script, then applies every queued step in order.
// It stops at the first invalid step or when ctx is done.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return Report{}, err
	}
	switch r.cfg.Element {
	case ElementInt:
		return run(ctx, r, strconv.Atoi)
	default:
		return run(ctx, r, func(s string) (string, error) { return s, nil })
	}
}

type queued struct {
	seq  int
	step Step
}

// engine applies steps to a primary and a secondary vector of T.
type engine[T any] struct {
	r         *Runner
	parse     func(string) (T, error)
	primary   *vector.Vector[T]
	secondary *vector.Vector[T]
}

func run[T any](ctx context.Context, r *Runner, parse func(string) (T, error)) (Report, error) {
	e := &engine[T]{
		r:         r,
		parse:     parse,
		primary:   vector.WithReserve[T](vector.Reserve(r.cfg.InitialReserve)),
		secondary: vector.New[T](),
	}
	if r.cfg.ReportProbes {
		control.RegisterSequence[T](r.probes, "primary", e.primary)
		control.RegisterSequence[T](r.probes, "secondary", e.secondary)
		control.RegisterPlatformProbes(r.probes)
	}
	r.metrics.Max(MetricPeakCapacity, int64(e.primary.Capacity()))

	pending := queue.New()
	for i, s := range r.cfg.Steps {
		n := max(s.Repeat, 1)
		for k := 0; k < n; k++ {
			pending.Add(queued{seq: i, step: s})
		}
	}
	r.log.Info().Int("queued", pending.Length()).Str("element", r.cfg.Element).Msg("replay started")

	for pending.Length() > 0 {
		select {
		case <-ctx.Done():
			return e.report(), ctx.Err()
		default:
		}
		q := pending.Remove().(queued)
		if err := e.apply(q.step); err != nil {
			r.log.Error().Err(err).Int("step", q.seq).Str("op", q.step.Op).Msg("replay aborted")
			return e.report(), fmt.Errorf("step %d (%s): %w", q.seq, q.step.Op, err)
		}
		r.metrics.Add(MetricOps, 1)
	}

	rep := e.report()
	r.log.Info().
		Int("size", rep.Size).
		Int("capacity", rep.Capacity).
		Int64("reallocations", rep.Reallocations).
		Msg("replay finished")
	return rep, nil
}

func (e *engine[T]) apply(s Step) error {
	v := e.primary
	before := v.Capacity()

	switch s.Op {
	case OpPushBack:
		val, err := e.value(s)
		if err != nil {
			return err
		}
		v.PushBack(val)
	case OpPopBack:
		if v.IsEmpty() {
			return fmt.Errorf("%w: pop_back on empty vector", ErrInvalidStep)
		}
		v.PopBack()
	case OpInsert:
		if s.Index < 0 || s.Index > v.Size() {
			return fmt.Errorf("%w: insert position %d outside [0,%d]", ErrInvalidStep, s.Index, v.Size())
		}
		val, err := e.value(s)
		if err != nil {
			return err
		}
		v.Insert(v.Begin().Add(s.Index), val)
	case OpErase:
		if s.Index < 0 || s.Index >= v.Size() {
			return fmt.Errorf("%w: erase position %d outside [0,%d)", ErrInvalidStep, s.Index, v.Size())
		}
		v.Erase(v.Begin().Add(s.Index))
	case OpResize:
		if s.Count < 0 {
			return fmt.Errorf("%w: negative resize %d", ErrInvalidStep, s.Count)
		}
		v.Resize(s.Count)
	case OpReserve:
		if s.Count < 0 {
			return fmt.Errorf("%w: negative reserve %d", ErrInvalidStep, s.Count)
		}
		v.Reserve(s.Count)
	case OpClear:
		v.Clear()
	case OpAt:
		p, err := v.At(s.Index)
		if err != nil {
			e.r.metrics.Add(MetricOutOfRange, 1)
			e.r.log.Warn().Err(err).Int("index", s.Index).Msg("checked access failed")
			return nil
		}
		e.r.log.Debug().Int("index", s.Index).Interface("value", *p).Msg("checked access")
	case OpClone:
		e.secondary.Assign(v)
	case OpMove:
		e.secondary.MoveAssign(v)
	case OpSwap:
		v.Swap(e.secondary)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, s.Op)
	}

	after := v.Capacity()
	if after > before && growthOp(s.Op) {
		e.r.metrics.Add(MetricReallocations, 1)
		e.r.log.Debug().Str("op", s.Op).Int("from", before).Int("to", after).Msg("reallocated")
	}
	e.r.metrics.Max(MetricPeakCapacity, int64(after))
	return nil
}

func growthOp(op string) bool {
	switch op {
	case OpPushBack, OpInsert, OpResize, OpReserve:
		return true
	}
	return false
}

func (e *engine[T]) value(s Step) (T, error) {
	val, err := e.parse(s.Value)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: value %q: %v", ErrInvalidStep, s.Value, err)
	}
	return val, nil
}

func (e *engine[T]) report() Report {
	m := e.r.metrics
	rep := Report{
		Name:          e.r.cfg.Name,
		Size:          e.primary.Size(),
		Capacity:      e.primary.Capacity(),
		Ops:           m.Int(MetricOps),
		Reallocations: m.Int(MetricReallocations),
		PeakCapacity:  m.Int(MetricPeakCapacity),
		OutOfRange:    m.Int(MetricOutOfRange),
		Contents:      format(e.primary),
		Secondary:     format(e.secondary),
	}
	if e.r.cfg.ReportProbes {
		rep.Probes = e.r.probes.DumpState()
	}
	return rep
}

func format[T any](v *vector.Vector[T]) []string {
	out := make([]string, 0, v.Size())
	for e := range v.Values() {
		out = append(out, fmt.Sprint(e))
	}
	return out
}
