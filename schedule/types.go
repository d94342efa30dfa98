// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Yield is an accumulated amount of flow. int64 holds
// network.MaxRate × MaxBudget × closedset.MaxBits without overflow.
type Yield = int64

const (
	// DefaultSetupMinutes is how many minutes Pair spends before its clock
	// starts (the agents' shared clock begins at minute 1+setup).
	DefaultSetupMinutes = 4

	// MaxBudget is the largest accepted budget.
	MaxBudget = 1 << 16

	// DefaultWorkers runs every minute on the calling goroutine.
	DefaultWorkers = 1
)

// Method tags for error context.
const (
	methodSingle = "Single"
	methodPair   = "Pair"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("schedule: graph is nil")

	// ErrEmptyGraph indicates a graph without valves.
	ErrEmptyGraph = errors.New("schedule: graph has no valves")

	// ErrBadGraph indicates a rate or neighbor index outside its domain.
	ErrBadGraph = errors.New("schedule: invalid graph")

	// ErrBadStart indicates a start index outside [0, Len()).
	ErrBadStart = errors.New("schedule: start valve out of range")

	// ErrBadBudget indicates a budget outside [0, MaxBudget].
	ErrBadBudget = errors.New("schedule: budget out of range")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("schedule: invalid option supplied")
)

// Graph is the read-only view the engines need. *network.Network satisfies it.
type Graph interface {
	// Len returns the number of valves; indices are 0..Len()-1.
	Len() int
	// Rate returns the per-minute yield of valve i once opened.
	Rate(i int) int64
	// Neighbors returns the indices reachable from i in one minute.
	Neighbors(i int) []int
	// Start returns the index both agents start at.
	Start() int
}

// MinuteStats describes one completed minute table.
type MinuteStats struct {
	// Minute is the clock value the table was computed for.
	Minute int
	// States is the number of non-zero entries stored.
	States int
	// Elapsed is the wall time spent filling the table.
	Elapsed time.Duration
}

// Result is the outcome of one engine run.
type Result struct {
	// Yield is the maximum total yield from StartMinute to the horizon.
	Yield Yield
	// Budget is the horizon minute B.
	Budget int
	// StartMinute is the first minute on the clock (1 for Single, 1+setup for Pair).
	StartMinute int
	// Minutes is how many minute tables were computed.
	Minutes int
	// States is the number of entries in the StartMinute table.
	States int
}

// Option configures an engine run.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the resolved configuration of an engine run.
type Options struct {
	// Ctx is checked between minutes and rows.
	Ctx context.Context

	// OnMinute is called after each minute table is complete.
	OnMinute func(MinuteStats)

	// SetupMinutes is the number of minutes Pair reserves before its clock.
	// Single ignores it.
	SetupMinutes int

	// Workers is the number of goroutines used per minute.
	Workers int

	err error
}

// DefaultOptions returns:
//   - context.Background()
//   - no-op OnMinute
//   - SetupMinutes = DefaultSetupMinutes
//   - Workers = DefaultWorkers
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnMinute:     func(MinuteStats) {},
		SetupMinutes: DefaultSetupMinutes,
		Workers:      DefaultWorkers,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnMinute registers the per-minute observer. nil is ignored.
func WithOnMinute(fn func(MinuteStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMinute = fn
		}
	}
}

// WithSetupMinutes sets the minutes Pair reserves before its clock starts.
// Negative values are rejected.
func WithSetupMinutes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: SetupMinutes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SetupMinutes = n
	}
}

// WithWorkers sets how many goroutines fill each minute table.
// Values below 1 are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// resolveOptions applies opts over DefaultOptions; the first violation wins.
func resolveOptions(method string, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return Options{}, fmt.Errorf("%s: %w", method, o.err)
		}
	}

	return o, nil
}

// validateBudget enforces 0 ≤ budget ≤ MaxBudget.
func validateBudget(method string, budget int) error {
	if budget < 0 || budget > MaxBudget {
		return fmt.Errorf("%s: budget=%d not in [0,%d]: %w", method, budget, MaxBudget, ErrBadBudget)
	}

	return nil
}
