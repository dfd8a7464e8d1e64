// Package colgen - states, options, and result types of the
// column-generation loop.
package colgen

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cutstock/cutting"
	"github.com/katalvlaran/cutstock/master"
)

// ErrNilInstance indicates a nil problem instance passed to Solve.
var ErrNilInstance = errors.New("colgen: instance is nil")

// State is the loop's lifecycle position. The machine is
// INITIALIZING -> ITERATING -> {CONVERGED | TIME_EXPIRED | FAILED}; the three
// right-hand states are terminal.
type State int

const (
	// StateInitializing covers instance checks and seed-pattern construction.
	StateInitializing State = iota

	// StateIterating covers the master/pricing rounds.
	StateIterating

	// StateConverged means no pattern with negative reduced cost exists: the
	// LP relaxation is solved to proven optimality.
	StateConverged

	// StateTimeExpired means the global wall-clock budget (or the iteration
	// cap) ran out; the result carries the best pattern set found so far and
	// is explicitly NOT proven optimal.
	StateTimeExpired

	// StateFailed means an unrecovered solver failure aborted the loop.
	StateFailed
)

// String renders the state for logs and diagnostics.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateTimeExpired:
		return "time-expired"
	default:
		return "failed"
	}
}

// Result is the terminal outcome of one column-generation run.
//
//   - Patterns grows append-only during the run; position p in the set is the
//     same decision variable as Usage[p].
//   - Usage/Objective/Duals come from the last completed master solve. On
//     StateTimeExpired, len(Usage) can be smaller than Patterns.Len() (a
//     pattern was priced out after the last solve) or Usage can be nil (the
//     budget expired before any solve); both are explicitly suboptimal
//     snapshots.
//   - Iterations counts completed master/pricing rounds, Elapsed the total
//     wall-clock time, for every terminal outcome.
type Result struct {
	State      State
	Patterns   *cutting.PatternSet
	Usage      []float64
	Objective  float64
	Duals      []float64
	Iterations int
	Elapsed    time.Duration
}

// ProvenOptimal reports whether the relaxation was solved to optimality.
func (r *Result) ProvenOptimal() bool { return r.State == StateConverged }

// Options configures a Solve run.
//
//   - GlobalBudget: wall-clock allowance for the whole loop, checked once per
//     round at the iteration boundary (600s default, 0 = unlimited). A single
//     slow sub-solve can therefore overshoot it by up to its own budget.
//   - MasterBudget: per-solve allowance of one RMP solve (10s default).
//   - PricingBudget: per-solve allowance of one pricing solve (60s default).
//   - MaxIterations: hard cap on rounds, 0 = unbounded. Exhausting it is
//     treated like budget exhaustion (StateTimeExpired).
//   - Eps: numeric tolerance for the convergence test z* <= 1 + Eps and for
//     strict improvement inside the pricing DP (1e-9 default).
//   - Logger: structured logger for iteration progress and degradations;
//     defaults to zap.NewNop(). Time-limit conditions are logged, never
//     silently swallowed.
//   - Solver: LP engine override; defaults to the gonum simplex engine.
type Options struct {
	GlobalBudget  time.Duration
	MasterBudget  time.Duration
	PricingBudget time.Duration
	MaxIterations int
	Eps           float64
	Logger        *zap.Logger
	Solver        master.Solver
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithGlobalBudget caps the total wall-clock time of the loop.
// Panics on negative durations.
func WithGlobalBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("colgen: GlobalBudget must be non-negative")
		}
		o.GlobalBudget = d
	}
}

// WithMasterBudget caps one RMP solve. Panics on negative durations.
func WithMasterBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("colgen: MasterBudget must be non-negative")
		}
		o.MasterBudget = d
	}
}

// WithPricingBudget caps one pricing solve. Panics on negative durations.
func WithPricingBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("colgen: PricingBudget must be non-negative")
		}
		o.PricingBudget = d
	}
}

// WithMaxIterations caps the number of rounds; 0 removes the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("colgen: MaxIterations must be non-negative")
		}
		o.MaxIterations = n
	}
}

// WithEps sets the convergence/improvement tolerance. Panics on negative
// values, which would invert the convergence test.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic("colgen: Eps must be non-negative")
		}
		o.Eps = eps
	}
}

// WithLogger attaches a structured logger to the run.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSolver swaps the LP engine used by the master problem.
func WithSolver(s master.Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// DefaultOptions returns the baseline configuration: 600s global budget,
// 10s master budget, 60s pricing budget, unbounded iterations, Eps = 1e-9,
// no-op logger, gonum LP engine.
func DefaultOptions() Options {
	return Options{
		GlobalBudget:  600 * time.Second,
		MasterBudget:  10 * time.Second,
		PricingBudget: 60 * time.Second,
		MaxIterations: 0,
		Eps:           1e-9,
		Logger:        zap.NewNop(),
		Solver:        nil, // master.DefaultOptions picks the gonum engine
	}
}
