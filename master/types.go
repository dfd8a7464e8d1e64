// Package master - types, sentinels, and the LP-engine abstraction for the
// restricted master problem (RMP) of column generation.
package master

import (
	"context"
	"errors"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by this package.
var (
	// ErrNilInstance indicates a nil problem instance.
	ErrNilInstance = errors.New("master: instance is nil")

	// ErrNilPatternSet indicates a nil pattern set.
	ErrNilPatternSet = errors.New("master: pattern set is nil")

	// ErrEmptyPatternSet indicates a solve attempt over zero patterns; the RMP
	// needs at least one column to be well-formed.
	ErrEmptyPatternSet = errors.New("master: pattern set is empty")

	// ErrNilSolver indicates a nil LP engine.
	ErrNilSolver = errors.New("master: LP solver is nil")

	// ErrBadProgram indicates an ill-shaped linear program handed to a Solver
	// (dimension mismatches between C, A, and B).
	ErrBadProgram = errors.New("master: malformed linear program")

	// ErrSolverFailure indicates that the LP engine reported infeasibility
	// where feasibility is guaranteed, or an unrecoverable numerical error.
	// Fatal: the column-generation loop aborts on it.
	ErrSolverFailure = errors.New("master: LP solver failure")
)

// Status classifies the outcome of one LP solve.
type Status int

const (
	// StatusOptimal means the engine proved primal/dual optimality.
	StatusOptimal Status = iota

	// StatusTimeLimit means the per-solve budget expired but a feasible
	// primal/dual incumbent is still available. Non-fatal: callers log it and
	// proceed with the approximate values.
	StatusTimeLimit

	// StatusInfeasible means the engine proved the program infeasible.
	StatusInfeasible

	// StatusError means the engine failed without a usable answer.
	StatusError
)

// String renders the status for logs and diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimit:
		return "time-limit"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "error"
	}
}

// LinearProgram is the solver-agnostic description of one RMP relaxation:
//
//	minimize   C^T x
//	subject to A x >= B,  x >= 0
//
// with rows of A indexed by items (demand constraints) and columns by
// patterns. Budget is the per-solve wall-clock allowance; zero means no limit.
// Engines that cannot interrupt a running solve may treat Budget as advisory.
type LinearProgram struct {
	C      []float64
	A      *mat.Dense
	B      []float64
	Budget time.Duration
}

// LPResult carries the outcome of one LP solve: the primal vector (one value
// per column/pattern) and the dual vector of the row constraints (one shadow
// price per item). Primal and Duals are only meaningful for StatusOptimal and
// StatusTimeLimit.
type LPResult struct {
	Status    Status
	Objective float64
	Primal    []float64
	Duals     []float64
}

// Solver is the abstract LP-solving capability the master problem delegates
// to: any engine supporting >= row constraints with retrievable duals fits
// behind it. Implementations must honour ctx cancellation at least between
// internal phases and must not retain p after returning.
type Solver interface {
	Solve(ctx context.Context, p LinearProgram) (LPResult, error)
}

// Options configures a Problem.
//
//   - Solver: LP engine; defaults to NewGonumSolver().
//   - Budget: per-solve wall-clock allowance forwarded to the engine
//     (10s default).
type Options struct {
	Solver Solver
	Budget time.Duration
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithSolver swaps the LP engine.
func WithSolver(s Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// WithBudget sets the per-solve wall-clock allowance. Panics on negative
// durations, which are undefined.
func WithBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("master: Budget must be non-negative")
		}
		o.Budget = d
	}
}

// DefaultOptions returns the baseline configuration: gonum simplex engine and
// a 10-second per-solve budget.
func DefaultOptions() Options {
	return Options{
		Solver: NewGonumSolver(),
		Budget: 10 * time.Second,
	}
}
