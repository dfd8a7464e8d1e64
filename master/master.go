// Package master - construction and solving of the restricted master problem.
package master

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cutstock/cutting"
)

// Problem is the restricted master problem of column generation over a
// growing pattern set:
//
//	minimize   sum_p x_p
//	subject to sum_p pattern_p[i] * x_p >= demand[i]   for every item i
//	           x_p >= 0                                (continuous relaxation)
//
// The Problem holds references to the instance and the pattern set owned by
// the column-generation loop; each Solve call reads the set's current
// contents, so the same Problem serves every iteration while the set grows.
type Problem struct {
	inst   *cutting.Instance
	set    *cutting.PatternSet
	solver Solver
	budget time.Duration
}

// Result is the outcome of one RMP solve.
//
//   - Status: StatusOptimal, or StatusTimeLimit when the engine stopped on its
//     budget but still produced a feasible primal/dual incumbent.
//   - Objective: total (fractional) number of stock units used.
//   - Usage: per-pattern usage x_p, index-aligned with the pattern set.
//   - Duals: per-item shadow prices of the demand constraints, consumed by
//     the pricing subproblem.
type Result struct {
	Status    Status
	Objective float64
	Usage     []float64
	Duals     []float64
}

// New validates its collaborators and builds a Problem.
//
// Errors: ErrNilInstance, ErrNilPatternSet, ErrNilSolver (when an explicit
// nil engine is injected).
func New(inst *cutting.Instance, set *cutting.PatternSet, opts ...Option) (*Problem, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if inst == nil {
		return nil, ErrNilInstance
	}
	if set == nil {
		return nil, ErrNilPatternSet
	}
	if cfg.Solver == nil {
		return nil, ErrNilSolver
	}

	return &Problem{
		inst:   inst,
		set:    set,
		solver: cfg.Solver,
		budget: cfg.Budget,
	}, nil
}

// Solve builds the LP over the current pattern set and delegates to the
// engine.
//
// Returns:
//   - Result with StatusOptimal when the engine proved optimality;
//   - Result with StatusTimeLimit when the engine stopped on its budget but
//     produced a usable incumbent (non-fatal, the caller logs and proceeds);
//   - ErrEmptyPatternSet when no column exists yet;
//   - ErrSolverFailure (wrapped) when the engine reports infeasibility or an
//     unrecoverable error. Infeasibility is never expected here: the seed
//     patterns guarantee every demand row can be covered.
//
// Complexity: O(n*m) to assemble the matrix plus the engine's solve time.
func (pr *Problem) Solve(ctx context.Context) (Result, error) {
	m := pr.set.Len()
	if m == 0 {
		return Result{}, ErrEmptyPatternSet
	}
	n := pr.inst.NumItems()

	// 1) Assemble the demand-constraint matrix: rows = items, cols = patterns.
	a := mat.NewDense(n, m, nil)
	for p := 0; p < m; p++ {
		pattern := pr.set.At(p)
		for i := 0; i < n; i++ {
			a.Set(i, p, float64(pattern[i]))
		}
	}

	// 2) Unit objective (every pattern consumes one stock unit per use) and
	//    demand right-hand side.
	c := make([]float64, m)
	for p := range c {
		c[p] = 1
	}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		b[i] = float64(pr.inst.Demand(i))
	}

	// 3) Delegate to the engine with the per-solve budget.
	res, err := pr.solver.Solve(ctx, LinearProgram{C: c, A: a, B: b, Budget: pr.budget})
	if err != nil {
		return Result{}, wrapSolverErr(err)
	}

	// 4) Map the engine status onto the RMP contract.
	switch res.Status {
	case StatusOptimal, StatusTimeLimit:
		if len(res.Primal) != m || len(res.Duals) != n {
			return Result{}, fmt.Errorf("%w: engine returned %d primal / %d dual values, want %d / %d",
				ErrSolverFailure, len(res.Primal), len(res.Duals), m, n)
		}

		return Result{
			Status:    res.Status,
			Objective: res.Objective,
			Usage:     res.Primal,
			Duals:     res.Duals,
		}, nil
	case StatusInfeasible:
		return Result{}, fmt.Errorf("%w: engine reports infeasible where feasibility is guaranteed", ErrSolverFailure)
	default:
		return Result{}, fmt.Errorf("%w: engine status %s", ErrSolverFailure, res.Status)
	}
}

// NumItems returns the number of demand rows.
func (pr *Problem) NumItems() int { return pr.inst.NumItems() }

// NumPatterns returns the current number of columns.
func (pr *Problem) NumPatterns() int { return pr.set.Len() }

// wrapSolverErr tags engine errors with ErrSolverFailure exactly once.
func wrapSolverErr(err error) error {
	if errors.Is(err, ErrSolverFailure) {
		return err
	}

	return fmt.Errorf("%w: %v", ErrSolverFailure, err)
}
