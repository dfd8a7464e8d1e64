// Package master - pure-Go LP engine built on gonum's simplex.
//
// gonum's lp.Simplex solves standard-form programs (min c^T x, A x = b,
// x >= 0) and returns only the primal vector. The RMP additionally needs the
// duals of the demand rows, so GonumSolver performs two standard-form solves:
//
//	primal:  min  C^T x         s.t.  [A | -I] (x,s) = B     (surplus s >= 0)
//	dual:    max  B^T y         s.t.  [A^T | I] (y,t) = C    (slack t >= 0)
//
// and cross-checks the two objectives via strong duality. Both programs have
// full row rank and no zero rows or columns thanks to the identity blocks, so
// they satisfy Simplex's preconditions whenever every pattern is non-zero.
package master

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// dualityGapTol bounds the acceptable relative gap between the primal and
// dual objective values. A larger gap means the two solves disagree and the
// result cannot be trusted.
const dualityGapTol = 1e-6

// GonumSolver solves LinearPrograms with gonum's Danzig simplex.
//
// The engine runs each pivot sequence to completion and cannot be interrupted
// mid-solve; it therefore honours ctx and Budget only by pre-checking the
// deadline before each of its two internal solves and never reports
// StatusTimeLimit itself. Engines wrapping external solvers with native time
// limits can return StatusTimeLimit through the same Solver interface.
type GonumSolver struct {
	// Tol is the reduced-cost tolerance forwarded to lp.Simplex; zero selects
	// gonum's internal default.
	Tol float64
}

// NewGonumSolver returns a GonumSolver with gonum's default tolerance.
func NewGonumSolver() *GonumSolver { return &GonumSolver{} }

// Solve runs the primal and dual standard-form simplex solves and assembles
// the combined result.
//
// Status mapping: lp.ErrInfeasible -> StatusInfeasible; any other engine
// error -> StatusError with the wrapped cause. A strong-duality violation
// beyond tolerance is reported as StatusError as well.
//
// Complexity: two simplex runs over (items + patterns) columns each;
// polynomial in practice, exponential worst case as usual for Danzig pivots.
func (g *GonumSolver) Solve(ctx context.Context, p LinearProgram) (LPResult, error) {
	// 1) Shape validation before touching the matrices.
	if err := validateProgram(p); err != nil {
		return LPResult{Status: StatusError}, err
	}
	n, m := p.A.Dims() // n items (rows), m patterns (columns)

	// 2) Deadline pre-check: the pivot loop itself is uninterruptible.
	if err := ctx.Err(); err != nil {
		return LPResult{Status: StatusError}, err
	}

	// 3) Compact away all-zero rows: an item no pattern covers is either
	//    trivially satisfied (zero demand; its dual price is 0) or renders
	//    the program infeasible (positive demand). Simplex rejects zero rows
	//    and the matching dual variables would form zero columns, so they
	//    must not reach the engine.
	rows := make([]int, 0, n)
	for i := 0; i < n; i++ {
		zero := true
		for j := 0; j < m; j++ {
			if p.A.At(i, j) != 0 {
				zero = false
				break
			}
		}
		if zero {
			if p.B[i] > 0 {
				return LPResult{Status: StatusInfeasible},
					fmt.Errorf("%w: no column covers row %d with demand %g", ErrSolverFailure, i, p.B[i])
			}

			continue
		}
		rows = append(rows, i)
	}
	k := len(rows)

	// 3a) Nothing to constrain: the zero vector is optimal.
	if k == 0 {
		return LPResult{
			Status: StatusOptimal,
			Primal: make([]float64, m),
			Duals:  make([]float64, n),
		}, nil
	}

	// 4) Primal solve over [A | -I]: surplus variables turn A x >= B into
	//    equalities. Objective extends C with zeros for the surplus block.
	cP := make([]float64, m+k)
	copy(cP, p.C)
	aP := mat.NewDense(k, m+k, nil)
	bP := make([]float64, k)
	for r, i := range rows {
		for j := 0; j < m; j++ {
			aP.Set(r, j, p.A.At(i, j))
		}
		aP.Set(r, m+r, -1)
		bP[r] = p.B[i]
	}
	primalObj, xFull, err := lp.Simplex(cP, aP, bP, g.Tol, nil)
	if err != nil {
		return lpFailure(err)
	}

	// 5) Deadline pre-check between the two solves.
	if err = ctx.Err(); err != nil {
		return LPResult{Status: StatusError}, err
	}

	// 6) Dual solve over [A^T | I]: max B^T y s.t. A^T y <= C, y >= 0 becomes
	//    min (-B)^T y with slack variables t.
	cD := make([]float64, k+m)
	for r, i := range rows {
		cD[r] = -p.B[i]
	}
	aD := mat.NewDense(m, k+m, nil)
	for j := 0; j < m; j++ {
		for r, i := range rows {
			aD.Set(j, r, p.A.At(i, j))
		}
		aD.Set(j, k+j, 1)
	}
	bD := make([]float64, m)
	for j := range bD {
		bD[j] = p.C[j]
	}
	dualNegObj, yFull, err := lp.Simplex(cD, aD, bD, g.Tol, nil)
	if err != nil {
		return lpFailure(err)
	}
	dualObj := -dualNegObj

	// 7) Strong duality cross-check: the two optima must agree.
	if gap := math.Abs(primalObj - dualObj); gap > dualityGapTol*(1+math.Abs(primalObj)) {
		return LPResult{Status: StatusError},
			fmt.Errorf("%w: duality gap %g (primal %g, dual %g)", ErrSolverFailure, gap, primalObj, dualObj)
	}

	// 8) Trim the surplus/slack blocks and scatter the compacted duals back
	//    onto the original row indexes (dropped rows price at 0).
	duals := make([]float64, n)
	for r, i := range rows {
		duals[i] = yFull[r]
	}

	return LPResult{
		Status:    StatusOptimal,
		Objective: primalObj,
		Primal:    append([]float64(nil), xFull[:m]...),
		Duals:     duals,
	}, nil
}

// validateProgram checks the mutual dimensions of C, A, and B.
func validateProgram(p LinearProgram) error {
	if p.A == nil {
		return fmt.Errorf("%w: constraint matrix is nil", ErrBadProgram)
	}
	n, m := p.A.Dims()
	if n == 0 || m == 0 {
		return fmt.Errorf("%w: constraint matrix is %dx%d", ErrBadProgram, n, m)
	}
	if len(p.C) != m {
		return fmt.Errorf("%w: %d objective coefficients for %d columns", ErrBadProgram, len(p.C), m)
	}
	if len(p.B) != n {
		return fmt.Errorf("%w: %d right-hand sides for %d rows", ErrBadProgram, len(p.B), n)
	}

	return nil
}

// lpFailure maps a gonum simplex error onto the Status taxonomy.
func lpFailure(err error) (LPResult, error) {
	if errors.Is(err, lp.ErrInfeasible) {
		return LPResult{Status: StatusInfeasible}, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	return LPResult{Status: StatusError}, fmt.Errorf("%w: %v", ErrSolverFailure, err)
}
