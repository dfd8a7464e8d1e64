// Package master builds and solves the restricted master problem (RMP) of
// Gilmore-Gomory column generation for the one-dimensional cutting-stock
// problem.
//
// The RMP is the continuous relaxation of the cutting plan restricted to the
// currently known patterns:
//
//	minimize   sum_p x_p                               (stock units consumed)
//	subject to sum_p pattern_p[i] * x_p >= demand[i]   for every item i
//	           x_p >= 0
//
// Each solve yields two things the loop needs: the primal usage vector x
// (how often each known pattern is used, fractionally) and the dual vector w
// of the demand rows (one shadow price per item), which parameterizes the
// pricing subproblem.
//
// LP engine abstraction:
//
//   - The numeric solve is delegated to the Solver interface: any
//     linear-programming engine supporting inequality rows with retrievable
//     duals can be plugged in. The shipped implementation, GonumSolver, uses
//     gonum's pure-Go simplex; because lp.Simplex returns no duals, it solves
//     the explicit dual program as well and cross-checks both objectives via
//     strong duality.
//   - Engines with native time limits report StatusTimeLimit together with
//     their best incumbent; the column-generation loop logs the degradation
//     and proceeds with the approximate duals rather than aborting.
//
// Failure modes:
//
//   - ErrSolverFailure wraps engine infeasibility (which the seed patterns
//     rule out, so it always signals a defect) and unrecoverable numerical
//     errors. It is fatal to the loop.
//   - ErrEmptyPatternSet guards against solving before initialization.
//
// See the colgen package for the loop that drives this RMP against the
// knapsack pricing solver.
package master
