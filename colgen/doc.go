// Package colgen orchestrates Gilmore-Gomory column generation for the
// one-dimensional cutting-stock problem: it owns the growing pattern set and
// drives the master package (LP relaxation over known patterns) against the
// knapsack package (exact pricing of new patterns) until proven optimality or
// budget exhaustion.
//
// The loop:
//
//  1. INITIALIZING - validate the instance and seed one single-item pattern
//     per fitting item type, floor(L/len_i) copies of item i. Each demand row
//     is then coverable by a multiple of its own seed, so the first
//     restricted master problem is feasible by construction. A demanded item
//     longer than the stock makes the instance infeasible and aborts here.
//  2. ITERATING - per round: solve the master problem for the dual prices w;
//     solve the unbounded knapsack max sum w[i]*a[i] subject to the stock
//     length for the best new pattern a* and its value z*; if z* <= 1 + Eps
//     no column with negative reduced cost exists and the loop CONVERGES;
//     otherwise append a* (duplicates are rejected — the append-only,
//     duplicate-free pattern set is what bounds the iteration count by the
//     finite number of distinct feasible patterns) and repeat.
//  3. Terminal states - CONVERGED (LP optimum proven), TIME_EXPIRED (global
//     wall-clock budget or iteration cap hit; best-so-far snapshot, not
//     proven optimal), FAILED (unrecovered solver error; surfaced as an
//     error carrying the iteration number and elapsed time).
//
// Budgets and cancellation are cooperative and coarse-grained: the global
// budget is checked once per round boundary, so one slow sub-solve can
// overshoot it by up to its own per-solve budget. Master solves that hit
// their own budget but produce a feasible incumbent are a logged, non-fatal
// degradation: the round proceeds with the approximate duals.
//
// The result is the relaxation optimum: the pattern set plus fractional
// per-pattern usage. Rounding to an integer cutting plan is deliberately out
// of scope; Pattern.Offsets in the cutting package feeds external reporting.
//
// Concurrency: a run is single-threaded and owns its instance and pattern
// set exclusively. Independent runs on independent instances are safe to
// execute in parallel, sharing nothing.
//
// Example:
//
//	inst, _ := cutting.NewInstance(10, []int{3, 4}, []int{5, 3})
//	res, err := colgen.Solve(context.Background(), inst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.State, res.Objective) // converged 2.75
package colgen
