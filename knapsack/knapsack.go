// Package knapsack implements the exact unbounded-knapsack optimizer that
// serves as the pricing subproblem of column generation.
//
// Given a capacity L, item lengths len[i] > 0 and real-valued item values
// w[i] (dual prices, possibly negative), Solve finds
//
//	a* = argmax_{a >= 0 integer} sum_i w[i]*a[i]
//	subject to       sum_i len[i]*a[i] <= L
//
// Each item type may be used any non-negative number of times (unbounded,
// not 0/1). The solve is exact: approximate pricing would break the
// correctness of the surrounding column-generation loop.
//
// Algorithm: dynamic programming over capacity. dp[c] is the best value
// achievable with capacity c, choice[c] the item used to reach it (-1 when
// dp[c] is inherited from dp[c-1]). The optimal pattern is reconstructed by
// walking choice[] back from c = L.
//
// Complexity: O(n*L) time, O(L) space for the tables plus O(n) output.
package knapsack

import (
	"fmt"

	"github.com/katalvlaran/cutstock/cutting"
)

// ctxCheckStride is how many capacity rows are processed between context
// checks. The DP row is cheap, so checking every row would dominate runtime.
const ctxCheckStride = 4096

// Solve computes the exact optimum of the unbounded knapsack.
//
// Returns the optimal pattern (one count per item, index-aligned with
// lengths) and its objective value. When no item has positive value the
// all-zero pattern with value 0 is returned, which correctly signals to the
// caller that no improving column exists. A zero capacity likewise yields the
// all-zero pattern.
//
// Tie-breaking is deterministic: candidates are scanned in ascending item
// index and replace the incumbent only on strict improvement (> Eps), so the
// lowest item index wins among equals and results are reproducible.
//
// Errors: ErrNegativeCapacity, ErrNoItems, ErrDimensionMismatch,
// ErrNonPositiveLength, ErrInconsistentTable, or the context error when the
// configured Ctx is cancelled mid-sweep.
func Solve(capacity int, lengths []int, values []float64, opts ...Option) (cutting.Pattern, float64, error) {
	// 1) Normalize options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs, fail fast before any allocation.
	if capacity < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if len(lengths) == 0 {
		return nil, 0, ErrNoItems
	}
	if len(lengths) != len(values) {
		return nil, 0, fmt.Errorf("%w: %d lengths vs %d values", ErrDimensionMismatch, len(lengths), len(values))
	}
	for i, l := range lengths {
		if l <= 0 {
			return nil, 0, fmt.Errorf("%w: item %d length %d", ErrNonPositiveLength, i, l)
		}
	}

	n := len(lengths)

	// 3) Trivial capacity: nothing fits, the zero pattern is optimal.
	if capacity == 0 {
		return make(cutting.Pattern, n), 0, nil
	}

	// 4) DP sweep over capacities 1..L.
	//    dp[c]     = best achievable value with capacity c (dp[0] = 0).
	//    choice[c] = item index used to reach dp[c], or -1 when dp[c] was
	//                inherited from dp[c-1] (i.e. capacity c-th unit unused).
	dp := make([]float64, capacity+1)
	choice := make([]int, capacity+1)
	choice[0] = -1

	for c := 1; c <= capacity; c++ {
		// 4a) Periodic cancellation check; the row itself is O(n).
		if c%ctxCheckStride == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return nil, 0, err
			}
		}

		// 4b) Baseline: inherit the best value of the next-smaller capacity.
		dp[c] = dp[c-1]
		choice[c] = -1

		// 4c) Try ending the packing of capacity c with one copy of item i.
		//     Ascending index + strict improvement = lowest index wins ties.
		for i, l := range lengths {
			if l > c {
				continue
			}
			if cand := dp[c-l] + values[i]; cand > dp[c]+cfg.Eps {
				dp[c] = cand
				choice[c] = i
			}
		}
	}

	// 5) Reconstruct the optimal pattern by walking choice[] back from L:
	//    a -1 entry steps down one capacity unit, an item entry consumes the
	//    item's length and increments its count.
	pattern := make(cutting.Pattern, n)
	used := 0
	for c := capacity; c > 0; {
		i := choice[c]
		if i < 0 {
			c--
			continue
		}
		pattern[i]++
		used += lengths[i]
		c -= lengths[i]
	}

	// 6) Consistency check on the capacity table: the reconstructed pattern
	//    must fit and must reproduce dp[L] from the item values exactly
	//    (up to floating-point accumulation noise).
	if used > capacity {
		return nil, 0, fmt.Errorf("%w: reconstructed length %d exceeds capacity %d", ErrInconsistentTable, used, capacity)
	}
	value := 0.0
	for i, cnt := range pattern {
		value += float64(cnt) * values[i]
	}
	if diff := value - dp[capacity]; diff > reconstructTol || diff < -reconstructTol {
		return nil, 0, fmt.Errorf("%w: reconstructed value %g vs table value %g", ErrInconsistentTable, value, dp[capacity])
	}

	return pattern, dp[capacity], nil
}

// reconstructTol bounds the acceptable gap between the walked-back pattern
// value and dp[L]. It is independent from Options.Eps, which governs strict
// improvement during the sweep.
const reconstructTol = 1e-6
