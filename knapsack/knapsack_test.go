// Package knapsack_test verifies the unbounded-knapsack DP against exhaustive
// enumeration on small instances and checks edge cases, tie-breaking,
// validation, and cancellation.
package knapsack_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutstock/knapsack"
)

// bruteForce enumerates every feasible non-negative integer pattern and
// returns the best objective value. Exponential; only used for n <= 8 and
// small capacities in tests.
func bruteForce(capacity int, lengths []int, values []float64) float64 {
	best := 0.0
	pattern := make([]int, len(lengths))

	var walk func(item, remaining int, value float64)
	walk = func(item, remaining int, value float64) {
		if value > best {
			best = value
		}
		if item == len(lengths) {
			return
		}
		// Try every count of item that still fits, then move on.
		for cnt := 0; cnt*lengths[item] <= remaining; cnt++ {
			pattern[item] = cnt
			walk(item+1, remaining-cnt*lengths[item], value+float64(cnt)*values[item])
		}
		pattern[item] = 0
	}
	walk(0, capacity, 0)

	return best
}

// ------------------------------------------------------------------------
// 1. Exactness: DP optimum == exhaustive optimum for all small instances.
// ------------------------------------------------------------------------

func TestSolve_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7)) // deterministic seed for reproducibility

	for trial := 0; trial < 300; trial++ {
		n := 1 + r.Intn(8)       // n in [1,8]
		capacity := r.Intn(51)   // L in [0,50]
		lengths := make([]int, n)
		values := make([]float64, n)
		for i := range lengths {
			lengths[i] = 1 + r.Intn(capacity+5) // some items may exceed capacity
			values[i] = r.Float64()*3 - 1       // values in [-1, 2), may be negative
		}

		pattern, got, err := knapsack.Solve(capacity, lengths, values)
		require.NoError(t, err)

		// The returned pattern must be feasible and reproduce the objective.
		used, val := 0, 0.0
		for i, cnt := range pattern {
			require.GreaterOrEqual(t, cnt, 0)
			used += cnt * lengths[i]
			val += float64(cnt) * values[i]
		}
		assert.LessOrEqual(t, used, capacity)
		assert.InDelta(t, got, val, 1e-9)

		// The DP optimum must equal the exhaustive optimum.
		want := bruteForce(capacity, lengths, values)
		assert.InDelta(t, want, got, 1e-9,
			"trial %d: n=%d L=%d lengths=%v values=%v", trial, n, capacity, lengths, values)
	}
}

// ------------------------------------------------------------------------
// 2. Fixed cases: known optima, edge cases, deterministic tie-breaking.
// ------------------------------------------------------------------------

func TestSolve_KnownOptimum(t *testing.T) {
	// Dual prices from the first master round of the 10/[3,4]/[5,3] instance:
	// w = (1/3, 1/2). Best pattern is [2,1] with value 7/6.
	pattern, best, err := knapsack.Solve(10, []int{3, 4}, []float64{1.0 / 3, 0.5})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, []int(pattern))
	assert.InDelta(t, 7.0/6, best, 1e-12)
}

func TestSolve_AllNonPositiveValues(t *testing.T) {
	// With no positive prices there is no improving column: the zero pattern
	// with value 0 is the correct answer, not an error.
	pattern, best, err := knapsack.Solve(20, []int{3, 4}, []float64{0, -1})
	require.NoError(t, err)
	assert.True(t, pattern.IsZero())
	assert.Zero(t, best)
}

func TestSolve_ZeroCapacity(t *testing.T) {
	pattern, best, err := knapsack.Solve(0, []int{3}, []float64{5})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, []int(pattern))
	assert.Zero(t, best)
}

func TestSolve_OversizedItemNeverChosen(t *testing.T) {
	// Item 1 is longer than the capacity and must never appear, no matter
	// how attractive its price is.
	pattern, best, err := knapsack.Solve(10, []int{5, 11}, []float64{1, 100})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, []int(pattern))
	assert.InDelta(t, 2.0, best, 1e-12)
}

func TestSolve_TieBreakLowestIndex(t *testing.T) {
	// Items 0 and 1 are interchangeable; the lowest index must win so the
	// result is reproducible across runs.
	pattern, best, err := knapsack.Solve(4, []int{2, 2}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, []int(pattern))
	assert.InDelta(t, 2.0, best, 1e-12)
}

// ------------------------------------------------------------------------
// 3. Validation and cancellation.
// ------------------------------------------------------------------------

func TestSolve_Validation(t *testing.T) {
	_, _, err := knapsack.Solve(-1, []int{3}, []float64{1})
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	_, _, err = knapsack.Solve(10, nil, nil)
	assert.ErrorIs(t, err, knapsack.ErrNoItems)

	_, _, err = knapsack.Solve(10, []int{3, 4}, []float64{1})
	assert.ErrorIs(t, err, knapsack.ErrDimensionMismatch)

	_, _, err = knapsack.Solve(10, []int{3, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, knapsack.ErrNonPositiveLength)
}

func TestSolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Capacity is large enough to reach the periodic context check.
	_, _, err := knapsack.Solve(100_000, []int{3}, []float64{1}, knapsack.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithEps_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { knapsack.WithEps(-1)(&knapsack.Options{}) })
}
