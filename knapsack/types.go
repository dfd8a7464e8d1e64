// Package knapsack defines options and sentinel errors for the exact
// unbounded-knapsack solver used as the column-generation pricing routine.
package knapsack

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solve.
var (
	// ErrNegativeCapacity indicates a negative knapsack capacity.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNoItems indicates an empty item set.
	ErrNoItems = errors.New("knapsack: at least one item is required")

	// ErrDimensionMismatch indicates lengths and values of different sizes.
	ErrDimensionMismatch = errors.New("knapsack: lengths and values differ in size")

	// ErrNonPositiveLength indicates an item of zero or negative length, which
	// would make the unbounded problem ill-defined (infinitely many copies).
	ErrNonPositiveLength = errors.New("knapsack: item length must be positive")

	// ErrInconsistentTable indicates that pattern reconstruction disagreed with
	// the DP value table. This cannot happen for well-formed inputs and exists
	// as a hard consistency check on the capacity table.
	ErrInconsistentTable = errors.New("knapsack: inconsistent capacity table")
)

// Options configures a Solve run.
//
//   - Ctx: context checked periodically during the DP sweep; cancellation or
//     deadline expiry aborts the solve with the context error. Defaults to
//     context.Background().
//   - Eps: strict-improvement tolerance. A candidate replaces the incumbent
//     at a capacity only when it improves by more than Eps, which keeps
//     tie-breaking deterministic (lowest item index wins). Must be >= 0.
//     Defaults to 1e-9.
type Options struct {
	Ctx context.Context
	Eps float64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithContext sets the cancellation context for the DP sweep.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithEps sets the strict-improvement tolerance. Panics on negative values,
// which would invert the acceptance logic.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic("knapsack: Eps must be non-negative")
		}
		o.Eps = eps
	}
}

// DefaultOptions returns the baseline configuration: background context and
// Eps = 1e-9.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
		Eps: 1e-9,
	}
}
