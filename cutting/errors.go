package cutting

import "errors"

var (
	// ErrInvalidInstance indicates malformed instance data: mismatched array
	// sizes, zero items, a non-positive stock length, a non-positive item
	// length, or a negative demand.
	ErrInvalidInstance = errors.New("cutting: invalid instance")

	// ErrInfeasibleInstance indicates that no cutting pattern can ever be
	// feasible because every item is longer than the stock unit.
	ErrInfeasibleInstance = errors.New("cutting: no item fits the stock length")

	// ErrDimensionMismatch indicates a pattern whose size differs from the
	// instance item count.
	ErrDimensionMismatch = errors.New("cutting: pattern size does not match item count")

	// ErrDuplicatePattern indicates an attempt to append a pattern that is
	// already present in the set.
	ErrDuplicatePattern = errors.New("cutting: pattern already present in set")

	// ErrNegativeCount indicates a pattern containing a negative item count.
	ErrNegativeCount = errors.New("cutting: pattern item count must be non-negative")
)
