package cutting

import "fmt"

// Instance is the immutable problem data of a one-dimensional cutting-stock
// instance: one stock length, and per item type a required length and a
// demanded quantity. Item index is positional and stable: lengths[i] and
// demands[i] describe the same item type everywhere in this module.
//
// Instances are created once via NewInstance and never mutated afterwards;
// all accessors either return scalars or defensive copies.
type Instance struct {
	stockLength int
	lengths     []int
	demands     []int
	oversized   []int // indexes of items with length > stockLength, ascending
}

// NewInstance validates raw length/demand data and constructs an Instance.
//
// Validation rules (checked in order, fail-fast):
//  1. len(lengths) == len(demands), both non-empty  — else ErrInvalidInstance.
//  2. stockLength > 0                               — else ErrInvalidInstance.
//  3. every lengths[i] > 0                          — else ErrInvalidInstance.
//  4. every demands[i] >= 0                         — else ErrInvalidInstance.
//  5. at least one item fits the stock              — else ErrInfeasibleInstance.
//
// Items longer than the stock unit are allowed as long as at least one item
// fits; such items can never appear in a feasible pattern and are reported by
// Oversized so that callers may warn (and must fail later if those items carry
// positive demand).
//
// Complexity: O(n) time, O(n) space for the defensive copies.
func NewInstance(stockLength int, lengths, demands []int) (*Instance, error) {
	// 1) Shape checks: equal, non-zero item counts.
	if len(lengths) == 0 || len(demands) == 0 {
		return nil, fmt.Errorf("%w: instance must contain at least one item", ErrInvalidInstance)
	}
	if len(lengths) != len(demands) {
		return nil, fmt.Errorf("%w: %d lengths vs %d demands", ErrInvalidInstance, len(lengths), len(demands))
	}

	// 2) Stock must have positive length.
	if stockLength <= 0 {
		return nil, fmt.Errorf("%w: stock length %d must be positive", ErrInvalidInstance, stockLength)
	}

	// 3+4) Per-item value checks, collecting oversized indexes on the way.
	var oversized []int
	for i, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: item %d length %d must be positive", ErrInvalidInstance, i, l)
		}
		if demands[i] < 0 {
			return nil, fmt.Errorf("%w: item %d demand %d must be non-negative", ErrInvalidInstance, i, demands[i])
		}
		if l > stockLength {
			oversized = append(oversized, i)
		}
	}

	// 5) If nothing fits, no pattern can ever exist.
	if len(oversized) == len(lengths) {
		return nil, fmt.Errorf("%w: stock length %d", ErrInfeasibleInstance, stockLength)
	}

	// Copy inputs so later mutation of caller slices cannot corrupt the instance.
	in := &Instance{
		stockLength: stockLength,
		lengths:     append([]int(nil), lengths...),
		demands:     append([]int(nil), demands...),
		oversized:   oversized,
	}

	return in, nil
}

// StockLength returns the length of one stock unit.
func (in *Instance) StockLength() int { return in.stockLength }

// NumItems returns the number of item types n.
func (in *Instance) NumItems() int { return len(in.lengths) }

// Length returns the required length of item i. Panics if i is out of range,
// matching slice-index semantics.
func (in *Instance) Length(i int) int { return in.lengths[i] }

// Demand returns the demanded quantity of item i.
func (in *Instance) Demand(i int) int { return in.demands[i] }

// Lengths returns a copy of the per-item lengths, index-aligned with Demands.
func (in *Instance) Lengths() []int { return append([]int(nil), in.lengths...) }

// Demands returns a copy of the per-item demands, index-aligned with Lengths.
func (in *Instance) Demands() []int { return append([]int(nil), in.demands...) }

// Oversized returns the ascending indexes of items whose length exceeds the
// stock length. These items can never appear in a feasible pattern; an empty
// result means every item fits. The returned slice is a copy.
func (in *Instance) Oversized() []int { return append([]int(nil), in.oversized...) }
