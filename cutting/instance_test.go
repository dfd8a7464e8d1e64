// Package cutting_test contains unit tests for instance construction and
// validation: shape checks, value checks, oversized-item warnings, and the
// all-items-oversized infeasibility case.
package cutting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutstock/cutting"
)

// ------------------------------------------------------------------------
// 1. Validation: malformed inputs must fail fast with ErrInvalidInstance.
// ------------------------------------------------------------------------

func TestNewInstance_Validation(t *testing.T) {
	cases := []struct {
		name    string
		stock   int
		lengths []int
		demands []int
		wantErr error
	}{
		{"MismatchedSizes", 10, []int{3, 4}, []int{5}, cutting.ErrInvalidInstance},
		{"EmptyLengths", 10, nil, []int{1}, cutting.ErrInvalidInstance},
		{"EmptyDemands", 10, []int{3}, nil, cutting.ErrInvalidInstance},
		{"ZeroStock", 0, []int{3}, []int{1}, cutting.ErrInvalidInstance},
		{"NegativeStock", -4, []int{3}, []int{1}, cutting.ErrInvalidInstance},
		{"ZeroItemLength", 10, []int{3, 0}, []int{1, 1}, cutting.ErrInvalidInstance},
		{"NegativeItemLength", 10, []int{3, -2}, []int{1, 1}, cutting.ErrInvalidInstance},
		{"NegativeDemand", 10, []int{3, 4}, []int{5, -1}, cutting.ErrInvalidInstance},
		{"AllOversized", 10, []int{11, 12}, []int{1, 1}, cutting.ErrInfeasibleInstance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := cutting.NewInstance(tc.stock, tc.lengths, tc.demands)
			require.Nil(t, in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Construction: accessors, immutability, oversized warnings.
// ------------------------------------------------------------------------

func TestNewInstance_Accessors(t *testing.T) {
	in, err := cutting.NewInstance(10, []int{3, 4}, []int{5, 3})
	require.NoError(t, err)

	assert.Equal(t, 10, in.StockLength())
	assert.Equal(t, 2, in.NumItems())
	assert.Equal(t, 3, in.Length(0))
	assert.Equal(t, 4, in.Length(1))
	assert.Equal(t, 5, in.Demand(0))
	assert.Equal(t, 3, in.Demand(1))
	assert.Equal(t, []int{3, 4}, in.Lengths())
	assert.Equal(t, []int{5, 3}, in.Demands())
	assert.Empty(t, in.Oversized())
}

func TestNewInstance_CopiesInput(t *testing.T) {
	lengths := []int{3, 4}
	demands := []int{5, 3}
	in, err := cutting.NewInstance(10, lengths, demands)
	require.NoError(t, err)

	// Mutating the caller slices must not affect the instance.
	lengths[0] = 99
	demands[1] = -7
	assert.Equal(t, 3, in.Length(0))
	assert.Equal(t, 3, in.Demand(1))

	// Mutating accessor results must not affect the instance either.
	in.Lengths()[1] = 42
	assert.Equal(t, 4, in.Length(1))
}

func TestNewInstance_SomeOversized(t *testing.T) {
	// Item 1 (length 15) exceeds the stock but item 0 fits, so construction
	// succeeds and the oversized index is reported as a warning condition.
	in, err := cutting.NewInstance(10, []int{5, 15, 12}, []int{2, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, in.Oversized())
}
