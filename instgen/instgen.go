// Package instgen produces random cutting-stock instances for benchmarks and
// demos. Generation is fully deterministic for a given Config (seeded PRNG),
// so generated fixtures are reproducible across runs and machines.
package instgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cutstock/cutting"
)

// ErrBadConfig indicates an inconsistent generator configuration.
var ErrBadConfig = errors.New("instgen: bad generator config")

// Config describes the instance to generate.
//
//   - StockLength: length of one stock unit, > 0.
//   - Items: number of item types, > 0.
//   - MinLength/MaxLength: inclusive item-length range, 0 < Min <= Max.
//     MinLength must not exceed StockLength, so at least one item always fits.
//   - MinDemand/MaxDemand: inclusive demand range, 0 <= Min <= Max.
//   - Seed: PRNG seed; equal configs generate equal instances.
type Config struct {
	StockLength int
	Items       int
	MinLength   int
	MaxLength   int
	MinDemand   int
	MaxDemand   int
	Seed        int64
}

// Generate draws item lengths and demands uniformly from the configured
// ranges and returns a validated instance.
//
// Item lengths above StockLength are allowed by configuration (MaxLength may
// exceed it) and surface through Instance.Oversized as usual; drawn demands
// for such items are forced to zero so the generated instance stays solvable.
//
// Complexity: O(Items).
func Generate(cfg Config) (*cutting.Instance, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	lengths := make([]int, cfg.Items)
	demands := make([]int, cfg.Items)
	for i := 0; i < cfg.Items; i++ {
		lengths[i] = cfg.MinLength + r.Intn(cfg.MaxLength-cfg.MinLength+1)
		demands[i] = cfg.MinDemand + r.Intn(cfg.MaxDemand-cfg.MinDemand+1)
		if lengths[i] > cfg.StockLength {
			demands[i] = 0
		}
	}

	return cutting.NewInstance(cfg.StockLength, lengths, demands)
}

func validate(cfg Config) error {
	switch {
	case cfg.StockLength <= 0:
		return fmt.Errorf("%w: stock length %d must be positive", ErrBadConfig, cfg.StockLength)
	case cfg.Items <= 0:
		return fmt.Errorf("%w: item count %d must be positive", ErrBadConfig, cfg.Items)
	case cfg.MinLength <= 0:
		return fmt.Errorf("%w: min length %d must be positive", ErrBadConfig, cfg.MinLength)
	case cfg.MinLength > cfg.MaxLength:
		return fmt.Errorf("%w: length range [%d,%d] is empty", ErrBadConfig, cfg.MinLength, cfg.MaxLength)
	case cfg.MinLength > cfg.StockLength:
		return fmt.Errorf("%w: min length %d exceeds stock length %d", ErrBadConfig, cfg.MinLength, cfg.StockLength)
	case cfg.MinDemand < 0:
		return fmt.Errorf("%w: min demand %d must be non-negative", ErrBadConfig, cfg.MinDemand)
	case cfg.MinDemand > cfg.MaxDemand:
		return fmt.Errorf("%w: demand range [%d,%d] is empty", ErrBadConfig, cfg.MinDemand, cfg.MaxDemand)
	default:
		return nil
	}
}
