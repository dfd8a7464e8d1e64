package colgen_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cutstock/colgen"
	"github.com/katalvlaran/cutstock/cutting"
)

// buildRandomInstance constructs a deterministic instance with n item types
// against stock length L. Lengths are uniform in [L/10, L/2], demands in
// [1, 100].
func buildRandomInstance(b *testing.B, n, stock int, seed int64) *cutting.Instance {
	b.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility

	lengths := make([]int, n)
	demands := make([]int, n)
	lo := stock/10 + 1
	hi := stock / 2
	for i := 0; i < n; i++ {
		lengths[i] = lo + r.Intn(hi-lo+1)
		demands[i] = 1 + r.Intn(100)
	}

	inst, err := cutting.NewInstance(stock, lengths, demands)
	if err != nil {
		b.Fatal(err)
	}

	return inst
}

// BenchmarkSolve measures full column-generation runs. Each iteration pays
// for every master and pricing solve until convergence.
func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		name  string
		items int
		stock int
	}{
		{"Small_5x50", 5, 50},
		{"Medium_15x200", 15, 200},
		{"Large_30x1000", 30, 1000},
	}

	for _, bc := range cases {
		inst := buildRandomInstance(b, bc.items, bc.stock, 42)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := colgen.Solve(context.Background(), inst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
