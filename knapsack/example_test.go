// Package knapsack_test provides runnable examples for the pricing solver.
package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/cutstock/knapsack"
)

// ExampleSolve demonstrates pricing a new cutting pattern from dual prices.
// Complexity: O(n*L) for n item types and capacity L.
func ExampleSolve() {
	// 1) Stock of length 10; items of length 3 and 4 priced at 1/3 and 1/2.
	lengths := []int{3, 4}
	values := []float64{1.0 / 3, 0.5}

	// 2) Find the most valuable feasible pattern.
	pattern, best, err := knapsack.Solve(10, lengths, values)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The best packing is two 3s and one 4: value 2/3 + 1/2 = 7/6.
	fmt.Println("pattern:", pattern)
	fmt.Printf("value: %.4f\n", best)
	// Output:
	// pattern: [2 1]
	// value: 1.1667
}
