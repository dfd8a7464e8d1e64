// Package colgen_test provides a runnable example of the full
// column-generation pipeline on a tiny instance.
package colgen_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cutstock/colgen"
	"github.com/katalvlaran/cutstock/cutting"
)

// ExampleSolve solves the classic two-item instance to LP optimality.
// Stock units have length 10; 5 pieces of length 3 and 3 pieces of length 4
// are demanded. The loop prices out the mixed pattern [2 1] in round one and
// proves optimality in round two.
func ExampleSolve() {
	// 1) Build and validate the instance.
	inst, err := cutting.NewInstance(10, []int{3, 4}, []int{5, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run column generation with the default budgets and LP engine.
	res, err := colgen.Solve(context.Background(), inst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Report the relaxation optimum and the usage of each pattern.
	fmt.Println("state:", res.State)
	fmt.Println("iterations:", res.Iterations)
	fmt.Printf("objective: %.2f stock units\n", res.Objective)
	for p := 0; p < res.Patterns.Len(); p++ {
		fmt.Printf("pattern %s used %.2f times, cuts at %v\n",
			res.Patterns.At(p), res.Usage[p], res.Patterns.At(p).Offsets(inst.Lengths()))
	}
	// Output:
	// state: converged
	// iterations: 2
	// objective: 2.75 stock units
	// pattern [3 0] used 0.00 times, cuts at [3 6 9]
	// pattern [0 2] used 0.25 times, cuts at [4 8]
	// pattern [2 1] used 2.50 times, cuts at [3 6 10]
}
