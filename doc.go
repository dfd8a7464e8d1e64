// Package cutstock solves the one-dimensional cutting-stock problem: given
// one stock length and per-item demands, find how to cut stock units into
// demanded pieces using as few units as possible.
//
// 🚀 What is cutstock?
//
//	A column-generation (Gilmore–Gomory) solver for the LP relaxation,
//	organized as small composable packages:
//		• Data model: instances, cutting patterns, duplicate-free pattern sets
//		• Pricing: exact unbounded-knapsack subproblem (dynamic programming)
//		• Master: restricted master LP over known patterns, primal and dual
//		  values via the gonum simplex engine
//		• Loop: the column-generation state machine with wall-clock budgets,
//		  structured logging, and graceful degradation on time limits
//		• Tooling: CSV instance/plan I/O, a deterministic instance generator,
//		  and the cutstock CLI
//
// ✨ Why choose cutstock?
//
//   - Proven optimality – convergence is certified by the pricing bound
//     z* <= 1 + eps, not by iteration heuristics
//   - Predictable – per-solve and global budgets, explicit terminal states,
//     deterministic tie-breaking everywhere
//   - Pure Go – the LP engine is gonum's simplex, no cgo solver bindings
//   - Extensible – swap the LP engine through the master.Solver interface
//
// Package layout:
//
//	cutting/      — Instance, Pattern, PatternSet (the shared data model)
//	knapsack/     — unbounded-knapsack pricing solver
//	master/       — restricted master LP, Solver interface, gonum engine
//	colgen/       — the column-generation loop and its Result
//	instgen/      — seeded random instance generator
//	cutio/        — CSV instance reader/writer and plan reports
//	cmd/cutstock/ — gen and solve subcommands
//
// Quick example:
//
//	inst, _ := cutting.NewInstance(10, []int{3, 4}, []int{5, 3})
//	res, err := colgen.Solve(context.Background(), inst)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.State, res.Objective) // converged 2.75
//
// See each package's doc.go for the full contracts.
package cutstock
