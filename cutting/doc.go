// Package cutting defines the core data model of the one-dimensional
// cutting-stock problem (CSP): the immutable problem Instance, the Pattern
// value object, and the append-only PatternSet used by the column-generation
// solver.
//
// Model:
//
//   - Instance: one stock unit of fixed positive length, plus n item types,
//     each with a positive required length and a non-negative demand.
//     Item identity is positional: lengths[i] and demands[i] describe item i.
//   - Pattern: how many pieces of each item type are cut from one stock unit.
//     Feasibility invariant: sum(pattern[i]*length[i]) <= stockLength.
//   - PatternSet: an ordered, append-only, duplicate-free collection of
//     patterns. Position p is the decision-variable identity of pattern p in
//     the restricted master problem, so entries are never reordered or
//     removed. Duplicate-freedom is required for the termination guarantee of
//     column generation, not merely an optimization.
//
// Validation:
//
//   - NewInstance fails fast with ErrInvalidInstance on malformed data
//     (mismatched array sizes, zero items, non-positive stock or item
//     lengths, negative demands).
//   - NewInstance fails with ErrInfeasibleInstance when every item is longer
//     than the stock unit, since then no pattern can ever be feasible.
//   - Items that individually exceed the stock length (while others fit) are
//     a warning condition surfaced via Instance.Oversized; satisfying their
//     demand is impossible and must be rejected by the solver that needs it.
//
// Reporting:
//
//   - Pattern.Offsets exposes, per pattern, the ordered cut positions along
//     the stock unit (cumulative piece lengths in item-index order). This is
//     the only obligation the core has towards reporting or visualization
//     collaborators; file and chart output live outside this module's core.
//
// Errors (sentinel): ErrInvalidInstance, ErrInfeasibleInstance,
// ErrDimensionMismatch, ErrDuplicatePattern, ErrNegativeCount.
//
// All types in this package are plain values or single-owner containers;
// concurrent readers are safe, concurrent writers must synchronize externally.
package cutting
