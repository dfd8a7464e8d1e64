// Package colgen - the Gilmore-Gomory column-generation loop.
//
// Each round: (1) solve the restricted master problem over the current
// pattern set, obtaining per-item dual prices w; (2) price a new pattern by
// solving the unbounded knapsack max sum w[i]*a[i] s.t. sum len[i]*a[i] <= L
// exactly; (3) if the pricing optimum z* <= 1 + Eps, no column with negative
// reduced cost 1 - z* exists and the relaxation is proven optimal; otherwise
// append the pattern and repeat. The pattern set is append-only and
// duplicate-free, which bounds the number of rounds by the (finite) number of
// distinct feasible patterns and so guarantees termination.
package colgen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cutstock/cutting"
	"github.com/katalvlaran/cutstock/knapsack"
	"github.com/katalvlaran/cutstock/master"
)

// Solve drives column generation on inst until convergence, budget
// exhaustion, or failure.
//
// Returns:
//
//   - (*Result, nil) with StateConverged or StateTimeExpired; see Result for
//     the exact snapshot semantics of each.
//   - (nil, error) on validation failure (ErrNilInstance, wrapped
//     cutting.ErrInfeasibleInstance when a demanded item cannot fit the
//     stock), on external context cancellation, or on an unrecovered solver
//     failure — the error then carries the failing iteration and elapsed
//     time.
//
// The loop is strictly sequential: no round starts before the previous
// round's master and pricing solves complete. Budgets are cooperative and
// checked once per round boundary.
func Solve(ctx context.Context, inst *cutting.Instance, opts ...Option) (*Result, error) {
	// 1) Normalize options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// 2) Validate collaborators before any solving.
	if inst == nil {
		return nil, ErrNilInstance
	}

	start := time.Now()

	// 3) INITIALIZING: one single-item seed pattern per fitting item type,
	//    floor(L/len_i) copies of item i. Every demand row can then be
	//    covered by a high-enough multiple of its own seed pattern, so the
	//    first RMP is feasible by construction.
	set, err := seedPatterns(inst, log)
	if err != nil {
		return nil, err
	}
	log.Info("seeded initial patterns",
		zap.Int("items", inst.NumItems()),
		zap.Int("patterns", set.Len()))

	mopts := []master.Option{master.WithBudget(cfg.MasterBudget)}
	if cfg.Solver != nil {
		mopts = append(mopts, master.WithSolver(cfg.Solver))
	}
	prob, err := master.New(inst, set, mopts...)
	if err != nil {
		return nil, err
	}

	lengths := inst.Lengths()
	res := &Result{
		State:    StateIterating,
		Patterns: set,
	}

	// 4) ITERATING.
	for {
		// 4a) External cancellation wins over graceful budget handling.
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// 4b) Budget checks at the round boundary.
		if cfg.GlobalBudget > 0 && time.Since(start) >= cfg.GlobalBudget {
			res.State = StateTimeExpired
			log.Warn("global budget exhausted; result not proven optimal",
				zap.Int("iterations", res.Iterations),
				zap.Duration("elapsed", time.Since(start)))

			break
		}
		if cfg.MaxIterations > 0 && res.Iterations >= cfg.MaxIterations {
			res.State = StateTimeExpired
			log.Warn("iteration cap reached; result not proven optimal",
				zap.Int("iterations", res.Iterations))

			break
		}
		res.Iterations++

		// 4c) Master solve under its per-solve budget.
		mctx := ctx
		var cancel context.CancelFunc = func() {}
		if cfg.MasterBudget > 0 {
			mctx, cancel = context.WithTimeout(ctx, cfg.MasterBudget)
		}
		mres, merr := prob.Solve(mctx)
		cancel()
		if merr != nil {
			res.State = StateFailed
			log.Error("master solve failed; aborting",
				zap.Int("iteration", res.Iterations),
				zap.Error(merr))

			return nil, fmt.Errorf("colgen: iteration %d after %s: %w",
				res.Iterations, time.Since(start).Round(time.Millisecond), merr)
		}
		if mres.Status == master.StatusTimeLimit {
			// Non-fatal degradation: proceed with the approximate duals.
			log.Warn("master budget exceeded; using approximate duals",
				zap.Int("iteration", res.Iterations),
				zap.Float64("objective", mres.Objective))
		}
		res.Usage = mres.Usage
		res.Objective = mres.Objective
		res.Duals = mres.Duals

		// 4d) Pricing solve under its per-solve budget.
		pctx := ctx
		cancel = func() {}
		if cfg.PricingBudget > 0 {
			pctx, cancel = context.WithTimeout(ctx, cfg.PricingBudget)
		}
		pattern, best, perr := knapsack.Solve(inst.StockLength(), lengths, mres.Duals,
			knapsack.WithContext(pctx), knapsack.WithEps(cfg.Eps))
		cancel()
		if perr != nil {
			res.State = StateFailed
			log.Error("pricing solve failed; aborting",
				zap.Int("iteration", res.Iterations),
				zap.Error(perr))

			return nil, fmt.Errorf("colgen: iteration %d after %s: pricing: %w",
				res.Iterations, time.Since(start).Round(time.Millisecond), perr)
		}

		// 4e) Convergence test: reduced cost of the best column is 1 - z*.
		//     z* <= 1 + Eps means no strictly improving pattern exists.
		if best <= 1+cfg.Eps {
			res.State = StateConverged
			log.Info("converged",
				zap.Int("iterations", res.Iterations),
				zap.Float64("objective", mres.Objective),
				zap.Float64("pricing_value", best))

			break
		}

		// 4f) Strict-progress guard: appending a pattern twice would let the
		//     loop cycle forever, so a duplicate ends the run. At an optimal
		//     master solve a known column can never price above 1, so this
		//     only fires on numerical noise or approximate (time-limited)
		//     duals — the incumbent solution is kept and reported.
		if set.Contains(pattern) {
			res.State = StateConverged
			log.Warn("pricing regenerated a known pattern; stopping on incumbent",
				zap.Int("iteration", res.Iterations),
				zap.String("pattern", pattern.String()),
				zap.Float64("pricing_value", best))

			break
		}
		pos, aerr := set.Append(pattern)
		if aerr != nil {
			// Unreachable after the Contains check; guards the set invariant.
			res.State = StateFailed

			return nil, fmt.Errorf("colgen: iteration %d: %w", res.Iterations, aerr)
		}
		log.Info("appended pattern",
			zap.Int("iteration", res.Iterations),
			zap.Int("position", pos),
			zap.String("pattern", pattern.String()),
			zap.Float64("pricing_value", best),
			zap.Float64("objective", mres.Objective))
	}

	// 5) Terminal bookkeeping: every outcome reports rounds and elapsed time.
	res.Elapsed = time.Since(start)
	log.Info("finished",
		zap.Stringer("state", res.State),
		zap.Int("iterations", res.Iterations),
		zap.Int("patterns", res.Patterns.Len()),
		zap.Float64("objective", res.Objective),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// seedPatterns builds the initial pattern set: for every item i that fits the
// stock, a pattern with floor(L/len_i) copies of item i and zeros elsewhere.
// Oversized items contribute no seed; if such an item carries positive
// demand, no pattern can ever satisfy it and the instance is infeasible.
func seedPatterns(inst *cutting.Instance, log *zap.Logger) (*cutting.PatternSet, error) {
	n := inst.NumItems()
	stock := inst.StockLength()
	set := cutting.NewPatternSet(n)

	for i := 0; i < n; i++ {
		if inst.Length(i) > stock {
			if inst.Demand(i) > 0 {
				return nil, fmt.Errorf("%w: item %d length %d exceeds stock %d with demand %d",
					cutting.ErrInfeasibleInstance, i, inst.Length(i), stock, inst.Demand(i))
			}
			log.Warn("item exceeds stock length; no seed pattern",
				zap.Int("item", i),
				zap.Int("length", inst.Length(i)))

			continue
		}

		p := make(cutting.Pattern, n)
		p[i] = stock / inst.Length(i)
		if _, err := set.Append(p); err != nil {
			// Single-item seeds are pairwise distinct; guards the invariant.
			return nil, fmt.Errorf("colgen: seeding item %d: %w", i, err)
		}
	}

	return set, nil
}
