package repair

import (
	"math"

	"github.com/katalvlaran/relgrid/grid"
)

// Repair drives g to a state satisfying both monotonicity rules, or
// fails if no fixed point is reached within opts.MaxIters rounds.
//
// Each round: scan the grid, stop if no violation remains, otherwise
// collapse the offending pair behind the globally worst violation and
// snapshot the grid into the trace. After the cap, one final scan
// decides between convergence and *NonConvergenceError.
//
// g is mutated in place and returned inside Result for convenience.
// Deterministic: identical inputs reproduce identical grids and traces.
//
// Errors: grid.ErrShape for a nil grid, ErrConfig for MaxIters < 1,
// ErrNonConvergence (as *NonConvergenceError) on cap exhaustion.
//
// Complexity: O(MaxIters × R×C) time, O(len(trace) × R×C) memory.
func Repair(g *grid.Grid, opts Options) (Result, error) {
	if g == nil {
		return Result{}, grid.ErrShape
	}
	if opts.MaxIters < 1 {
		return Result{}, ErrConfig
	}

	NormalizeAnchor(g)

	var trace []*grid.Grid
	for iter := 0; iter < opts.MaxIters; iter++ {
		v, ok := Scan(g).Worst()
		if !ok {
			return Result{Grid: g, Trace: trace}, nil
		}
		collapse(g, v)
		trace = append(trace, g.Clone())
	}

	if sc := Scan(g); sc.HasViolation() {
		return Result{}, &NonConvergenceError{Grid: g, Scores: sc, Rounds: opts.MaxIters}
	}

	return Result{Grid: g, Trace: trace}, nil
}

// RepairTable builds a Grid from a raw table plus level axes and
// delegates to Repair. Convenience entry for callers holding plain
// slices rather than a constructed *grid.Grid.
func RepairTable(values [][]float64, deductibles, limits []float64, gopts grid.Options, opts Options) (Result, error) {
	g, err := grid.New(values, deductibles, limits, gopts)
	if err != nil {
		return Result{}, err
	}

	return Repair(g, opts)
}

// collapse corrects the single violation v by collapsing its offending
// pair: the triggering cell plus its rule-axis neighbor.
//
//   - Cross-deductible: the neighbor is one column closer to the rebase
//     level in the same row (always the predecessor column in non-fixed
//     mode, where BelowAnchor is uniformly false).
//   - Cross-limit: the neighbor is the previous row in the same column.
//
// Within the pair, the cell with the larger |value-1| adopts the value
// of the cell with the smaller one; on an exact tie the triggering cell
// is left unchanged and the neighbor is overwritten. Either way the
// corrected cell's distance to the anchor shrinks, so total dispersion
// never grows and no interpolated value is invented.
func collapse(g *grid.Grid, v Violation) {
	r1, c1 := v.Row, v.Col
	r2, c2 := r1, c1
	switch v.Rule {
	case RuleDeductible:
		if g.BelowAnchor(c1) {
			c2 = c1 + 1
		} else {
			c2 = c1 - 1
		}
	case RuleLimit:
		r2 = r1 - 1
	}

	d1 := math.Abs(g.At(r1, c1) - anchorValue)
	d2 := math.Abs(g.At(r2, c2) - anchorValue)
	if d1 > d2 {
		g.Set(r1, c1, g.At(r2, c2))
	} else {
		g.Set(r2, c2, g.At(r1, c1))
	}
}
