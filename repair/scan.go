package repair

import "github.com/katalvlaran/relgrid/grid"

// direction is the ordering a column must follow along ascending
// coverage limits.
type direction int

const (
	// increase: factors converge up toward 1.0 as limit grows.
	increase direction = iota
	// decrease: factors converge down toward 1.0 as limit grows.
	decrease
)

// requiredDirection is the single home of the per-side sign flip around
// the anchor: columns below the rebase level carry factors ≥ 1 that
// must fall toward 1 as limit grows; all other columns carry factors
// ≤ 1 that must rise toward 1.
func requiredDirection(belowAnchor bool) direction {
	if belowAnchor {
		return decrease
	}

	return increase
}

// Scores holds the two same-shaped signed score matrices produced by a
// scan, one entry per grid cell. A strictly negative entry flags a
// violation and its magnitude is a proxy for severity; zero is the
// neutral sentinel (first row/column, exact ties, anchor exemptions).
type Scores struct {
	// Deductible scores the cross-deductible rule: per row, consecutive
	// column differences by ascending deductible, sign inverted so that
	// negative means "violates non-increasing-by-deductible". The first
	// column and the anchor column are forced neutral, so the anchor is
	// never the trigger.
	Deductible [][]float64

	// Limit scores the cross-limit rule: per column, consecutive row
	// differences, negated for below-rebase columns where the required
	// direction is "decreasing toward the anchor". The first row is
	// neutral and the anchor column is exempt end-to-end.
	Limit [][]float64
}

// Scan computes both score matrices over the current grid state. It is
// pure with respect to g: the grid is read, never written.
//
// Complexity: O(R×C) time and memory.
func Scan(g *grid.Grid) Scores {
	rows, cols := g.Rows(), g.Cols()
	anchor := g.AnchorCol()

	ded := make([][]float64, rows)
	lim := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		ded[r] = make([]float64, cols)
		lim[r] = make([]float64, cols)
	}

	// Cross-limit: column by column, row-to-row differences.
	for c := 0; c < cols; c++ {
		if c == anchor {
			continue // anchor column is exempt, fixed at 1
		}
		flip := requiredDirection(g.BelowAnchor(c)) == decrease
		for r := 1; r < rows; r++ {
			d := g.At(r, c) - g.At(r-1, c)
			if flip {
				d = -d
			}
			lim[r][c] = d
		}
	}

	// Cross-deductible: row by row, column-to-column differences.
	for r := 0; r < rows; r++ {
		for c := 1; c < cols; c++ {
			if c == anchor {
				continue // the anchor must never be the trigger
			}
			ded[r][c] = -(g.At(r, c) - g.At(r, c-1))
		}
	}

	return Scores{Deductible: ded, Limit: lim}
}

// HasViolation reports whether either matrix contains a strictly
// negative entry.
func (s Scores) HasViolation() bool {
	_, ok := s.Worst()

	return ok
}

// Worst returns the globally most negative score across both matrices
// and the cell that triggers it, or ok=false when no violation exists.
//
// Ties are broken deterministically by an explicit column-major linear
// scan (row varies fastest within a column, then the next column), so
// the leftmost/topmost offender wins; at the same cell the
// cross-deductible matrix is consulted before the cross-limit one.
func (s Scores) Worst() (Violation, bool) {
	var best Violation
	found := false

	rows := len(s.Deductible)
	if rows == 0 {
		return best, false
	}
	cols := len(s.Deductible[0])

	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if v := s.Deductible[r][c]; v < 0 && (!found || v < best.Score) {
				best = Violation{Rule: RuleDeductible, Row: r, Col: c, Score: v}
				found = true
			}
			if v := s.Limit[r][c]; v < 0 && (!found || v < best.Score) {
				best = Violation{Rule: RuleLimit, Row: r, Col: c, Score: v}
				found = true
			}
		}
	}

	return best, found
}

// Satisfies reports whether g already meets both monotonicity rules,
// i.e. a scan finds no violation. Useful as a post-condition check
// without running the repair loop.
func Satisfies(g *grid.Grid) bool {
	return !Scan(g).HasViolation()
}
