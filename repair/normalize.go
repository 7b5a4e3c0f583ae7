package repair

import "github.com/katalvlaran/relgrid/grid"

// NormalizeAnchor removes anchor crossings before the main loop: data
// errors that put a sub-rebase factor below 1 or a post-rebase factor
// above 1. These are a distinct, higher-priority defect class, so they
// are cleared up front rather than left to the iterative repair.
//
// One deterministic sweep per side, not a fixed point:
//
//   - columns strictly below the rebase level, ascending: any cell < 1
//     is overwritten with the same-row value from the next column one
//     step closer to the anchor;
//   - columns strictly above the rebase level, descending: any cell > 1
//     is overwritten likewise.
//
// Because each side is a single sweep reading its not-yet-processed
// neighbor, pathological inputs needing more than one pass keep
// residual crossings; the main loop does not re-invoke this pass. That
// single-sweep contract is deliberate and covered by tests.
//
// No-op in non-fixed mode. Returns the number of cells rewritten.
// Complexity: O(R×C).
func NormalizeAnchor(g *grid.Grid) int {
	if !g.Fixed() {
		return 0
	}

	anchor := g.AnchorCol()
	rows, cols := g.Rows(), g.Cols()
	rewrites := 0

	for c := 0; c < anchor; c++ {
		for r := 0; r < rows; r++ {
			if g.At(r, c) < anchorValue {
				g.Set(r, c, g.At(r, c+1))
				rewrites++
			}
		}
	}
	for c := cols - 1; c > anchor; c-- {
		for r := 0; r < rows; r++ {
			if g.At(r, c) > anchorValue {
				g.Set(r, c, g.At(r, c-1))
				rewrites++
			}
		}
	}

	return rewrites
}
