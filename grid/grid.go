package grid

import "math"

// New constructs a Grid from a non-empty rectangular table and its two
// level axes. It deep-copies values to ensure the caller cannot mutate
// the table behind the repair engine's back.
//
// Returns ErrShape if the table is empty or ragged, if len(limits) or
// len(deductibles) does not match the table dimensions, or if either
// axis is not strictly ascending. Returns ErrConfig if opts.Fixed is
// true and opts.RebaseLevel is absent from deductibles.
//
// Complexity: O(R×C) time and memory.
func New(values [][]float64, deductibles, limits []float64, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrShape
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrShape
		}
	}
	if len(limits) != rows || len(deductibles) != cols {
		return nil, ErrShape
	}
	if !strictlyAscending(deductibles) || !strictlyAscending(limits) {
		return nil, ErrShape
	}

	anchor := -1
	if opts.Fixed {
		for c, lvl := range deductibles {
			if lvl == opts.RebaseLevel {
				anchor = c
				break
			}
		}
		if anchor < 0 {
			return nil, ErrConfig
		}
	}

	// Deep copy to prevent external mutation.
	cells := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]float64, cols)
		copy(cells[r], values[r])
	}
	ded := make([]float64, cols)
	copy(ded, deductibles)
	lim := make([]float64, rows)
	copy(lim, limits)

	return &Grid{
		values:      cells,
		deductibles: ded,
		limits:      lim,
		fixed:       opts.Fixed,
		rebase:      opts.RebaseLevel,
		anchorCol:   anchor,
	}, nil
}

// strictlyAscending reports whether levels are strictly increasing with
// no duplicates. An axis of length 1 is trivially ascending.
func strictlyAscending(levels []float64) bool {
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			return false
		}
	}

	return true
}

// Rows returns the number of coverage-limit levels.
func (g *Grid) Rows() int { return len(g.values) }

// Cols returns the number of deductible levels.
func (g *Grid) Cols() int { return len(g.values[0]) }

// At returns the factor at (row r, column c). Bounds are the caller's
// contract; out-of-range indices panic.
func (g *Grid) At(r, c int) float64 { return g.values[r][c] }

// Set overwrites the factor at (row r, column c).
func (g *Grid) Set(r, c int, v float64) { g.values[r][c] = v }

// Deductibles returns a copy of the ascending deductible axis.
func (g *Grid) Deductibles() []float64 {
	out := make([]float64, len(g.deductibles))
	copy(out, g.deductibles)

	return out
}

// Limits returns a copy of the ascending coverage-limit axis.
func (g *Grid) Limits() []float64 {
	out := make([]float64, len(g.limits))
	copy(out, g.limits)

	return out
}

// Fixed reports whether the grid is anchored at a rebase level.
func (g *Grid) Fixed() bool { return g.fixed }

// RebaseLevel returns the configured rebase level. Meaningless when
// Fixed is false.
func (g *Grid) RebaseLevel() float64 { return g.rebase }

// AnchorCol returns the index of the anchor column, or -1 when the grid
// is not in fixed mode.
func (g *Grid) AnchorCol() int { return g.anchorCol }

// BelowAnchor reports whether column c lies strictly below the rebase
// level. Always false in non-fixed mode, where no column is privileged.
func (g *Grid) BelowAnchor(c int) bool {
	return g.fixed && c < g.anchorCol
}

// Clone returns a deep copy of the grid, sharing no mutable state with
// the receiver. The repair trace is built from clones.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cells := make([][]float64, len(g.values))
	for r := range g.values {
		cells[r] = make([]float64, len(g.values[r]))
		copy(cells[r], g.values[r])
	}
	out := *g
	out.values = cells
	out.deductibles = g.Deductibles()
	out.limits = g.Limits()

	return &out
}

// Values returns a deep copy of the raw factor table, rows by
// coverage-limit ascending, columns by deductible ascending.
// Complexity: O(R×C).
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, len(g.values))
	for r := range g.values {
		out[r] = make([]float64, len(g.values[r]))
		copy(out[r], g.values[r])
	}

	return out
}

// Dispersion returns the sum over all cells of |value - 1.0|, the
// distance-to-anchor measure that every repair correction keeps
// non-increasing. Complexity: O(R×C).
func (g *Grid) Dispersion() float64 {
	var sum float64
	for _, row := range g.values {
		for _, v := range row {
			sum += math.Abs(v - 1.0)
		}
	}

	return sum
}
