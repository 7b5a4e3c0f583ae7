// Package grid: core types, options, and sentinel errors for the factor
// table consumed by github.com/katalvlaran/relgrid/repair.
package grid

import "errors"

// Sentinel errors for grid construction. Callers match them with
// errors.Is; New never wraps foreign errors.
var (
	// ErrShape indicates a malformed table: no rows or columns, ragged
	// rows, a level axis whose length differs from the table dimension,
	// or a level axis that is not strictly ascending (duplicates count
	// as a violation).
	ErrShape = errors.New("grid: table shape and level axes must agree, with strictly ascending levels")

	// ErrConfig indicates fixed mode was requested without a rebase
	// level present in the deductible axis.
	ErrConfig = errors.New("grid: fixed mode requires the rebase level to be a deductible level")
)

// Options configures the anchor geometry of a Grid.
type Options struct {
	// Fixed anchors the grid at RebaseLevel. When false the grid has no
	// privileged column and RebaseLevel is ignored.
	Fixed bool

	// RebaseLevel is the deductible level whose column carries the
	// anchor factor of exactly 1.0. Required when Fixed is true; it must
	// be a member of the deductible axis.
	RebaseLevel float64
}

// DefaultOptions returns the default anchor geometry: fixed mode.
// RebaseLevel has no sensible default and must be set by the caller.
func DefaultOptions() Options {
	return Options{Fixed: true}
}

// Grid is the mutable 2-D table of pricing factors. Rows correspond
// one-to-one with coverage-limit levels (ascending), columns with
// deductible levels (ascending). Exactly one logical owner mutates a
// Grid per repair invocation; the type itself is not synchronized.
type Grid struct {
	values      [][]float64
	deductibles []float64
	limits      []float64

	fixed     bool
	rebase    float64
	anchorCol int // -1 when not fixed
}
