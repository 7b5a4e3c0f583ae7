// Package repair: options, result types, and sentinel errors for the
// grid repair engine.
package repair

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relgrid/grid"
)

// anchorValue is the factor defined for the rebase level. Every
// correction collapses toward it and the anchor column never leaves it.
const anchorValue = 1.0

// DefaultMaxIters is the default hard cap on correction rounds.
const DefaultMaxIters = 100

// Sentinel errors for the repair engine.
var (
	// ErrConfig indicates invalid engine options (MaxIters < 1).
	ErrConfig = errors.New("repair: MaxIters must be at least 1")

	// ErrNonConvergence indicates the round cap was exhausted while
	// violations still existed. The concrete error is always a
	// *NonConvergenceError; match this sentinel with errors.Is.
	ErrNonConvergence = errors.New("repair: iteration cap exhausted with violations remaining")
)

// NonConvergenceError reports a repair run that hit its round cap with
// violations still present. It carries the last grid state and the
// score matrices at the moment of failure so the caller can inspect the
// data or retry with a higher cap.
type NonConvergenceError struct {
	// Grid is the grid as it stood when the cap was hit (the same
	// instance the caller passed in; it has been mutated in place).
	Grid *grid.Grid

	// Scores holds both violation matrices from the final scan.
	Scores Scores

	// Rounds is the number of corrections applied before giving up.
	Rounds int
}

// Error implements the error interface.
func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("repair: no fixed point after %d rounds", e.Rounds)
}

// Unwrap lets errors.Is(err, ErrNonConvergence) match.
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// Rule identifies which monotonicity rule a violation belongs to.
type Rule int

const (
	// RuleDeductible is the cross-deductible rule: within a row, factors
	// must be non-increasing by ascending deductible.
	RuleDeductible Rule = iota

	// RuleLimit is the cross-limit rule: within a column, factors must
	// move monotonically toward 1.0 by ascending coverage limit.
	RuleLimit
)

// String returns a short human-readable rule name.
func (r Rule) String() string {
	switch r {
	case RuleDeductible:
		return "cross-deductible"
	case RuleLimit:
		return "cross-limit"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Violation pinpoints the worst mis-ordered cell found by a scan: the
// rule it violates, the triggering cell, and the (negative) score.
type Violation struct {
	Rule     Rule
	Row, Col int
	Score    float64
}

// Options configures the repair loop.
type Options struct {
	// MaxIters bounds the number of correction rounds. It acts as a
	// deterministic timeout measured in rounds rather than wall time.
	// Must be at least 1.
	MaxIters int
}

// DefaultOptions returns the documented defaults: MaxIters=100.
func DefaultOptions() Options {
	return Options{MaxIters: DefaultMaxIters}
}

// Result is the outcome of a successful repair run.
type Result struct {
	// Grid is the repaired grid (the caller's instance, mutated in
	// place and returned for convenience).
	Grid *grid.Grid

	// Trace holds one full-grid snapshot per correction applied, in
	// order. An already-valid input yields an empty trace. Diagnostic
	// only; correctness never depends on it.
	Trace []*grid.Grid
}
