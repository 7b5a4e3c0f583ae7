// Package grid defines the factor table that the repair engine operates
// on: a dense, rectangular table of positive pricing relativities with
// rows keyed by ascending coverage-limit levels and columns keyed by
// ascending deductible levels.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 together with both ordered
//     level axes and the anchor geometry (fixed mode + rebase level).
//   - In fixed mode, the anchor column is the column whose deductible
//     equals the rebase level; its cells are assumed (not enforced) to
//     be exactly 1.0 and are never rewritten by the repair engine.
//   - Construction deep-copies the input and fails fast on malformed
//     shapes; there is no validation beyond shape consistency.
//
// Why:
//
//   - Rating tables: one Grid per coverage/peril combination.
//   - Diagnostics: Clone/Values snapshots feed the repair trace that
//     callers animate or audit.
//
// Errors:
//
//   - ErrShape: empty or ragged table, axis length mismatch, or a level
//     axis that is not strictly ascending.
//   - ErrConfig: fixed mode without the rebase level present in the
//     deductible axis.
//
// Complexity: construction O(R×C) time and memory; all accessors O(1)
// except the O(R×C) snapshot helpers.
package grid
