// Package repair detects and corrects monotonicity violations in a
// factor grid, iterating to a fixed point under a hard round cap.
//
// Two rules define a valid grid (anchor value 1.0 at the rebase level):
//
//   - Cross-deductible (adverse-selection guard): within every row,
//     factors are non-increasing by ascending deductible, end-to-end
//     through the anchor. Below-anchor factors sit at or above 1,
//     above-anchor factors at or below 1.
//
//   - Cross-limit (reasonability guard): within every column, factors
//     move monotonically toward 1.0 by ascending coverage limit.
//     Below-rebase columns are non-increasing, above-rebase columns
//     non-decreasing; the anchor column is exempt (fixed at 1).
//
// The engine runs in three stages:
//
//  1. NormalizeAnchor — one deterministic sweep per side that removes
//     anchor crossings (a distinct, higher-priority defect class)
//     before iteration begins. Fixed mode only.
//  2. Scan — produces two same-shaped signed score matrices, one per
//     rule; a strictly negative entry flags a violation and its
//     magnitude is the severity.
//  3. Repair — the fixed-point driver: scan, pick the globally worst
//     violation (deterministic column-major tie-break), collapse the
//     offending adjacent pair onto its member closer to 1.0, snapshot
//     the grid into the trace, repeat. Convergence is a violation-free
//     scan; exhausting Options.MaxIters with violations remaining
//     yields a *NonConvergenceError carrying the final state.
//
// Every correction strictly shrinks the corrected cell's distance to
// 1.0, so total dispersion never grows; no interpolated value is ever
// invented. Given identical inputs, reruns reproduce identical grids
// and identical traces.
//
// Concurrency: single-threaded and synchronous by contract. A grid is
// owned by exactly one Repair call; independent calls (one per
// coverage/peril combination) share no state and may run in parallel.
//
// Errors:
//
//   - grid.ErrShape / grid.ErrConfig: surfaced before any processing.
//   - ErrConfig: non-positive MaxIters.
//   - ErrNonConvergence: round cap exhausted with violations remaining;
//     errors.As against *NonConvergenceError recovers the last grid and
//     both score matrices.
package repair
