// Package relgrid repairs two-dimensional grids of pricing relativities
// ("factor grids") so that they satisfy the monotonicity constraints
// real-world rating tables require.
//
// 🚀 What is relgrid?
//
//	A small, deterministic, pure-Go library that takes a table of
//	multiplicative pricing factors — rows keyed by coverage-limit level,
//	columns keyed by deductible level, anchored at a rebase level whose
//	factor is exactly 1.0 — and corrects it until:
//		• every row is non-increasing by ascending deductible, end-to-end
//		  through the anchor value of 1.0 (no adverse-selection incentive);
//		• every column converges monotonically toward 1.0 by ascending
//		  coverage limit (internal reasonability).
//
// ✨ How does it repair?
//
//   - Local, defensible corrections only — no curve fitting, no
//     interpolation, no global objective. Each round the single worst
//     mis-ordered adjacent pair is collapsed onto its more credible
//     member (the one closer to the anchor value 1.0).
//   - A pre-pass removes anchor crossings (sub-rebase factors below 1,
//     post-rebase factors above 1) before iteration begins.
//   - Every intermediate grid is returned as a trace, so callers can
//     audit or animate the repair step by step.
//
// Everything is organized under two subpackages:
//
//	grid/   — the factor table: dense values, ordered level axes, anchor
//	          metadata, shape validation
//	repair/ — violation scanning, anchor normalization, and the
//	          fixed-point repair loop
//
// Quick ASCII example (one row, deductibles 100 → 500, rebase 300):
//
//	1.20   1.00   0.80     valid: non-increasing through the anchor
//	0.90   1.00   0.80     invalid: 0.90 crosses the anchor from below
//
// See grid and repair package docs for the full API and guarantees.
//
//	go get github.com/katalvlaran/relgrid
package relgrid
