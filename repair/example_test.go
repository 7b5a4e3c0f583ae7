package repair_test

import (
	"fmt"

	"github.com/katalvlaran/relgrid/grid"
	"github.com/katalvlaran/relgrid/repair"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Repair
////////////////////////////////////////////////////////////////////////////////

// ExampleRepair demonstrates repairing a small factor grid with one
// anchor crossing and one cross-limit violation.
// Scenario:
//
//   - Deductibles 100 / 300 / 500, rebased at 300.
//   - Row 1's 0.95 at deductible 100 crosses the anchor (sub-rebase
//     factors must be ≥ 1) — cleared by the normalizer pre-pass.
//   - At deductible 500 the factor falls 0.8 → 0.75 as the limit grows,
//     violating reasonability — collapsed by one loop correction.
func ExampleRepair() {
	g, err := grid.New(
		[][]float64{
			{1.2, 1.0, 0.8},
			{0.95, 1.0, 0.75},
		},
		[]float64{100, 300, 500},
		[]float64{100000, 1000000},
		grid.Options{Fixed: true, RebaseLevel: 300},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := repair.Repair(g, repair.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, row := range res.Grid.Values() {
		fmt.Println(row)
	}
	fmt.Println("corrections:", len(res.Trace))

	// Output:
	// [1.2 1 0.8]
	// [1 1 0.8]
	// corrections: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Scan
////////////////////////////////////////////////////////////////////////////////

// ExampleScan demonstrates locating the worst violation without
// repairing anything.
func ExampleScan() {
	g, err := grid.New(
		[][]float64{{1.5, 1.0, 0.75, 0.875}},
		[]float64{100, 300, 500, 1000},
		[]float64{100000},
		grid.Options{Fixed: true, RebaseLevel: 300},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, ok := repair.Scan(g).Worst()
	fmt.Println("violation:", ok)
	fmt.Printf("%s at row %d, col %d, score %g\n", v.Rule, v.Row, v.Col, v.Score)

	// Output:
	// violation: true
	// cross-deductible at row 0, col 3, score -0.125
}
