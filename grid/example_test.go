package grid_test

import (
	"fmt"

	"github.com/katalvlaran/relgrid/grid"
)

// ExampleNew demonstrates building a fixed-mode factor grid for one
// coverage/peril combination.
// Scenario:
//
//   - Deductibles 100 / 300 / 500, rebased at 300 → the middle column
//     is the anchor and carries factors of exactly 1.0.
//   - One coverage-limit band, already-valid factors: non-increasing by
//     ascending deductible, through the anchor.
func ExampleNew() {
	g, err := grid.New(
		[][]float64{{1.2, 1.0, 0.8}},
		[]float64{100, 300, 500},
		[]float64{100000},
		grid.Options{Fixed: true, RebaseLevel: 300},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("anchor column:", g.AnchorCol())
	fmt.Println("below anchor:", g.BelowAnchor(0), g.BelowAnchor(2))
	fmt.Printf("dispersion: %.1f\n", g.Dispersion())

	// Output:
	// anchor column: 1
	// below anchor: true false
	// dispersion: 0.4
}
