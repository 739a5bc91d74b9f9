// SPDX-License-Identifier: MIT
package gmfpt_test

import (
	"fmt"

	"github.com/karstvern/voidwalk/gmfpt"
	"github.com/karstvern/voidwalk/matrix"
)

// ExampleSolve computes unweighted GMFPTs on a 3-node path: the middle node
// is reached faster than the ends.
func ExampleSolve() {
	w, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})

	times, _ := gmfpt.Solve(w, gmfpt.WithUnweighted())
	for j, tj := range times {
		fmt.Printf("node %d: %.2f\n", j, tj)
	}

	// Output:
	// node 0: 3.50
	// node 1: 1.00
	// node 2: 3.50
}
