// SPDX-License-Identifier: MIT
package void_test

import (
	"fmt"

	"github.com/karstvern/voidwalk/matrix"
	"github.com/karstvern/voidwalk/void"
)

// ExampleAugment embeds a bulk reservoir into a 3-node path with p_void = 0.5,
// so every node leaks with weight equal to its degree (0.5/0.5 = 1).
func ExampleAugment() {
	base, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})

	aug, _ := void.Augment(base, 0.5)
	fmt.Print(aug)

	// Output:
	// [0, 1, 0, 1]
	// [1, 0, 1, 2]
	// [0, 1, 0, 1]
	// [1, 2, 1, 0]
}
