// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qstep/matrix"
)

// ExampleDense_AddScaledRow eliminates the entry below the first pivot.
func ExampleDense_AddScaledRow() {
	m, _ := matrix.FromRows([][]float64{{2, 1}, {4, 5}})
	_ = m.AddScaledRow(1, 0, -2)
	fmt.Print(m)

	// Output:
	// [2, 1]
	// [0, 3]
}
