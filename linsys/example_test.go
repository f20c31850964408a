// SPDX-License-Identifier: MIT

package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/qstep/linsys"
	"github.com/katalvlaran/qstep/machine"
)

// ExampleNewGauss solves the 3×3 demo system.
func ExampleNewGauss() {
	g, err := linsys.NewGauss([][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 2}}, []float64{6, 5, 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	machine.Run(g, 0)
	res, _ := g.Result()
	fmt.Printf("solved=%v x=[%.3f %.3f %.3f]\n", res.Solved, res.Solution[0], res.Solution[1], res.Solution[2])

	// Output:
	// solved=true x=[1.000 1.000 1.000]
}

// ExampleNewHHL shows the fixed nine-tick phase schedule.
func ExampleNewHHL() {
	h, _ := linsys.NewHHL([][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 2}}, []float64{6, 5, 4})
	for !h.IsComplete() {
		h.Step()
		fmt.Println(h.Steps(), h.Phase())
	}

	// Output:
	// 1 qpe
	// 2 qpe
	// 3 qpe
	// 4 rotation
	// 5 iqpe
	// 6 iqpe
	// 7 iqpe
	// 8 measurement
	// 9 complete
}
