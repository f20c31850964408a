// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/search"
)

// ExampleNewLinear scans for "42" one index per tick.
func ExampleNewLinear() {
	m, _ := search.NewLinear([]string{"101", "99", "42", "1337", "512"}, "42")
	for !m.IsComplete() {
		m.Step()
		fmt.Println(m.Steps(), m.Message())
	}
	res, _ := m.Result()
	fmt.Println(res.Solved, res.Steps, res.Index)

	// Output:
	// 1 index 0: 101 != 42
	// 2 index 1: 99 != 42
	// 3 found 42 at index 2
	// true 3 2
}

// ExampleNewGrover measures after ceil(sqrt(5)) = 3 amplification rounds.
func ExampleNewGrover() {
	m, _ := search.NewGrover([]string{"101", "99", "42", "1337", "512"}, "42")
	machine.Run(m, 0)
	res, _ := m.Result()
	fmt.Println(res.Solved, res.Steps, res.Index, res.Complexity)

	// Output:
	// true 3 2 O(√n)
}
