// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/dfs"
)

// ExampleNewPathMachine shows DFS taking the dead-end branch A→B→H first.
func ExampleNewPathMachine() {
	g, _ := core.FromLists(
		[]string{"A", "B", "C", "D", "E", "F", "G", "H"},
		[]core.EdgeSpec{
			{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "H"},
			{From: "C", To: "D"}, {From: "D", To: "E"}, {From: "E", To: "G"},
			{From: "D", To: "F"}, {From: "F", To: "G"},
		},
		core.WithDirected(true),
	)
	m, _ := dfs.NewPathMachine(g, "A", "G")
	for !m.IsComplete() {
		m.Step()
		fmt.Println(m.Message())
	}

	// Output:
	// DFS explores B from A
	// DFS explores H from B
	// DFS reaches a dead-end at H
	// DFS backtracks from H to B
	// DFS backtracks from B to A
	// DFS explores C from A
	// DFS explores D from C
	// DFS explores E from D
	// path found: A → C → D → E → G
}
