// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/qstep/bfs"
	"github.com/katalvlaran/qstep/core"
)

// ExampleNewLayeredMachine reveals the demo graph four layers deep.
func ExampleNewLayeredMachine() {
	g, _ := core.FromLists(
		[]string{"A", "B", "C", "D", "E", "F", "G", "H"},
		[]core.EdgeSpec{
			{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "H"},
			{From: "C", To: "D"}, {From: "D", To: "E"}, {From: "E", To: "G"},
			{From: "D", To: "F"}, {From: "F", To: "G"},
		},
		core.WithDirected(true),
	)
	m, _ := bfs.NewLayeredMachine(g, "A", "G")
	for !m.IsComplete() {
		m.Step()
		fmt.Println(m.Message())
	}

	// Output:
	// layer 1 explored in parallel: B, C
	// layer 2 explored in parallel: H, D
	// layer 3 explored in parallel: E, F
	// shortest path: A → C → D → E → G
}
