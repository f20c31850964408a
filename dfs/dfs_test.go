// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/dfs"
	"github.com/katalvlaran/qstep/machine"
)

// demoGraph is A→B, A→C, B→H, C→D→E→G, D→F→G.
func demoGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromLists(
		[]string{"A", "B", "C", "D", "E", "F", "G", "H"},
		[]core.EdgeSpec{
			{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "H"},
			{From: "C", To: "D"}, {From: "D", To: "E"}, {From: "E", To: "G"},
			{From: "D", To: "F"}, {From: "F", To: "G"},
		},
		core.WithDirected(true),
	)
	require.NoError(t, err)

	return g
}

func TestNewPathMachine_Errors(t *testing.T) {
	g := demoGraph(t)
	_, err := dfs.NewPathMachine(nil, "A", "G")
	require.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.NewPathMachine(g, "X", "G")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, machine.ErrInvalidInput)
	_, err = dfs.NewPathMachine(g, "A", "X")
	require.ErrorIs(t, err, dfs.ErrEndVertexNotFound)
}

func TestPathMachine_DemoScenario(t *testing.T) {
	m, err := dfs.NewPathMachine(demoGraph(t), "A", "G")
	require.NoError(t, err)

	want := []dfs.Entry{
		{Kind: dfs.Explore, From: "A", To: "B"},
		{Kind: dfs.Explore, From: "B", To: "H"},
		{Kind: dfs.Deadend, From: "H"},
		{Kind: dfs.Backtrack, From: "H", To: "B"},
		{Kind: dfs.Backtrack, From: "B", To: "A"},
		{Kind: dfs.Explore, From: "A", To: "C"},
		{Kind: dfs.Explore, From: "C", To: "D"},
		{Kind: dfs.Explore, From: "D", To: "E"},
		{Kind: dfs.Explore, From: "E", To: "G"},
	}
	require.Equal(t, want, m.FullLog())

	for i := range want {
		require.False(t, m.IsComplete(), "tick %d", i)
		m.Step()
		require.Equal(t, want[:i+1], m.Log())
	}
	require.True(t, m.IsComplete(), "the tick revealing the last entry completes")

	res, ok := m.Result()
	require.True(t, ok)
	assert.True(t, res.Solved)
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, res.Path)
	assert.Equal(t, 9, res.Steps)
	assert.Equal(t, dfs.Metrics{Explored: 6, Deadends: 1, Backtracks: 2}, m.Metrics())
	assert.Equal(t, dfs.Complexity, res.Complexity)
}

func TestPathMachine_StartIsEnd(t *testing.T) {
	m, _ := dfs.NewPathMachine(demoGraph(t), "D", "D")
	m.Step()
	require.True(t, m.IsComplete())
	res, _ := m.Result()
	assert.True(t, res.Solved)
	assert.Equal(t, []string{"D"}, res.Path)
	assert.Zero(t, res.Steps)
	assert.Equal(t, 1, m.Steps())
}

func TestPathMachine_Unreachable(t *testing.T) {
	m, _ := dfs.NewPathMachine(demoGraph(t), "H", "A")
	machine.Run(m, 0)
	res, _ := m.Result()
	assert.False(t, res.Solved)
	assert.Empty(t, res.Path)
	assert.Equal(t, []dfs.Entry{{Kind: dfs.Deadend, From: "H"}}, m.Log())
	assert.Equal(t, 1, res.Steps)
}

func TestPathMachine_CycleSafe(t *testing.T) {
	g, err := core.FromLists(
		[]string{"A", "B", "C", "Z"},
		[]core.EdgeSpec{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"}},
		core.WithDirected(true),
	)
	require.NoError(t, err)
	m, _ := dfs.NewPathMachine(g, "A", "Z")
	machine.Run(m, 0)
	assert.Equal(t, []dfs.Entry{
		{Kind: dfs.Explore, From: "A", To: "B"},
		{Kind: dfs.Explore, From: "B", To: "C"},
		{Kind: dfs.Deadend, From: "C"},
		{Kind: dfs.Backtrack, From: "C", To: "B"},
		{Kind: dfs.Backtrack, From: "B", To: "A"},
	}, m.Log())
	res, _ := m.Result()
	assert.False(t, res.Solved)
}

func TestWalk(t *testing.T) {
	log, path, err := dfs.Walk(demoGraph(t), "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, path)
	require.Len(t, log, 9)
	assert.Equal(t, dfs.Entry{Kind: dfs.Explore, From: "A", To: "B"}, log[0])
	assert.Equal(t, dfs.Entry{Kind: dfs.Deadend, From: "H"}, log[2])

	log, path, err = dfs.Walk(demoGraph(t), "H", "A")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, []dfs.Entry{{Kind: dfs.Deadend, From: "H"}}, log)

	_, _, err = dfs.Walk(nil, "A", "G")
	require.ErrorIs(t, err, dfs.ErrGraphNil)
	_, _, err = dfs.Walk(demoGraph(t), "X", "G")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	_, _, err = dfs.Walk(demoGraph(t), "A", "X")
	require.ErrorIs(t, err, dfs.ErrEndVertexNotFound)
}

func TestPathMachine_InputCloned(t *testing.T) {
	g := demoGraph(t)
	m, _ := dfs.NewPathMachine(g, "A", "G")
	_, _ = g.AddEdge("A", "G")
	m.Reset()
	machine.Run(m, 0)
	res, _ := m.Result()
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, res.Path)
}

func TestPathMachine_Reset(t *testing.T) {
	m, _ := dfs.NewPathMachine(demoGraph(t), "A", "G")
	fresh := m.Snapshot()
	machine.Run(m, 0)
	first, _ := m.Result()
	m.Reset()
	assert.Equal(t, fresh, m.Snapshot())
	assert.Empty(t, m.Log())
	machine.Run(m, 0)
	second, _ := m.Result()
	assert.Equal(t, first, second)
}

// Every logged node/edge exists, and the kind counts sum to Result.Steps.
func TestPathMachine_LogProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(9)
		nodes := make([]string, n)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("v%d", i)
		}
		var edges []core.EdgeSpec
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.25 {
					edges = append(edges, core.EdgeSpec{From: nodes[i], To: nodes[j]})
				}
			}
		}
		g, err := core.FromLists(nodes, edges, core.WithDirected(true))
		require.NoError(t, err)

		start, end := nodes[rng.Intn(n)], nodes[rng.Intn(n)]
		m, err := dfs.NewPathMachine(g, start, end)
		require.NoError(t, err)
		machine.Run(m, 0)
		res, _ := m.Result()

		for _, e := range m.Log() {
			switch e.Kind {
			case dfs.Explore:
				require.True(t, g.HasEdge(e.From, e.To), "explore %v", e)
			case dfs.Backtrack:
				require.True(t, g.HasEdge(e.To, e.From), "backtrack %v", e)
			case dfs.Deadend:
				require.True(t, g.HasVertex(e.From))
			}
		}
		require.Equal(t, res.Steps, m.Metrics().Total())
		if res.Solved {
			require.Equal(t, start, res.Path[0])
			require.Equal(t, end, res.Path[len(res.Path)-1])
			for i := 1; i < len(res.Path); i++ {
				require.True(t, g.HasEdge(res.Path[i-1], res.Path[i]))
			}
		}
	}
}
