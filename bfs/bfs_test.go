// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/bfs"
	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/machine"
)

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

func TestErrors(t *testing.T) {
	g := demoGraph(t)
	_, err := bfs.NewLayeredMachine(nil, "A", "G")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.NewLayeredMachine(g, "missing", "G")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, machine.ErrInvalidInput)
	_, err = bfs.NewLayeredMachine(g, "A", "missing")
	require.ErrorIs(t, err, bfs.ErrEndVertexNotFound)
	_, err = bfs.NewLayeredMachine(g, "A", "G", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestLayeredMachine_DemoScenario(t *testing.T) {
	m, err := bfs.NewLayeredMachine(demoGraph(t), "A", "G")
	require.NoError(t, err)

	n := machine.Run(m, 0)
	assert.Equal(t, 4, n)
	assert.Equal(t, [][]string{{"B", "C"}, {"H", "D"}, {"E", "F"}, {"G"}}, m.Layers())

	res, ok := m.Result()
	require.True(t, ok)
	assert.True(t, res.Solved)
	assert.Equal(t, 4, res.Steps)
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, res.Path)
	assert.Equal(t, bfs.Complexity, res.Complexity)
}

func TestLayeredMachine_Unreachable(t *testing.T) {
	m, _ := bfs.NewLayeredMachine(demoGraph(t), "C", "B")
	machine.Run(m, 0)
	res, _ := m.Result()
	assert.False(t, res.Solved)
	assert.Empty(t, res.Path)
	assert.Equal(t, 3, res.Steps) // [D] [E F] [G]
}

func TestLayeredMachine_NoLayers(t *testing.T) {
	for _, pair := range [][2]string{{"A", "A"}, {"H", "A"}} {
		m, _ := bfs.NewLayeredMachine(demoGraph(t), pair[0], pair[1])
		m.Step()
		require.True(t, m.IsComplete(), "zero layers complete on the first tick")
		res, _ := m.Result()
		assert.Zero(t, res.Steps)
		assert.Equal(t, pair[0] == pair[1], res.Solved)
	}
}

func TestOptions(t *testing.T) {
	m, _ := bfs.NewLayeredMachine(demoGraph(t), "A", "G", bfs.WithMaxDepth(2))
	machine.Run(m, 0)
	res, _ := m.Result()
	assert.False(t, res.Solved)
	assert.Equal(t, 2, res.Steps)

	noE := bfs.WithFilterNeighbor(func(_, nb string) bool { return nb != "E" })
	m, _ = bfs.NewLayeredMachine(demoGraph(t), "A", "G", noE)
	machine.Run(m, 0)
	res, _ = m.Result()
	assert.Equal(t, []string{"A", "C", "D", "F", "G"}, res.Path)
}

func TestLayers_PathTo(t *testing.T) {
	r, err := bfs.Layers(demoGraph(t), "A", "G")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Depth["G"])
	p, err := r.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, p)
	_, err = r.PathTo("nowhere")
	assert.Error(t, err)
}

func TestLayeredMachine_Snapshot(t *testing.T) {
	m, _ := bfs.NewLayeredMachine(demoGraph(t), "A", "G")
	fresh := m.Snapshot()
	m.Step()
	m.Step()
	s := m.Snapshot()
	layer, _ := s.Register(bfs.RegLayer)
	assert.Equal(t, []string{"H", "D"}, layer.Labels)
	visited, _ := s.Register(bfs.RegVisited)
	assert.Equal(t, []string{"A", "B", "C", "H", "D"}, visited.Labels)
	path, _ := s.Register(bfs.RegPath)
	assert.Empty(t, path.Labels)

	m.Reset()
	assert.Equal(t, fresh, m.Snapshot())
}

// shortest returns the BFS distance from s to t, or -1.
func shortest(g *core.Graph, s, t string) int {
	dist := map[string]int{s: 0}
	q := []string{s}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur == t {
			return dist[cur]
		}
		nbs, _ := g.NeighborIDs(cur)
		for _, nb := range nbs {
			if _, ok := dist[nb]; !ok {
				dist[nb] = dist[cur] + 1
				q = append(q, nb)
			}
		}
	}

	return -1
}

// Path length equals the true BFS distance for every reachable pair.
func TestLayeredMachine_ShortestProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(10)
		nodes := make([]string, n)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("n%d", i)
		}
		var edges []core.EdgeSpec
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.3 {
					edges = append(edges, core.EdgeSpec{From: nodes[i], To: nodes[j]})
				}
			}
		}
		g, err := core.FromLists(nodes, edges, core.WithDirected(true))
		require.NoError(t, err)
		s, e := nodes[rng.Intn(n)], nodes[rng.Intn(n)]

		m, err := bfs.NewLayeredMachine(g, s, e)
		require.NoError(t, err)
		machine.Run(m, 0)
		res, _ := m.Result()

		d := shortest(g, s, e)
		if d < 0 {
			require.False(t, res.Solved, "trial %d", trial)
			continue
		}
		require.True(t, res.Solved, "trial %d", trial)
		require.Len(t, res.Path, d+1, "trial %d", trial)
		require.Equal(t, d, res.Steps, "layers == distance when end is found")
	}
}
