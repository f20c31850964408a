// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B")) // idempotent
	assert.Equal(t, []string{"B", "A"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	_, err = g.AddEdge("A", "B")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "A")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	assert.Equal(t, []core.Edge{{ID: "e1", From: "A", To: "B", Directed: true}}, g.Edges())
}

func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	nb, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nb)
}

func TestNeighborIDs_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, to := range []string{"Z", "C", "M", "C"} {
		_, err := g.AddEdge("A", to)
		require.NoError(t, err)
	}
	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "C", "M"}, nb, "parallel edges collapse, order preserved")

	_, err = g.NeighborIDs("missing")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
	_, err = g.NeighborIDs("")
	assert.True(t, errors.Is(err, core.ErrEmptyVertexID))
}

func TestLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A")
	require.NoError(t, err)
	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nb)
	assert.True(t, g.Looped())
	assert.False(t, g.Multigraph())
	assert.False(t, g.Directed())
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	c := g.Clone()

	_, _ = g.AddEdge("B", "C")
	assert.False(t, c.HasVertex("C"))
	assert.Equal(t, 1, c.EdgeCount())

	eid, err := c.AddEdge("B", "D")
	require.NoError(t, err)
	assert.Equal(t, "e2", eid, "edge counter carried over")
	assert.False(t, g.HasVertex("D"))
}

func TestFromLists(t *testing.T) {
	g, err := core.FromLists(
		[]string{"A", "B", "C"},
		[]core.EdgeSpec{{"A", "C"}, {"A", "B"}},
		core.WithDirected(true),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	nb, _ := g.NeighborIDs("A")
	assert.Equal(t, []string{"C", "B"}, nb)

	_, err = core.FromLists([]string{"A", "A"}, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	_, err = core.FromLists([]string{"A"}, []core.EdgeSpec{{"A", "B"}})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = core.FromLists([]string{""}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = core.FromLists([]string{"A", "B"}, []core.EdgeSpec{{"A", "B"}, {"A", "B"}}, core.WithDirected(true))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = g.NeighborIDs("B")
				_ = g.Clone()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, g.VertexCount())
}
