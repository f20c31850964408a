// SPDX-License-Identifier: MIT

// Package core provides the small in-memory Graph that the path-finding
// machines (dfs, bfs) traverse.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Stable textual Edge.ID generation ("e1", "e2", ...)
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() return elements in insertion order.
//	Traversal order in dfs and bfs is therefore the order in which the caller
//	listed the edges, which is what step-by-step replays are compared against.
//
// Construction:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_, _ = g.AddEdge("A", "B")
//
// or, strictly from node/edge lists (unknown endpoints are rejected):
//
//	g, err := core.FromLists([]string{"A", "B"}, []core.EdgeSpec{{"A", "B"}}, core.WithDirected(true))
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards the
//	vertex catalog, the edge catalog and the adjacency lists.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrDuplicateVertex     - FromLists received the same vertex twice.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
