// SPDX-License-Identifier: MIT

package core

import "fmt"

// EdgeSpec is one from→to pair of a node/edge list.
type EdgeSpec struct {
	From string
	To   string
}

// FromLists builds a Graph strictly from a node list and an edge list.
//
// Unlike AddEdge, FromLists never invents vertices: every edge endpoint must
// appear in nodes. Vertices keep the order of nodes, edges the order of edges.
//
// Errors:
//   - ErrEmptyVertexID: a node or edge endpoint is "".
//   - ErrDuplicateVertex: a node is listed twice.
//   - ErrVertexNotFound: an edge references an unlisted node.
//   - ErrLoopNotAllowed, ErrMultiEdgeNotAllowed: per the options.
func FromLists(nodes []string, edges []EdgeSpec, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, id := range nodes {
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for i, e := range edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge %d: %w", i, ErrEmptyVertexID)
		}
		if !g.HasVertex(e.From) {
			return nil, fmt.Errorf("edge %d: %w: %q", i, ErrVertexNotFound, e.From)
		}
		if !g.HasVertex(e.To) {
			return nil, fmt.Errorf("edge %d: %w: %q", i, ErrVertexNotFound, e.To)
		}
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
