// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency order and the edge-ID counter, so future AddEdge calls on the
// clone continue the same textual sequence.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		order:      append([]string(nil), g.order...),
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edgeOrder:  append([]string(nil), g.edgeOrder...),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string][]arc, len(g.adjacency)),
	}
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}
	for from, arcs := range g.adjacency {
		clone.adjacency[from] = append([]arc(nil), arcs...)
	}

	return clone
}
