// SPDX-License-Identifier: MIT

package core

import "strconv"

// edgeIDPrefix yields stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to, adding missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Lock, ensure both endpoints exist.
//  3. Check the multi-edge constraint.
//  4. Generate the edge ID, store the edge, link adjacency.
//  5. Mirror undirected edges (self-loops are stored once).
//
// Complexity: O(d) for the multi-edge check, d = out-degree of from.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge existence check
	if !g.allowMulti && g.hasArcLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	eid := g.nextEdgeIDLocked()
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from] = append(g.adjacency[from], arc{to: to, eid: eid})

	// 5) Mirror undirected
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], arc{to: from, eid: eid})
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasArcLocked(from, to)
}

func (g *Graph) hasArcLocked(from, to string) bool {
	for _, a := range g.adjacency[from] {
		if a.to == to {
			return true
		}
	}

	return false
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// NeighborIDs returns the unique vertices reachable from id over one edge,
// in the order their first connecting edge was added.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	arcs := g.adjacency[id]
	out := make([]string, 0, len(arcs))
	seen := make(map[string]struct{}, len(arcs))
	for _, a := range arcs {
		if _, dup := seen[a.to]; dup {
			continue
		}
		seen[a.to] = struct{}{}
		out = append(out, a.to)
	}

	return out, nil
}

// nextEdgeIDLocked returns "e<N>" with N monotonic; caller holds the write lock.
func (g *Graph) nextEdgeIDLocked() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
