// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/qstep/core"

// frame is one explicit-stack record.
type frame struct {
	id        string
	neighbors []string
	next      int  // index of the next neighbor to scan
	eligible  bool // at least one neighbor was eligible when scanned
}

// dfsWalker encapsulates state during the precomputed traversal.
type dfsWalker struct {
	graph   *core.Graph
	end     string
	stack   []*frame
	inPath  map[string]bool
	visited map[string]bool
	log     []Entry
	path    []string
}

// Walk runs the full depth-first search from start and returns the
// exploration log and the discovered path (nil if end is unreachable).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound.
func Walk(g *core.Graph, start, end string) ([]Entry, []string, error) {
	// 1. Validate input graph and endpoints
	if err := validate(g, start, end); err != nil {
		return nil, nil, err
	}

	// 2. Prepare walker
	n := g.VertexCount()
	w := &dfsWalker{
		graph:   g,
		end:     end,
		stack:   make([]*frame, 0, n),
		inPath:  make(map[string]bool, n),
		visited: make(map[string]bool, n),
	}

	// 3. Traverse
	w.traverse(start)

	return w.log, w.path, nil
}

// enter pushes id; it reports true when id is the end vertex.
func (w *dfsWalker) enter(id string) bool {
	if top := w.top(); top != nil {
		w.log = append(w.log, Entry{Kind: Explore, From: top.id, To: id})
	}
	w.inPath[id] = true
	if id == w.end {
		w.path = make([]string, 0, len(w.stack)+1)
		for _, f := range w.stack {
			w.path = append(w.path, f.id)
		}
		w.path = append(w.path, id)
		return true
	}
	w.visited[id] = true
	nb, _ := w.graph.NeighborIDs(id)
	w.stack = append(w.stack, &frame{id: id, neighbors: nb})

	return false
}

func (w *dfsWalker) top() *frame {
	if len(w.stack) == 0 {
		return nil
	}

	return w.stack[len(w.stack)-1]
}

// traverse drives the explicit stack until end is found or the stack drains.
func (w *dfsWalker) traverse(start string) {
	if w.enter(start) {
		return
	}
	for len(w.stack) > 0 {
		f := w.top()

		// scan for the next eligible neighbor
		descended := false
		for f.next < len(f.neighbors) {
			nb := f.neighbors[f.next]
			f.next++
			if w.visited[nb] || w.inPath[nb] {
				continue
			}
			f.eligible = true
			if w.enter(nb) {
				return
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		// all neighbors scanned: dead-end and/or backtrack
		if !f.eligible {
			w.log = append(w.log, Entry{Kind: Deadend, From: f.id})
		}
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.inPath, f.id)
		if parent := w.top(); parent != nil {
			w.log = append(w.log, Entry{Kind: Backtrack, From: f.id, To: parent.id})
		}
	}
}
