// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/qstep/core"
)

// walker encapsulates mutable layered-search state.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	end      string
	frontier []string
	res      *LayerResult
}

// Layers runs the layered breadth-first search from start toward end.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound,
// ErrOptionViolation.
func Layers(g *core.Graph, start, end string, opts ...Option) (*LayerResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		opts:     o,
		end:      end,
		frontier: []string{start},
		res: &LayerResult{
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.res.Depth[start] = 0
	w.res.Found = start == end
	w.loop()

	return w.res, nil
}

func validate(g *core.Graph, start, end string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}

	return nil
}

// loop expands one full layer at a time until a stop condition holds.
func (w *walker) loop() {
	for !w.res.Found && len(w.frontier) > 0 {
		if w.opts.MaxDepth > 0 && len(w.res.Layers) >= w.opts.MaxDepth {
			return
		}
		next := w.expand()
		if len(next) == 0 {
			return
		}
		w.res.Layers = append(w.res.Layers, next)
		w.frontier = next
	}
}

// expand scans every outgoing edge of the current frontier.
func (w *walker) expand() []string {
	depth := len(w.res.Layers) + 1
	var next []string
	for _, cur := range w.frontier {
		nbs, _ := w.graph.NeighborIDs(cur)
		for _, nb := range nbs {
			if _, seen := w.res.Depth[nb]; seen || !w.opts.FilterNeighbor(cur, nb) {
				continue
			}
			w.res.Depth[nb] = depth
			w.res.Parent[nb] = cur
			next = append(next, nb)
			if nb == w.end {
				w.res.Found = true
			}
		}
	}

	return next
}
