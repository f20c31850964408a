// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qstep/machine"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = machine.InvalidInput("bfs: graph is nil")

	// ErrStartVertexNotFound indicates that start does not exist in the graph.
	ErrStartVertexNotFound = machine.InvalidInput("bfs: start vertex not found")

	// ErrEndVertexNotFound indicates that end does not exist in the graph.
	ErrEndVertexNotFound = machine.InvalidInput("bfs: end vertex not found")

	// ErrOptionViolation is returned when an option is given an invalid argument.
	ErrOptionViolation = errors.New("bfs: option violation")
)

// PhaseExploring is the only non-terminal phase.
const PhaseExploring machine.Phase = "exploring"

// Name and complexity label of the machine.
const (
	Name       = "layered-bfs"
	Complexity = "O(V + E)"
)

// Register names exposed in snapshots.
const (
	RegLayer   = "layer"
	RegVisited = "visited"
	RegPath    = "path"
)

// Option configures a layered search.
type Option func(*BFSOptions)

// BFSOptions holds configurable parameters for the layered search.
type BFSOptions struct {
	// MaxDepth limits the number of layers; 0 means no limit.
	MaxDepth int

	// FilterNeighbor, if it returns false, skips the edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns options with no depth limit and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithMaxDepth stops the search after d layers.
//
//	d > 0: limit to d layers
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// LayerResult holds the outcome of a layered search:
//   - Layers: discovered frontiers in order, start excluded.
//   - Depth: vertex ID → distance in edges from start.
//   - Parent: vertex ID → predecessor in the BFS tree.
//   - Found: end was discovered (or start == end).
type LayerResult struct {
	Layers [][]string
	Depth  map[string]int
	Parent map[string]string
	Found  bool
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *LayerResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
