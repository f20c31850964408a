// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/machine"
)

// LayeredMachine reveals precomputed BFS layers one per tick.
type LayeredMachine struct {
	machine.Base
	graph      *core.Graph
	start, end string
	opts       []Option

	layers   [][]string
	path     []string
	revealed int
}

// NewLayeredMachine validates input, clones g and precomputes the layers.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound,
// ErrOptionViolation.
func NewLayeredMachine(g *core.Graph, start, end string, opts ...Option) (*LayeredMachine, error) {
	if _, err := Layers(g, start, end, opts...); err != nil {
		return nil, err
	}
	m := &LayeredMachine{graph: g.Clone(), start: start, end: end, opts: opts}
	m.Reset()

	return m, nil
}

// Reset re-derives the layers from the stored graph and hides them all.
func (m *LayeredMachine) Reset() {
	m.Base = machine.NewBase(Name, PhaseExploring, fmt.Sprintf("searching %s → %s layer by layer", m.start, m.end))
	res, _ := Layers(m.graph, m.start, m.end, m.opts...)
	m.layers = res.Layers
	m.path = nil
	if res.Found {
		m.path, _ = res.PathTo(m.end)
	}
	m.revealed = 0
}

// Step reveals the next layer; revealing the last one completes.
func (m *LayeredMachine) Step() {
	if !m.Begin() {
		return
	}
	if m.revealed < len(m.layers) {
		m.revealed++
		m.Say(fmt.Sprintf("layer %d explored in parallel: %s", m.revealed, strings.Join(m.layers[m.revealed-1], ", ")))
	}
	if m.revealed < len(m.layers) {
		return
	}

	msg := fmt.Sprintf("no path from %s to %s", m.start, m.end)
	if len(m.path) > 0 {
		msg = "shortest path: " + strings.Join(m.path, " → ")
	}
	m.Finish(machine.Result{
		Solved:     len(m.path) > 0,
		Steps:      len(m.layers),
		Complexity: Complexity,
		Index:      -1,
		Path:       m.path,
	}, msg)
}

// Layers returns copies of the revealed layers.
func (m *LayeredMachine) Layers() [][]string {
	out := make([][]string, m.revealed)
	for i := range out {
		out[i] = append([]string(nil), m.layers[i]...)
	}

	return out
}

// Snapshot returns the newest layer, every revealed vertex and, once
// complete, the path.
func (m *LayeredMachine) Snapshot() machine.Snapshot {
	visited := []string{m.start}
	var layer []string
	for i := 0; i < m.revealed; i++ {
		visited = append(visited, m.layers[i]...)
		layer = m.layers[i]
	}
	var path []string
	if m.IsComplete() {
		path = m.path
	}

	return m.Base.Snapshot(
		machine.LabelRegister(RegLayer, layer),
		machine.LabelRegister(RegVisited, visited),
		machine.LabelRegister(RegPath, path),
	)
}

var _ machine.Machine = (*LayeredMachine)(nil)
