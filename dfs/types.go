// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/machine"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = machine.InvalidInput("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that start does not exist in the graph.
	ErrStartVertexNotFound = machine.InvalidInput("dfs: start vertex not found")

	// ErrEndVertexNotFound indicates that end does not exist in the graph.
	ErrEndVertexNotFound = machine.InvalidInput("dfs: end vertex not found")
)

// PhaseExploring is the only non-terminal phase.
const PhaseExploring machine.Phase = "exploring"

// Name and complexity label of the machine.
const (
	Name       = "dfs-path"
	Complexity = "O(V + E)"
)

// Register names exposed in snapshots.
const (
	RegLog  = "log"
	RegPath = "path"
)

// Kind classifies an exploration log entry.
type Kind string

// Exploration log entry kinds.
const (
	Explore   Kind = "explore"
	Deadend   Kind = "deadend"
	Backtrack Kind = "backtrack"
)

// Entry is one exploration log record.
// Explore: edge From→To descended. Backtrack: return from From to To.
// Deadend: From is the dead-end node, To is empty.
type Entry struct {
	Kind Kind   `json:"kind"`
	From string `json:"from"`
	To   string `json:"to,omitempty"`
}

// String renders the entry as shown to the user.
func (e Entry) String() string {
	switch e.Kind {
	case Explore:
		return fmt.Sprintf("explore %s→%s", e.From, e.To)
	case Backtrack:
		return fmt.Sprintf("backtrack %s→%s", e.From, e.To)
	default:
		return fmt.Sprintf("deadend %s", e.From)
	}
}

// Metrics counts log entries by kind.
type Metrics struct {
	Explored   int `json:"explored"`
	Deadends   int `json:"deadends"`
	Backtracks int `json:"backtracks"`
}

// Total returns Explored + Deadends + Backtracks.
func (m Metrics) Total() int { return m.Explored + m.Deadends + m.Backtracks }

func count(log []Entry) Metrics {
	var m Metrics
	for _, e := range log {
		switch e.Kind {
		case Explore:
			m.Explored++
		case Deadend:
			m.Deadends++
		case Backtrack:
			m.Backtracks++
		}
	}

	return m
}

// validate is shared by NewPathMachine and Explore.
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
