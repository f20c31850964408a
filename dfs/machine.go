// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/machine"
)

// PathMachine reveals a precomputed DFS exploration log one entry per tick.
type PathMachine struct {
	machine.Base
	graph      *core.Graph
	start, end string
	log        []Entry
	path       []string
	revealed   int
}

// NewPathMachine validates input, clones g and precomputes the traversal.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound.
func NewPathMachine(g *core.Graph, start, end string) (*PathMachine, error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	m := &PathMachine{graph: g.Clone(), start: start, end: end}
	m.Reset()

	return m, nil
}

// Reset re-derives the log from the stored graph and hides every entry.
func (m *PathMachine) Reset() {
	m.Base = machine.NewBase(Name, PhaseExploring, fmt.Sprintf("searching %s → %s depth-first", m.start, m.end))
	m.log, m.path, _ = Walk(m.graph, m.start, m.end)
	m.revealed = 0
}

// Step reveals the next log entry; revealing the last one completes.
func (m *PathMachine) Step() {
	if !m.Begin() {
		return
	}
	if m.revealed < len(m.log) {
		e := m.log[m.revealed]
		m.revealed++
		m.Say(describe(e))
	}
	if m.revealed < len(m.log) {
		return
	}

	msg := fmt.Sprintf("no path from %s to %s", m.start, m.end)
	if len(m.path) > 0 {
		msg = "path found: " + strings.Join(m.path, " → ")
	}
	m.Finish(machine.Result{
		Solved:     len(m.path) > 0,
		Steps:      len(m.log),
		Complexity: Complexity,
		Index:      -1,
		Path:       m.path,
	}, msg)
}

func describe(e Entry) string {
	switch e.Kind {
	case Explore:
		return fmt.Sprintf("DFS explores %s from %s", e.To, e.From)
	case Backtrack:
		return fmt.Sprintf("DFS backtracks from %s to %s", e.From, e.To)
	default:
		return fmt.Sprintf("DFS reaches a dead-end at %s", e.From)
	}
}

// Log returns a copy of the revealed log prefix.
func (m *PathMachine) Log() []Entry { return append([]Entry(nil), m.log[:m.revealed]...) }

// FullLog returns a copy of the complete precomputed log.
func (m *PathMachine) FullLog() []Entry { return append([]Entry(nil), m.log...) }

// Metrics counts the revealed entries by kind; after completion it covers
// the whole log and Total() == Result.Steps.
func (m *PathMachine) Metrics() Metrics { return count(m.log[:m.revealed]) }

// Snapshot returns the revealed log and, once complete, the path.
func (m *PathMachine) Snapshot() machine.Snapshot {
	entries := make([]string, m.revealed)
	for i, e := range m.log[:m.revealed] {
		entries[i] = e.String()
	}
	var path []string
	if m.IsComplete() {
		path = m.path
	}

	return m.Base.Snapshot(
		machine.LabelRegister(RegLog, entries),
		machine.LabelRegister(RegPath, path),
	)
}

var _ machine.Machine = (*PathMachine)(nil)
