// SPDX-License-Identifier: MIT

package scenario_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/compare"
	"github.com/katalvlaran/qstep/linsys"
	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/scenario"
)

func TestLoad_Testdata(t *testing.T) {
	tests := []struct {
		file      string
		problem   compare.Problem
		size      int
		classical string
		quantum   string
	}{
		{"search.yaml", compare.Search, 5, "linear-search", "grover-search"},
		{"linear.yaml", compare.Linear, 3, "gaussian-elimination", "hhl"},
		{"path.yaml", compare.Path, 8, "dfs-path", "layered-bfs"},
		{"factor.yaml", compare.Factor, 15, "trial-division", "shor"},
		{"coin.yaml", compare.Coin, 10, "coin-classical", "coin-quantum"},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			s, err := scenario.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.problem, s.Problem)

			p, err := s.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.size, p.Size)
			assert.Equal(t, tc.classical, p.Classical.Name())
			assert.Equal(t, tc.quantum, p.Quantum.Name())
			require.Len(t, p.Machines(), 2)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		fragment string
	}{
		{"no name", "problem: factor\nfactor: {n: 15}\n", "name is required"},
		{"bad problem", "name: x\nproblem: tsp\n", "problem must be one of"},
		{"missing block", "name: x\nproblem: search\n", "search is required"},
		{"empty values", "name: x\nproblem: search\nsearch: {values: [], target: a}\n", "search.values"},
		{"trials", "name: x\nproblem: coin\ncoin: {trials: 0}\n", "coin.trials"},
		{"factor n", "name: x\nproblem: factor\nfactor: {n: 1}\n", "factor.n"},
		{"edge arity", "name: x\nproblem: path\ngraph: {nodes: [A], edges: [[A]], start: A, end: A}\n", "graph.edges"},
		{"unknown key", "name: x\nproblem: factor\nfactor: {n: 15}\nextra: 1\n", "decode"},
		{"too large", "name: x\nproblem: linear\nlinear: {matrix: [[1],[1],[1],[1],[1]], vector: [1]}\n", "linear.matrix"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, scenario.ErrInvalid)
			assert.Contains(t, err.Error(), tc.fragment)
		})
	}
}

func TestBuild_MachineErrors(t *testing.T) {
	s, err := scenario.Parse(strings.NewReader(
		"name: x\nproblem: linear\nlinear: {matrix: [[1, 2], [3, 4]], vector: [1]}\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.ErrorIs(t, err, linsys.ErrVectorLength)
	require.ErrorIs(t, err, machine.ErrInvalidInput)

	s, err = scenario.Parse(strings.NewReader(
		"name: x\nproblem: path\ngraph: {nodes: [A, B], edges: [[A, C]], start: A, end: B}\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.Error(t, err)
}

func TestGraphInput_Undirected(t *testing.T) {
	in := scenario.GraphInput{Nodes: []string{"A", "B"}, Edges: [][]string{{"A", "B"}}, Start: "B", End: "A", Undirected: true}
	g, err := in.Graph()
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("B", "A"))
}
