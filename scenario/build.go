// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/qstep/bfs"
	"github.com/katalvlaran/qstep/coin"
	"github.com/katalvlaran/qstep/compare"
	"github.com/katalvlaran/qstep/core"
	"github.com/katalvlaran/qstep/dfs"
	"github.com/katalvlaran/qstep/factor"
	"github.com/katalvlaran/qstep/linsys"
	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/search"
)

// Pair is the machine pair built from a scenario.
type Pair struct {
	Problem   compare.Problem
	Classical machine.Machine
	Quantum   machine.Machine
	// Size is the problem-size parameter handed to compare.Compare.
	Size int
}

// Machines returns the pair in drive order.
func (p Pair) Machines() []machine.Machine { return []machine.Machine{p.Classical, p.Quantum} }

// Build constructs the machine pair for s.
func (s *Scenario) Build() (Pair, error) {
	p := Pair{Problem: s.Problem}
	var err error
	switch s.Problem {
	case compare.Search:
		err = s.buildSearch(&p)
	case compare.Linear:
		err = s.buildLinear(&p)
	case compare.Path:
		err = s.buildPath(&p)
	case compare.Factor:
		err = s.buildFactor(&p)
	case compare.Coin:
		err = s.buildCoin(&p)
	default:
		err = fmt.Errorf("%w: unknown problem %q", ErrInvalid, s.Problem)
	}
	if err != nil {
		return Pair{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return p, nil
}

func (s *Scenario) buildSearch(p *Pair) error {
	if s.Search == nil {
		return fmt.Errorf("%w: search is required", ErrInvalid)
	}
	lin, err := search.NewLinear(s.Search.Values, s.Search.Target)
	if err != nil {
		return err
	}
	grov, err := search.NewGrover(s.Search.Values, s.Search.Target)
	if err != nil {
		return err
	}
	p.Classical, p.Quantum, p.Size = lin, grov, len(s.Search.Values)

	return nil
}

func (s *Scenario) buildLinear(p *Pair) error {
	in := s.Linear
	if in == nil {
		return fmt.Errorf("%w: linear is required", ErrInvalid)
	}
	gauss, err := linsys.NewGauss(in.Matrix, in.Vector)
	if err != nil {
		return err
	}
	var opts []linsys.Option
	if in.Jacobi {
		opts = append(opts, linsys.WithJacobiEigenvalues())
	}
	hhl, err := linsys.NewHHL(in.Matrix, in.Vector, opts...)
	if err != nil {
		return err
	}
	p.Classical, p.Quantum, p.Size = gauss, hhl, len(in.Matrix)

	return nil
}

// Graph builds the core.Graph described by the input.
func (in *GraphInput) Graph() (*core.Graph, error) {
	edges := make([]core.EdgeSpec, 0, len(in.Edges))
	for i, e := range in.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d needs two endpoints", ErrInvalid, i)
		}
		edges = append(edges, core.EdgeSpec{From: e[0], To: e[1]})
	}

	return core.FromLists(in.Nodes, edges, core.WithDirected(!in.Undirected))
}

func (s *Scenario) buildPath(p *Pair) error {
	if s.Graph == nil {
		return fmt.Errorf("%w: graph is required", ErrInvalid)
	}
	g, err := s.Graph.Graph()
	if err != nil {
		return err
	}
	d, err := dfs.NewPathMachine(g, s.Graph.Start, s.Graph.End)
	if err != nil {
		return err
	}
	b, err := bfs.NewLayeredMachine(g, s.Graph.Start, s.Graph.End)
	if err != nil {
		return err
	}
	p.Classical, p.Quantum, p.Size = d, b, g.VertexCount()

	return nil
}

func (s *Scenario) buildFactor(p *Pair) error {
	if s.Factor == nil {
		return fmt.Errorf("%w: factor is required", ErrInvalid)
	}
	trial, err := factor.NewTrial(s.Factor.N)
	if err != nil {
		return err
	}
	shor, err := factor.NewShor(s.Factor.N)
	if err != nil {
		return err
	}
	p.Classical, p.Quantum, p.Size = trial, shor, s.Factor.N

	return nil
}

func (s *Scenario) buildCoin(p *Pair) error {
	if s.Coin == nil {
		return fmt.Errorf("%w: coin is required", ErrInvalid)
	}
	c, err := coin.NewClassical(s.Coin.Trials, s.Coin.Seed)
	if err != nil {
		return err
	}
	q, err := coin.NewQuantum(s.Coin.Trials, s.Coin.Seed)
	if err != nil {
		return err
	}
	p.Classical, p.Quantum, p.Size = c, q, s.Coin.Trials

	return nil
}
