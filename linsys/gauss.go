// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/matrix"
)

// Gauss solves M·x = b by Gaussian elimination, one row action per tick.
type Gauss struct {
	machine.Base

	// construction input, never mutated
	m0 *matrix.Dense
	b0 []float64

	// working state
	n    int
	m    *matrix.Dense
	b    []float64
	r, c int // pivot (forward) or current row r (backward)
	next int // next row to eliminate below r
}

// NewGauss validates (m, b) and returns a Gauss machine in PhaseInit.
//
// Errors:
//   - ErrNonSquare, ErrSizeOutOfRange, ErrVectorLength, ErrNonFinite.
func NewGauss(m [][]float64, b []float64) (*Gauss, error) {
	dense, vec, err := parseSystem(m, b)
	if err != nil {
		return nil, err
	}
	g := &Gauss{m0: dense, b0: vec, n: dense.Rows()}
	g.Reset()

	return g, nil
}

// Reset restores the original matrix and vector.
func (g *Gauss) Reset() {
	g.Base = machine.NewBase(NameGauss, PhaseInit, fmt.Sprintf("%dx%d system loaded", g.n, g.n))
	g.m = g.m0.Clone()
	g.b = append([]float64(nil), g.b0...)
	g.r, g.c, g.next = 0, 0, 1
}

// Step performs one row action.
func (g *Gauss) Step() {
	if !g.Begin() {
		return
	}
	switch g.Phase() {
	case PhaseInit:
		g.r, g.c, g.next = 0, 0, 1
		g.Enter(PhaseForward, "pivot (0,0) selected")
	case PhaseForward:
		g.forward()
	case PhaseBackward:
		g.backward()
	}
}

func (g *Gauss) at(i, j int) float64 {
	v, _ := g.m.At(i, j)

	return v
}

// forward performs one elimination-phase action at pivot (r,c).
func (g *Gauss) forward() {
	// 1. Columns exhausted
	if g.c >= g.n {
		g.enterBackward("columns exhausted, back substitution")
		return
	}

	// 2. Unusable pivot: swap or skip
	if math.Abs(g.at(g.r, g.c)) < machine.Epsilon {
		for i := g.r + 1; i < g.n; i++ {
			if math.Abs(g.at(i, g.c)) > machine.Epsilon {
				_ = g.m.SwapRows(g.r, i)
				g.b[g.r], g.b[i] = g.b[i], g.b[g.r]
				g.Say(fmt.Sprintf("swapped rows %d and %d", g.r, i))
				return
			}
		}
		g.c++
		g.Say(fmt.Sprintf("column %d has no usable pivot, skipped", g.c-1))
		return
	}

	// 3. Eliminate the next row below the pivot
	if g.next < g.n {
		i := g.next
		factor := g.at(i, g.c) / g.at(g.r, g.c)
		_ = g.m.AddScaledRow(i, g.r, -factor)
		g.b[i] -= factor * g.b[g.r]
		g.next++
		msg := fmt.Sprintf("row %d -= %.4g × row %d", i, factor, g.r)
		if g.next < g.n {
			g.Say(msg)
			return
		}
		g.advance(msg + "; ")
		return
	}

	// 4. No rows below: advance
	g.advance("")
}

// advance moves the pivot to (r+1, c+1), or enters backward after the last row.
func (g *Gauss) advance(prefix string) {
	if g.r+1 >= g.n {
		g.enterBackward(prefix + "elimination done, back substitution")
		return
	}
	g.r++
	g.c++
	g.next = g.r + 1
	g.Say(fmt.Sprintf("%spivot (%d,%d) selected", prefix, g.r, g.c))
}

func (g *Gauss) enterBackward(msg string) {
	g.r = g.n - 1
	g.c = g.n - 1
	g.Enter(PhaseBackward, msg)
}

// backward performs one normalization or substitution at row r.
func (g *Gauss) backward() {
	r := g.r
	d := g.at(r, r)

	if math.Abs(d) < machine.Epsilon {
		g.Finish(machine.Result{
			Solved:     false,
			Steps:      g.Steps(),
			Complexity: ComplexityGauss,
			Index:      -1,
			Reason:     ReasonSingular,
		}, fmt.Sprintf("row %d: zero diagonal, %s", r, ReasonSingular))
		return
	}

	if math.Abs(d-1) > machine.Epsilon {
		_ = g.m.ScaleRow(r, 1/d)
		g.b[r] /= d
		g.Say(fmt.Sprintf("row %d normalized by %.4g", r, d))
		return
	}

	for i := r - 1; i >= 0; i-- {
		f := g.at(i, r)
		_ = g.m.AddScaledRow(i, r, -f)
		g.b[i] -= f * g.b[r]
	}
	g.r--
	g.c = g.r
	if g.r >= 0 {
		g.Say(fmt.Sprintf("x%d = %.4g substituted", r, g.b[r]))
		return
	}
	g.Finish(machine.Result{
		Solved:     true,
		Steps:      g.Steps(),
		Complexity: ComplexityGauss,
		Index:      -1,
		Solution:   append([]float64(nil), g.b...),
	}, "solution found")
}

// Pivot returns the active pivot (row, col); in backward both equal the current row.
func (g *Gauss) Pivot() (int, int) { return g.r, g.c }

// Matrix returns a copy of the working matrix.
func (g *Gauss) Matrix() [][]float64 { return g.m.ToRows() }

// Vector returns a copy of the working right-hand side.
func (g *Gauss) Vector() []float64 { return append([]float64(nil), g.b...) }

// Snapshot returns the working matrix, vector and pivot.
func (g *Gauss) Snapshot() machine.Snapshot {
	return g.Base.Snapshot(
		machine.NumericRegister(RegMatrix, flatten(g.m)),
		machine.NumericRegister(RegVector, g.b),
		machine.IntRegister(RegPivot, []int{g.r, g.c}),
	)
}

var _ machine.Machine = (*Gauss)(nil)
