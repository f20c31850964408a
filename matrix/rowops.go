// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRows(opSwapRows, i, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies row i by f in place.
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, f float64) error {
	if err := m.checkRows(opScaleRow, i, i); err != nil {
		return err
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= f
	}

	return nil
}

// AddScaledRow performs row_dst += f·row_src in place.
// Eliminating with factor x is AddScaledRow(i, r, -x).
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, f float64) error {
	if err := m.checkRows(opAddScaled, dst, src); err != nil {
		return err
	}
	d, s := m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c]
	for k := range d {
		d[k] += f * s[k]
	}

	return nil
}

func (m *Dense) checkRows(tag string, i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("%s(%d,%d): %w", tag, i, j, ErrOutOfRange)
	}

	return nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrDimensionMismatch: len(x) != m.Cols().
//
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	var acc float64
	for i := 0; i < m.r; i++ {
		acc = 0
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Residual returns max_i |(m·x)_i - b_i|.
//
// Errors:
//   - ErrDimensionMismatch: len(x) != m.Cols() or len(b) != m.Rows().
func Residual(m *Dense, x, b []float64) (float64, error) {
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	y, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	var worst float64
	for i := range y {
		if d := abs(y[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
