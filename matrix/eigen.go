// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Eigen performs classical Jacobi eigenvalue decomposition of a symmetric
// matrix. It returns the eigenvalues (in diagonal order, unsorted) and the
// matrix Q whose columns are the matching eigenvectors. tol bounds both the
// symmetry check and the largest remaining off-diagonal magnitude; maxIter
// caps the number of rotations.
//
// Errors:
//   - ErrNonSquare, ErrAsymmetry: input validation.
//   - ErrEigenFailed: no convergence within maxIter rotations.
//
// Complexity: O(n²) per rotation to find the pivot, O(n) to apply it.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	// 1. Validate input
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.r

	// 2. Prepare A (work) and Q (identity)
	a := m.Clone()
	q, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	// 3. Rotate the largest off-diagonal entry to zero until converged
	var iter int
	for iter = 0; iter < maxIter; iter++ {
		p, r, off := a.maxOffDiagonal()
		if off < tol {
			break
		}
		a.jacobiRotate(q, p, r)
	}
	if iter == maxIter {
		if _, _, off := a.maxOffDiagonal(); off >= tol {
			return nil, nil, fmt.Errorf("%s: %d rotations: %w", opEigen, maxIter, ErrEigenFailed)
		}
	}

	// 4. Diagonal holds the eigenvalues
	return a.Diagonal(), q, nil
}

// maxOffDiagonal returns the upper-triangle position with the largest |a(p,q)|.
func (m *Dense) maxOffDiagonal() (p, q int, off float64) {
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := math.Abs(m.data[i*n+j]); v > off {
				p, q, off = i, j, v
			}
		}
	}

	return p, q, off
}

// jacobiRotate zeroes a(p,q) with one plane rotation and accumulates it into v.
func (m *Dense) jacobiRotate(v *Dense, p, q int) {
	n := m.r
	app, aqq, apq := m.data[p*n+p], m.data[q*n+q], m.data[p*n+q]
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for k := 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		akp, akq := m.data[k*n+p], m.data[k*n+q]
		m.data[k*n+p] = c*akp - s*akq
		m.data[p*n+k] = m.data[k*n+p]
		m.data[k*n+q] = s*akp + c*akq
		m.data[q*n+k] = m.data[k*n+q]
	}
	m.data[p*n+p] = app - t*apq
	m.data[q*n+q] = aqq + t*apq
	m.data[p*n+q] = 0
	m.data[q*n+p] = 0

	for k := 0; k < n; k++ {
		vkp, vkq := v.data[k*n+p], v.data[k*n+q]
		v.data[k*n+p] = c*vkp - s*vkq
		v.data[k*n+q] = s*vkp + c*vkq
	}
}
