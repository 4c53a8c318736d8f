// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the hull and
// phase-diagram layers: partially pivoted LU with linear solves and
// determinants, numerical rank and hyperplane null vectors.
//
// Purpose:
//   - Declare canonical kernels and the operation tags used for error reporting.
//   - Keep every solve on a single pivoted factorization (LUP) so barycentric
//     systems with zero leading entries (pure-element vertices) factor cleanly.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.
//   - Inputs are never mutated; factors and results are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLUP     = "LUP"
	opSolve   = "Solve"
	opDet     = "Det"
	opRank    = "Rank"
	opNullVec = "NullVector"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LUP computes the partially pivoted factorization P·A = L·U.
// MAIN DESCRIPTION:
//   - Doolittle elimination with row pivoting on the largest |a_ik| in column k.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); copy A into a working buffer.
//   - Stage 2: for k=0..n-1 pick pivot row, swap, eliminate below; store
//     multipliers in the strictly lower triangle.
//
// Behavior highlights:
//   - Pivot threshold is relative: |p| <= DefaultPivotTolerance*max|A| ⇒ ErrSingular.
//   - Ties in pivot magnitude resolve to the lowest row index (deterministic).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	a := src.cloneDense()
	n := a.r
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	tol := DefaultPivotTolerance * maxAbs(a.data)
	sign := 1.0

	var (
		i, j, k, p int
		best, v    float64
		factor     float64
	)
	for k = 0; k < n; k++ {
		// choose pivot row
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol || best == 0 {
			return nil, matrixErrorf(opLUP, ErrSingular)
		}
		if p != k {
			a.swapRows(p, k)
			piv[p], piv[k] = piv[k], piv[p]
			sign = -sign
		}
		// eliminate below the pivot
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / a.data[k*n+k]
			a.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return &LUFactors{lu: a, piv: piv, sign: sign}, nil
}

// Solve returns x with A·x = b using the stored factors.
// Complexity: O(n^2).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// forward substitution on the permuted rhs: L·y = P·b
	for i = 0; i < n; i++ {
		sum = b[f.piv[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}

	return x, nil
}

// Det returns det(A) from the factors: sign(P)·Π U[i,i].
func (f *LUFactors) Det() float64 {
	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det
}

// Solve solves A·x = b for square, non-singular A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3) (factorization dominates).
func Solve(a Matrix, b []float64) ([]float64, error) {
	f, err := LUP(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Det returns the determinant of a square matrix. A singular matrix yields
// (0, nil): singularity is a value here, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Det(a Matrix) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	f, err := LUP(a)
	if err != nil {
		// the only remaining failure mode of LUP is a zero pivot
		return 0, nil
	}

	return f.Det(), nil
}

// Rank returns the numerical rank of m by Gaussian elimination with partial
// pivoting. A pivot is zero when |p| <= tol*max|m|; tol<=0 selects
// DefaultRankTolerance.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Rank(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if tol <= 0 {
		tol = DefaultRankTolerance
	}
	a := src.cloneDense()
	thr := tol * maxAbs(a.data)
	var (
		rank, row, col, i, j, p int
		best, v, factor         float64
	)
	for col = 0; col < a.c && row < a.r; col++ {
		p, best = row, math.Abs(a.data[row*a.c+col])
		for i = row + 1; i < a.r; i++ {
			if v = math.Abs(a.data[i*a.c+col]); v > best {
				p, best = i, v
			}
		}
		if best <= thr || best == 0 {
			continue
		}
		a.swapRows(p, row)
		for i = row + 1; i < a.r; i++ {
			factor = a.data[i*a.c+col] / a.data[row*a.c+col]
			for j = col; j < a.c; j++ {
				a.data[i*a.c+j] -= factor * a.data[row*a.c+j]
			}
		}
		row++
		rank++
	}

	return rank, nil
}

// NullVector returns a vector orthogonal to every row of an (n-1)×n matrix:
// the generalized cross product, whose component j is (-1)^j times the
// determinant of m with column j removed. The result is NOT normalized; it
// is the zero vector when the rows are linearly dependent.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape is not (n-1)×n).
//
// Complexity:
//   - Time O(n^4), Space O(n^2).
func NullVector(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullVec, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opNullVec, err)
	}
	n := src.c
	if src.r != n-1 {
		return nil, matrixErrorf(opNullVec, ErrDimensionMismatch)
	}
	out := make([]float64, n)
	minor, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opNullVec, err)
	}
	var i, j, col, k int
	for col = 0; col < n; col++ {
		for i = 0; i < n-1; i++ {
			k = 0
			for j = 0; j < n; j++ {
				if j == col {
					continue
				}
				minor.data[i*minor.c+k] = src.data[i*n+j]
				k++
			}
		}
		det, err := Det(minor)
		if err != nil {
			return nil, matrixErrorf(opNullVec, err)
		}
		if col%2 == 1 {
			det = -det
		}
		out[col] = det
	}

	return out, nil
}
