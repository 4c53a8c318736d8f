// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense storage and the kernels.
// Errors and numeric policy live in dedicated files (errors.go, policy.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// LUFactors holds a partially pivoted LU factorization P·A = L·U packed into
// a single n×n buffer (unit diagonal of L implied).
//   - lu   : packed factors, row-major.
//   - piv  : piv[i] is the original row placed at position i.
//   - sign : +1/-1 parity of the permutation (used by Det).
type LUFactors struct {
	lu   *Dense
	piv  []int
	sign float64
}
