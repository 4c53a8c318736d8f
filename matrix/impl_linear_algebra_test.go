// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/phasehull/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestSolve_NeedsPivoting uses a system whose (0,0) entry is zero; an
// unpivoted Doolittle factorization would fail on it.
func TestSolve_NeedsPivoting(t *testing.T) {
	a := MustRows(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 2},
	})
	x, err := matrix.Solve(a, []float64{3, 5, 8})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 3, 4}, x, tol)
}

func TestSolve_General(t *testing.T) {
	a := MustRows(t, [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	x, err := matrix.Solve(a, []float64{8, -11, -3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, 1e-10)
}

func TestSolve_Errors(t *testing.T) {
	_, err := matrix.Solve(MustRows(t, [][]float64{{1, 2}, {2, 4}}), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(MustDense(t, 2, 3), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Solve(MustRows(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, 1},
		{"swap", [][]float64{{0, 1}, {1, 0}}, -1},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(MustRows(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, d, 1e-9)
		})
	}
	_, err := matrix.Det(MustDense(t, 1, 2))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRank(t *testing.T) {
	r, err := matrix.Rank(MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	r, err = matrix.Rank(MustRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	r, err = matrix.Rank(MustDense(t, 3, 3), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	// interface path, and a loose tolerance that drops the small pivot
	thin := MustRows(t, [][]float64{{1, 0}, {0.5, 1e-6}})
	r, err = matrix.Rank(hide{thin}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	r, err = matrix.Rank(thin, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	_, err = matrix.Rank(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNullVector(t *testing.T) {
	n, err := matrix.NullVector(MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3, 6, -3}, n, tol)

	// orthogonal to every row
	a := MustRows(t, [][]float64{{1, 0, 2, -1}, {0, 3, 1, 1}, {2, 1, 0, 5}})
	n, err = matrix.NullVector(a)
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		var s float64
		for j, v := range a.Row(i) {
			s += v * n[j]
		}
		assert.InDelta(t, 0, s, 1e-9, "row %d", i)
	}

	// dependent rows collapse to zero
	n, err = matrix.NullVector(MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, n, tol)

	_, err = matrix.NullVector(MustDense(t, 2, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
