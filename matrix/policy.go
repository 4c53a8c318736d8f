// SPDX-License-Identifier: MIT

// Package matrix: numeric policy (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Every tolerance used by a kernel is named here; no inline magic numbers.
package matrix

import "math"

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the relative pivot threshold for LUP/Solve/Det.
	// A pivot p is treated as zero when |p| <= DefaultPivotTolerance * max|A|.
	DefaultPivotTolerance = 1e-14

	// DefaultRankTolerance is the relative threshold used by Rank when the
	// caller passes tol <= 0.
	DefaultRankTolerance = 1e-10
)

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// maxAbs returns max|x_i| over a flat buffer (0 for empty input).
func maxAbs(data []float64) float64 {
	var m, a float64
	for _, v := range data {
		a = math.Abs(v)
		if a > m {
			m = a
		}
	}

	return m
}
