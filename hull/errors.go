// SPDX-License-Identifier: MIT

package hull

import "errors"

var (
	// ErrDimensionMismatch is returned when points have different lengths or
	// a query point does not match the simplex dimension.
	ErrDimensionMismatch = errors.New("hull: dimension mismatch")

	// ErrDegenerateHull is returned when the point set does not span the full
	// space (too few points, or all points in a lower-dimensional flat).
	ErrDegenerateHull = errors.New("hull: degenerate point set")

	// ErrDegenerateSimplex is returned when a simplex's vertices are affinely
	// dependent, so barycentric coordinates are undefined.
	ErrDegenerateSimplex = errors.New("hull: degenerate simplex")

	// ErrNotContained is returned by FindContaining when no simplex holds the point.
	ErrNotContained = errors.New("hull: point not contained in any simplex")
)
