// SPDX-License-Identifier: MIT

package hull

import "github.com/katalvlaran/phasehull/matrix"

// Facet is one simplicial facet of a convex hull.
//   - Vertices: d indices into the input points, ascending.
//   - Normal  : unit outward normal.
//   - Offset  : Normal·x + Offset == 0 on the facet plane, > 0 outside.
type Facet struct {
	Vertices []int
	Normal   []float64
	Offset   float64
}

// Distance returns the signed distance of p from the facet plane (> 0 outside).
func (f Facet) Distance(p []float64) float64 {
	return dot(f.Normal, p) + f.Offset
}

// Simplex is an ordered set of k points in an m-dimensional space.
// Barycentric queries need k == m+1 (a full-dimensional simplex); smaller
// simplices (segments of a chemical-potential map, for example) are valid
// values but only carry their coordinates.
type Simplex struct {
	coords [][]float64
	lu     *matrix.LUFactors // factors of the augmented transpose; nil unless full-dimensional
	luErr  error
}
