// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/phasehull/matrix"
)

// ConvexHull computes the convex hull of points in d = len(points[0]) ≥ 2
// dimensions and returns its facets.
// MAIN DESCRIPTION:
//   - Beneath-beyond: start from a maximal-volume-ish initial simplex, then
//     add points one at a time, replacing the facets they see by a cone from
//     the horizon to the new point.
//
// Implementation:
//   - Stage 1: validate shape; reject point sets whose affine rank is below d
//     (matrix.Rank of the offsets from the first point, pivots <= eps are
//     zero); pick d+1 affinely independent points greedily (each next point
//     maximizes distance from the current affine hull).
//   - Stage 2: orient the d+1 initial facets away from the simplex centroid.
//   - Stage 3: for every other point in input order, collect facets with
//     Distance > eps; horizon ridges are the (d-1)-subsets that occur in
//     exactly one visible facet; replace visible facets by ridge+point facets.
//
// Behavior highlights:
//   - Deterministic: input order and lowest-index tie-breaks only.
//   - Points within eps of the hull surface are never vertices.
//
// Errors:
//   - ErrDimensionMismatch (ragged input, d < 2 or d > MaxDim).
//   - ErrDegenerateHull (fewer than d+1 points or no full-dimensional simplex).
//
// Complexity:
//   - Time O(n·F·d³), Space O(F·d).
func ConvexHull(points [][]float64, opts ...Option) ([]Facet, error) {
	if len(points) == 0 {
		return nil, ErrDegenerateHull
	}
	d := len(points[0])
	if d < 2 || d > MaxDim {
		return nil, fmt.Errorf("hull: need 2 <= d <= %d, got %d: %w", MaxDim, d, ErrDimensionMismatch)
	}
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("hull: point %d has %d coords, want %d: %w", i, len(p), d, ErrDimensionMismatch)
		}
	}
	if len(points) < d+1 {
		return nil, fmt.Errorf("hull: %d points in %d dims: %w", len(points), d, ErrDegenerateHull)
	}
	eps := gatherOptions(opts).tolerance(points)
	rank, err := affineRank(points, eps)
	if err != nil {
		return nil, err
	}
	if rank < d {
		return nil, fmt.Errorf("hull: points span only %d of %d dims: %w", rank, d, ErrDegenerateHull)
	}

	simplex, err := initialSimplex(points, eps)
	if err != nil {
		return nil, err
	}
	interior := centroid(points, simplex)

	h := &builder{points: points, interior: interior, eps: eps}
	for skip := range simplex {
		verts := make([]int, 0, d)
		for j, v := range simplex {
			if j != skip {
				verts = append(verts, v)
			}
		}
		if err = h.addFacet(verts); err != nil {
			return nil, err
		}
	}

	inSimplex := make(map[int]bool, len(simplex))
	for _, v := range simplex {
		inSimplex[v] = true
	}
	for i := range points {
		if inSimplex[i] {
			continue
		}
		if err = h.insert(i); err != nil {
			return nil, err
		}
	}

	return h.result(), nil
}

// builder holds the mutable state of one hull construction.
type builder struct {
	points   [][]float64
	interior []float64
	eps      float64
	facets   []Facet
	alive    []bool
}

// addFacet computes the oriented plane of verts and appends the facet.
func (h *builder) addFacet(verts []int) error {
	sort.Ints(verts)
	normal, err := planeNormal(h.points, verts)
	if err != nil {
		return err
	}
	offset := -dot(normal, h.points[verts[0]])
	if dot(normal, h.interior)+offset > 0 {
		for i := range normal {
			normal[i] = -normal[i]
		}
		offset = -offset
	}
	h.facets = append(h.facets, Facet{Vertices: verts, Normal: normal, Offset: offset})
	h.alive = append(h.alive, true)

	return nil
}

// insert adds point i to the hull if it lies outside.
func (h *builder) insert(i int) error {
	p := h.points[i]
	var visible []int
	for fi, f := range h.facets {
		if h.alive[fi] && f.Distance(p) > h.eps {
			visible = append(visible, fi)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	type ridge struct {
		verts []int
		count int
	}
	ridges := make(map[ridgeKey]*ridge)
	var order []ridgeKey
	for _, fi := range visible {
		vs := h.facets[fi].Vertices
		for skip := range vs {
			r := make([]int, 0, len(vs)-1)
			for j, v := range vs {
				if j != skip {
					r = append(r, v)
				}
			}
			key := newRidgeKey(r)
			if rr, ok := ridges[key]; ok {
				rr.count++
				continue
			}
			ridges[key] = &ridge{verts: r, count: 1}
			order = append(order, key)
		}
		h.alive[fi] = false
	}

	for _, key := range order {
		r := ridges[key]
		if r.count != 1 {
			continue
		}
		verts := append(append(make([]int, 0, len(r.verts)+1), r.verts...), i)
		if err := h.addFacet(verts); err != nil {
			return err
		}
	}

	return nil
}

// result returns the live facets in creation order.
func (h *builder) result() []Facet {
	out := make([]Facet, 0, len(h.facets))
	for fi, f := range h.facets {
		if h.alive[fi] {
			out = append(out, f)
		}
	}

	return out
}

// affineRank returns the dimension of the affine hull of points: the
// numerical rank of their offsets from points[0], where a pivot of magnitude
// <= eps counts as zero. eps == 0 falls back to matrix.DefaultRankTolerance.
func affineRank(points [][]float64, eps float64) (int, error) {
	d := len(points[0])
	offsets := make([][]float64, len(points)-1)
	var scale float64
	for i := 1; i < len(points); i++ {
		row := make([]float64, d)
		for j := range row {
			row[j] = points[i][j] - points[0][j]
			scale = math.Max(scale, math.Abs(row[j]))
		}
		offsets[i-1] = row
	}
	if scale == 0 {
		return 0, nil
	}
	m, err := matrix.NewDenseFromRows(offsets)
	if err != nil {
		return 0, fmt.Errorf("hull: affine rank: %w", err)
	}
	rank, err := matrix.Rank(m, eps/scale)
	if err != nil {
		return 0, fmt.Errorf("hull: affine rank: %w", err)
	}

	return rank, nil
}

// initialSimplex greedily selects d+1 affinely independent point indices.
func initialSimplex(points [][]float64, eps float64) ([]int, error) {
	d := len(points[0])
	// start from the lexicographically smallest point
	first := 0
	for i := 1; i < len(points); i++ {
		if lexLess(points[i], points[first]) {
			first = i
		}
	}
	chosen := []int{first}
	basis := make([][]float64, 0, d)
	residual := make([]float64, d)
	for len(chosen) < d+1 {
		best, bestDist := -1, 0.0
		var bestVec []float64
		for i, p := range points {
			for j := range residual {
				residual[j] = p[j] - points[first][j]
			}
			for _, b := range basis {
				proj := dot(residual, b)
				for j := range residual {
					residual[j] -= proj * b[j]
				}
			}
			if dist := norm(residual); dist > bestDist {
				best, bestDist = i, dist
				bestVec = append(bestVec[:0], residual...)
			}
		}
		if best < 0 || bestDist <= eps {
			return nil, fmt.Errorf("hull: points span only %d of %d dims: %w", len(basis), d, ErrDegenerateHull)
		}
		for j := range bestVec {
			bestVec[j] /= bestDist
		}
		basis = append(basis, append([]float64(nil), bestVec...))
		chosen = append(chosen, best)
	}

	return chosen, nil
}

// planeNormal returns the unit normal of the hyperplane through the d points
// verts, as the null vector of the d-1 edge vectors from verts[0].
func planeNormal(points [][]float64, verts []int) ([]float64, error) {
	d := len(points[0])
	p0 := points[verts[0]]
	edges := make([][]float64, d-1)
	for k := 1; k < d; k++ {
		row := make([]float64, d)
		for j := range row {
			row[j] = points[verts[k]][j] - p0[j]
		}
		edges[k-1] = row
	}
	m, err := matrix.NewDenseFromRows(edges)
	if err != nil {
		return nil, fmt.Errorf("hull: facet %v: %w", verts, err)
	}
	normal, err := matrix.NullVector(m)
	if err != nil {
		return nil, fmt.Errorf("hull: facet %v: %w", verts, err)
	}
	n := norm(normal)
	if n == 0 || math.IsNaN(n) {
		return nil, fmt.Errorf("hull: facet %v has no normal: %w", verts, ErrDegenerateHull)
	}
	for j := range normal {
		normal[j] /= n
	}

	return normal, nil
}

// CommonVertices returns the sorted intersection of two vertex lists.
func CommonVertices(a, b []int) []int {
	in := make(map[int]bool, len(a))
	for _, v := range a {
		in[v] = true
	}
	var out []int
	for _, v := range b {
		if in[v] {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}

// ridgeKey identifies a ridge by its sorted vertex indices. Unused slots
// stay -1, so keys of different lengths never collide.
type ridgeKey struct {
	n     int
	verts [MaxDim - 1]int
}

func newRidgeKey(verts []int) ridgeKey {
	k := ridgeKey{n: len(verts)}
	for i := range k.verts {
		k.verts[i] = -1
	}
	copy(k.verts[:], verts)

	return k
}

func centroid(points [][]float64, idx []int) []float64 {
	c := make([]float64, len(points[0]))
	for _, i := range idx {
		for j, v := range points[i] {
			c[j] += v
		}
	}
	for j := range c {
		c[j] /= float64(len(idx))
	}

	return c
}

func lexLess(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm(a []float64) float64 { return math.Sqrt(dot(a, a)) }
