// SPDX-License-Identifier: MIT

package hull

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phasehull/matrix"
)

// NewSimplex builds a Simplex from k vertex coordinates of equal length m.
// A full-dimensional simplex (k == m+1) is factored once here, so queries on
// the returned value are read-only and safe for concurrent use.
//
// Errors:
//   - ErrDimensionMismatch (no vertices or ragged coordinates).
//
// Affinely dependent vertices are not an error here; BaryCoords reports
// ErrDegenerateSimplex for them.
func NewSimplex(coords [][]float64) (*Simplex, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("hull: empty simplex: %w", ErrDimensionMismatch)
	}
	m := len(coords[0])
	cp := make([][]float64, len(coords))
	for i, c := range coords {
		if len(c) != m {
			return nil, fmt.Errorf("hull: vertex %d has %d coords, want %d: %w", i, len(c), m, ErrDimensionMismatch)
		}
		cp[i] = append([]float64(nil), c...)
	}
	s := &Simplex{coords: cp}
	if len(cp) == m+1 {
		s.lu, s.luErr = factorAugmented(cp)
	} else {
		s.luErr = fmt.Errorf("hull: %d vertices in %d dims: %w", len(cp), m, ErrDegenerateSimplex)
	}

	return s, nil
}

// factorAugmented factors Aᵀ where row i of A is [coords[i] | 1].
// Solving Aᵀ·λ = [p | 1] yields the barycentric coordinates λ of p.
func factorAugmented(coords [][]float64) (*matrix.LUFactors, error) {
	k := len(coords)
	rows := make([][]float64, k)
	for r := 0; r < k; r++ {
		rows[r] = make([]float64, k)
	}
	for i, c := range coords {
		for j, v := range c {
			rows[j][i] = v
		}
		rows[k-1][i] = 1
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("hull: simplex: %w", err)
	}
	lu, err := matrix.LUP(a)
	if err != nil {
		return nil, fmt.Errorf("hull: simplex: %v: %w", err, ErrDegenerateSimplex)
	}

	return lu, nil
}

// Coords returns a copy of the vertex coordinates.
func (s *Simplex) Coords() [][]float64 {
	out := make([][]float64, len(s.coords))
	for i, c := range s.coords {
		out[i] = append([]float64(nil), c...)
	}

	return out
}

// NumVertices returns k.
func (s *Simplex) NumVertices() int { return len(s.coords) }

// SpaceDim returns the coordinate length m.
func (s *Simplex) SpaceDim() int { return len(s.coords[0]) }

// IsDegenerate reports whether barycentric queries are unavailable: the
// simplex is not full-dimensional or its vertices are affinely dependent.
func (s *Simplex) IsDegenerate() bool { return s.luErr != nil }

// BaryCoords returns the barycentric coordinates of p with respect to the
// vertices (they sum to 1; all ≥ 0 iff p lies inside).
//
// Errors:
//   - ErrDimensionMismatch (len(p) != SpaceDim()).
//   - ErrDegenerateSimplex (not full-dimensional or affinely dependent).
func (s *Simplex) BaryCoords(p []float64) ([]float64, error) {
	if len(p) != s.SpaceDim() {
		return nil, fmt.Errorf("hull: point has %d coords, simplex %d: %w", len(p), s.SpaceDim(), ErrDimensionMismatch)
	}
	if s.luErr != nil {
		return nil, s.luErr
	}
	rhs := make([]float64, len(p)+1)
	copy(rhs, p)
	rhs[len(p)] = 1

	return s.lu.Solve(rhs)
}

// InSimplex reports whether p lies in the simplex, allowing every
// barycentric coordinate to be as low as -tol.
func (s *Simplex) InSimplex(p []float64, tol float64) (bool, error) {
	bary, err := s.BaryCoords(p)
	if err != nil {
		return false, err
	}
	for _, b := range bary {
		if b < -tol {
			return false, nil
		}
	}

	return true, nil
}

// Volume returns the unsigned volume of a full-dimensional simplex
// (|det(edges)| / m!); 0 for any other simplex.
func (s *Simplex) Volume() float64 {
	m := s.SpaceDim()
	if len(s.coords) != m+1 || m == 0 {
		return 0
	}
	edges := make([][]float64, m)
	for i := 1; i <= m; i++ {
		row := make([]float64, m)
		for j := range row {
			row[j] = s.coords[i][j] - s.coords[0][j]
		}
		edges[i-1] = row
	}
	a, err := matrix.NewDenseFromRows(edges)
	if err != nil {
		return 0
	}
	det, err := matrix.Det(a)
	if err != nil {
		return 0
	}
	fact := 1.0
	for i := 2; i <= m; i++ {
		fact *= float64(i)
	}

	return math.Abs(det) / fact
}

// Interpolate returns Σ bary[i]·values[i].
//
// Errors:
//   - ErrDimensionMismatch (lengths differ from NumVertices()).
func (s *Simplex) Interpolate(bary, values []float64) (float64, error) {
	if len(bary) != len(s.coords) || len(values) != len(s.coords) {
		return 0, fmt.Errorf("hull: interpolate over %d vertices: %w", len(s.coords), ErrDimensionMismatch)
	}

	return dot(bary, values), nil
}

// String prints the vertex coordinates.
func (s *Simplex) String() string { return fmt.Sprintf("Simplex%v", s.coords) }

// FindContaining returns the index and barycentric coordinates of the first
// simplex in simplices that contains p within tol. Degenerate simplices are
// skipped.
//
// Errors:
//   - ErrDimensionMismatch (p does not match a simplex's dimension).
//   - ErrNotContained (no simplex contains p).
func FindContaining(simplices []*Simplex, p []float64, tol float64) (int, []float64, error) {
	for i, s := range simplices {
		bary, err := s.BaryCoords(p)
		if err != nil {
			if errors.Is(err, ErrDegenerateSimplex) {
				continue
			}
			return -1, nil, err
		}
		inside := true
		for _, b := range bary {
			if b < -tol {
				inside = false
				break
			}
		}
		if inside {
			return i, bary, nil
		}
	}

	return -1, nil, fmt.Errorf("hull: %v: %w", p, ErrNotContained)
}
