// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/hull"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// elementIndex returns the coordinate of el or ErrElementNotInDiagram.
func (a *Analyzer) elementIndex(el composition.Element) (int, error) {
	i := composition.IndexOf(a.elements, el)
	if i < 0 {
		return -1, fmt.Errorf("analyzer: %s: %w", el, ErrElementNotInDiagram)
	}

	return i, nil
}

func (a *Analyzer) chempotMap(facet int) map[composition.Element]float64 {
	out := make(map[composition.Element]float64, len(a.elements))
	for j, el := range a.elements {
		out[el] = a.chempots[facet][j]
	}

	return out
}

// FacetChempots returns the chemical potentials of every element at which
// the phases of facet i coexist: the hyperplane through their energies.
//
// Errors:
//   - ErrFacetOutOfRange.
func (a *Analyzer) FacetChempots(i int) (map[composition.Element]float64, error) {
	if i < 0 || i >= len(a.facets) {
		return nil, fmt.Errorf("analyzer: facet %d of %d: %w", i, len(a.facets), ErrFacetOutOfRange)
	}

	return a.chempotMap(i), nil
}

// CompositionChempots returns the chemical potentials of the facet that holds
// comp.
//
// Errors:
//   - ErrCompositionNotInDiagram.
func (a *Analyzer) CompositionChempots(comp composition.Composition) (map[composition.Element]float64, error) {
	facet, _, err := a.facetOf(comp)
	if err != nil {
		return nil, err
	}

	return a.chempotMap(facet), nil
}

// TransitionChempots returns the chemical potentials of el at which the
// equilibrium phases change: el's potential over all facets, deduplicated
// within NumericalTol, highest first.
//
// Errors:
//   - ErrElementNotInDiagram.
func (a *Analyzer) TransitionChempots(el composition.Element) ([]float64, error) {
	j, err := a.elementIndex(el)
	if err != nil {
		return nil, err
	}
	all := make([]float64, len(a.chempots))
	for i, mu := range a.chempots {
		all[i] = mu[j]
	}
	sort.Float64s(all)

	var clean []float64
	for _, c := range all {
		if len(clean) == 0 || c-clean[len(clean)-1] > a.opts.NumericalTol {
			clean = append(clean, c)
		}
	}
	for l, r := 0, len(clean)-1; l < r; l, r = l+1, r-1 {
		clean[l], clean[r] = clean[r], clean[l]
	}

	return clean, nil
}

// ChempotRangeMap maps stable entries to the boundary of their stability
// region in the chemical-potential space of els.
// MAIN DESCRIPTION:
//   - Every facet is a point in μ-space (FacetChempots). Every pair of
//     facets sharing exactly len(els) phases yields a piece: a Simplex whose
//     vertices are the two facet points restricted to els, credited to each
//     shared phase.
//   - With len(els) == Dim()-1 the shared phases form a hull ridge, so the
//     pairs are exactly the adjacent facets and the pieces trace the region
//     boundary. With fewer elements the pairs are a superset: two facets may
//     share len(els) phases without touching, and their piece can cut through
//     the projected region instead of bounding it.
//
// Behavior highlights:
//   - referenced: coordinates are relative to the elemental references
//     (μ - μ_ref); otherwise absolute.
//   - Pure-element entries of els are left out of the result.
//   - Pieces are appended in facet-pair order (i < j), so the output is
//     deterministic.
//
// Errors:
//   - ErrElementNotInDiagram.
func (a *Analyzer) ChempotRangeMap(els []composition.Element, referenced bool) (map[phasediagram.Entry][]*hull.Simplex, error) {
	inds := make([]int, len(els))
	shift := make([]float64, len(els))
	for k, el := range els {
		j, err := a.elementIndex(el)
		if err != nil {
			return nil, err
		}
		inds[k] = j
		if referenced {
			ref, _ := a.pd.ElRef(el)
			shift[k] = ref.EnergyPerAtom()
		}
	}

	out := make(map[phasediagram.Entry][]*hull.Simplex)
	for i := 0; i < len(a.facets); i++ {
		for j := i + 1; j < len(a.facets); j++ {
			common := hull.CommonVertices(a.facets[i], a.facets[j])
			if len(common) != len(els) {
				continue
			}
			coords := [][]float64{
				a.project(i, inds, shift),
				a.project(j, inds, shift),
			}
			s, err := hull.NewSimplex(coords)
			if err != nil {
				return nil, fmt.Errorf("analyzer: range between facets %d and %d: %w", i, j, err)
			}
			for _, v := range common {
				e := a.qhull[v]
				if isReferenceOf(e, els) {
					continue
				}
				out[e] = append(out[e], s)
			}
		}
	}

	return out, nil
}

// project returns facet i's chemical potentials at inds minus shift.
func (a *Analyzer) project(i int, inds []int, shift []float64) []float64 {
	out := make([]float64, len(inds))
	for k, j := range inds {
		out[k] = a.chempots[i][j] - shift[k]
	}

	return out
}

// isReferenceOf reports whether e is a pure sample of one of els.
func isReferenceOf(e phasediagram.Entry, els []composition.Element) bool {
	c := e.Composition()
	if !c.IsElement() {
		return false
	}

	return composition.IndexOf(els, c.Elements()[0]) >= 0
}
