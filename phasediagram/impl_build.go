// SPDX-License-Identifier: MIT

package phasediagram

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/hull"
)

// New builds the phase diagram of entries.
// MAIN DESCRIPTION:
//   - Projects every entry to (fractions of elements[1:], formation energy per
//     atom relative to the elemental references) and keeps the lower convex
//     hull of those points. Vertices of lower facets are the stable entries.
//
// Implementation:
//   - Stage 1: element space (WithElements or the sorted union over entries);
//     entries with foreign elements are dropped.
//   - Stage 2: per element, the single-element entry of lowest energy per
//     atom becomes its reference.
//   - Stage 3: per normalized composition keep the lowest energy per atom;
//     hull input = references + minima with formation energy < -tol.
//   - Stage 4: add a point above the centroid (energy max+1) so the set is
//     full-dimensional; every upper facet then touches it.
//   - Stage 5: keep facets without the extra point whose outward normal
//     points down the energy axis.
//
// Behavior highlights:
//   - One element: a single facet holding the reference.
//   - Only references on the hull: a single facet of all references.
//   - A hull failure on degenerate input falls back to the reference facet.
//   - Equal compositions never conflict: the lowest energy per atom wins, the
//     first one on ties.
//
// Errors:
//   - ErrNoEntries, ErrMissingElementReference, ErrDegenerateHull.
func New(entries []Entry, opts ...Option) (*PhaseDiagram, error) {
	o := gatherOptions(opts)
	elements := o.Elements
	if len(elements) == 0 {
		elements = elementsOf(entries)
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		c := e.Composition()
		if !c.IsEmpty() && c.IsSubsetOf(elements) {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 || len(elements) == 0 {
		return nil, ErrNoEntries
	}

	pd := &PhaseDiagram{
		elements:   append([]composition.Element(nil), elements...),
		allEntries: kept,
		elRefs:     make(map[composition.Element]Entry, len(elements)),
		opts:       o,
		logger:     o.Logger,
	}
	for _, e := range kept {
		c := e.Composition()
		if !c.IsElement() {
			continue
		}
		el := c.Elements()[0]
		if ref, ok := pd.elRefs[el]; !ok || e.EnergyPerAtom() < ref.EnergyPerAtom() {
			pd.elRefs[el] = e
		}
	}
	for _, el := range pd.elements {
		if _, ok := pd.elRefs[el]; !ok {
			return nil, fmt.Errorf("phasediagram: element %s: %w", el, ErrMissingElementReference)
		}
	}

	if err := pd.buildHull(minByComposition(kept)); err != nil {
		return nil, err
	}
	pd.collectStable()

	pd.logger.Debug("phase diagram built",
		"elements", len(pd.elements),
		"entries", len(pd.allEntries),
		"qhull_entries", len(pd.qhullEntries),
		"facets", len(pd.facets),
		"stable", len(pd.stable))

	return pd, nil
}

// buildHull fills qhullEntries, qhullData, facets and simplices.
func (pd *PhaseDiagram) buildHull(minima []Entry) error {
	dim := len(pd.elements)
	tol := pd.opts.FormationEnergyTol

	for _, el := range pd.elements {
		pd.appendQhull(pd.elRefs[el], 0)
	}
	for _, e := range minima {
		if e.Composition().IsElement() {
			continue
		}
		form := pd.formationPerAtom(e)
		if form < -tol {
			pd.appendQhull(e, form)
		}
	}

	refFacet := make([]int, dim)
	for i := range refFacet {
		refFacet[i] = i
	}
	switch {
	case dim == 1:
		pd.facets = [][]int{{0}}
	case len(pd.qhullEntries) == dim:
		pd.facets = [][]int{refFacet}
	default:
		facets, err := pd.lowerFacets()
		if errors.Is(err, hull.ErrDegenerateHull) {
			pd.logger.Warn("hull degenerate, falling back to reference facet", "error", err)
			facets = [][]int{refFacet}
		} else if err != nil {
			return fmt.Errorf("phasediagram: hull: %w", err)
		}
		pd.facets = facets
	}

	facets := pd.facets[:0]
	for _, f := range pd.facets {
		coords := make([][]float64, len(f))
		for i, v := range f {
			coords[i] = pd.qhullData[v][:dim-1]
		}
		s, err := hull.NewSimplex(coords)
		if err != nil {
			return fmt.Errorf("phasediagram: facet %v: %w", f, err)
		}
		if s.IsDegenerate() {
			pd.logger.Debug("dropping flat facet", "facet", f)
			continue
		}
		facets = append(facets, f)
		pd.simplices = append(pd.simplices, s)
	}
	pd.facets = facets
	if len(pd.facets) == 0 {
		return ErrDegenerateHull
	}

	return nil
}

func (pd *PhaseDiagram) appendQhull(e Entry, form float64) {
	row := append(pd.PDCoords(e.Composition()), form)
	pd.qhullEntries = append(pd.qhullEntries, e)
	pd.qhullData = append(pd.qhullData, row)
}

// lowerFacets runs the hull over qhullData plus the lifted centroid point.
func (pd *PhaseDiagram) lowerFacets() ([][]int, error) {
	dim := len(pd.elements)
	n := len(pd.qhullData)
	top := 0.0
	for _, row := range pd.qhullData {
		if row[dim-1] > top {
			top = row[dim-1]
		}
	}
	extra := make([]float64, dim)
	for j := 0; j < dim-1; j++ {
		extra[j] = 1 / float64(dim)
	}
	extra[dim-1] = top + 1
	points := append(append(make([][]float64, 0, n+1), pd.qhullData...), extra)

	var hopts []hull.Option
	if pd.opts.HullEpsilon > 0 {
		hopts = append(hopts, hull.WithEpsilon(pd.opts.HullEpsilon))
	}
	all, err := hull.ConvexHull(points, hopts...)
	if err != nil {
		return nil, err
	}

	var out [][]int
	for _, f := range all {
		if f.Vertices[len(f.Vertices)-1] == n {
			continue
		}
		if f.Normal[dim-1] >= -pd.opts.FormationEnergyTol {
			continue
		}
		out = append(out, append([]int(nil), f.Vertices...))
	}

	return out, nil
}

// collectStable marks facet vertices stable, in qhull order.
func (pd *PhaseDiagram) collectStable() {
	onHull := make([]bool, len(pd.qhullEntries))
	for _, f := range pd.facets {
		for _, v := range f {
			onHull[v] = true
		}
	}
	pd.stableSet = make(map[Entry]bool)
	for i, ok := range onHull {
		if ok {
			e := pd.qhullEntries[i]
			pd.stable = append(pd.stable, e)
			pd.stableSet[e] = true
		}
	}
}

// formationPerAtom assumes every element of e has a reference.
func (pd *PhaseDiagram) formationPerAtom(e Entry) float64 {
	c := e.Composition()
	form := e.EnergyPerAtom()
	for _, el := range c.Elements() {
		form -= c.Fraction(el) * pd.elRefs[el].EnergyPerAtom()
	}

	return form
}

// minByComposition keeps, per normalized composition, the entry with the
// lowest energy per atom; groups keep first-seen order.
func minByComposition(entries []Entry) []Entry {
	idx := make(map[string]int, len(entries))
	var out []Entry
	for _, e := range entries {
		key := e.Composition().Key()
		i, ok := idx[key]
		if !ok {
			idx[key] = len(out)
			out = append(out, e)
			continue
		}
		if e.EnergyPerAtom() < out[i].EnergyPerAtom() {
			out[i] = e
		}
	}

	return out
}

func elementsOf(entries []Entry) []composition.Element {
	seen := make(map[composition.Element]bool)
	var els []composition.Element
	for _, e := range entries {
		for _, el := range e.Composition().Elements() {
			if !seen[el] {
				seen[el] = true
				els = append(els, el)
			}
		}
	}

	return composition.SortElements(els)
}
