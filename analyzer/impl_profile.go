// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// ElementProfile follows comp as the chemical potential of el falls from its
// elemental value through every transition chemical potential, and records
// each change of equilibrium phases.
// MAIN DESCRIPTION:
//   - For each transition potential c (highest first) the stable entries are
//     re-hulled open to el at c-1e-5; the closed part of comp decomposes
//     there. A step is emitted whenever the set of phases changes.
//
// Implementation:
//   - Stage 1: TransitionChempots(el); closed composition comp' = comp - el.
//   - Stage 2: per c: grand-potential diagram, Decomposition(comp'), keep
//     phases with weight > CompTol.
//   - Stage 3: Evolution = Σ w_i·N'·n_el,i/n'_i - n_el(comp), where w_i is
//     the grand-canonical weight of phase i, N' the closed atom count of
//     comp, n_el,i and n'_i the el and closed atom counts of phase i.
//
// Errors:
//   - ErrElementNotInDiagram.
//   - ErrCompositionNotInDiagram (comp has foreign elements or only el).
func (a *Analyzer) ElementProfile(el composition.Element, comp composition.Composition) ([]ProfileStep, error) {
	if _, err := a.elementIndex(el); err != nil {
		return nil, err
	}
	if !a.pd.Contains(comp) {
		return nil, fmt.Errorf("analyzer: %s: %w", comp.Formula(), ErrCompositionNotInDiagram)
	}
	closed := comp.Without(el)
	if closed.IsEmpty() {
		return nil, fmt.Errorf("analyzer: %s holds only %s: %w", comp.Formula(), el, ErrCompositionNotInDiagram)
	}
	chempots, err := a.TransitionChempots(el)
	if err != nil {
		return nil, err
	}
	ref, _ := a.pd.ElRef(el)
	stable := a.pd.StableEntries()
	nClosed := closed.NumAtoms()

	var (
		steps []ProfileStep
		prev  map[phasediagram.Entry]bool
	)
	for _, c := range chempots {
		gpd, err := phasediagram.NewGrandPotential(stable,
			map[composition.Element]float64{el: c - profileShift},
			phasediagram.WithOptions(a.pd.Options()),
			phasediagram.WithElements(a.elements...))
		if err != nil {
			return nil, fmt.Errorf("analyzer: open %s at %.6g: %w", el, c, err)
		}
		ga, err := New(gpd, withOptions(a.opts))
		if err != nil {
			return nil, err
		}
		facet, bary, err := ga.facetOf(closed)
		if err != nil {
			return nil, err
		}

		var (
			entries   []phasediagram.Entry
			evolution = -comp.Amount(el)
			current   = make(map[phasediagram.Entry]bool)
		)
		for _, p := range ga.phases(facet, bary) {
			if p.Amount <= a.opts.CompTol {
				continue
			}
			orig := original(p.Entry)
			oc := orig.Composition()
			nEl := oc.Amount(el)
			evolution += p.Amount * nClosed * nEl / (oc.NumAtoms() - nEl)
			entries = append(entries, orig)
			current[orig] = true
		}
		if sameSet(prev, current) {
			continue
		}
		prev = current
		steps = append(steps, ProfileStep{
			Chempot:          c,
			Evolution:        evolution,
			ElementReference: ref,
			Entries:          entries,
		})
		a.opts.Logger.Debug("element profile step", "element", el, "chempot", c, "phases", len(entries))
	}

	return steps, nil
}

// original unwraps grand-potential entries.
func original(e phasediagram.Entry) phasediagram.Entry {
	if g, ok := e.(*phasediagram.GrandPotentialEntry); ok {
		return g.Original()
	}

	return e
}

func sameSet(a, b map[phasediagram.Entry]bool) bool {
	if a == nil || len(a) != len(b) {
		return false
	}
	for e := range a {
		if !b[e] {
			return false
		}
	}

	return true
}
