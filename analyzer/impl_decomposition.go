// SPDX-License-Identifier: MIT

package analyzer

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/hull"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// facetOf returns the index of the first facet whose composition simplex
// contains comp, with the barycentric weights of comp in it.
func (a *Analyzer) facetOf(comp composition.Composition) (int, []float64, error) {
	if comp.IsEmpty() || !a.pd.Contains(comp) {
		return -1, nil, fmt.Errorf("analyzer: %s: %w", comp.Formula(), ErrCompositionNotInDiagram)
	}
	idx, bary, err := hull.FindContaining(a.simplices, a.pd.PDCoords(comp), a.opts.InSimplexTol)
	if errors.Is(err, hull.ErrNotContained) {
		return -1, nil, fmt.Errorf("analyzer: %s in no facet: %w", comp.Formula(), ErrCompositionNotInDiagram)
	}
	if err != nil {
		return -1, nil, fmt.Errorf("analyzer: %s: %w", comp.Formula(), err)
	}

	return idx, bary, nil
}

// phases lists the facet vertices with |weight| > NumericalTol, in facet order.
func (a *Analyzer) phases(facet int, bary []float64) []Phase {
	out := make([]Phase, 0, len(bary))
	for i, v := range a.facets[facet] {
		if math.Abs(bary[i]) > a.opts.NumericalTol {
			out = append(out, Phase{Entry: a.qhull[v], Amount: bary[i]})
		}
	}

	return out
}

// hullEnergyPerAtom interpolates the vertex energies per atom of a facet.
func (a *Analyzer) hullEnergyPerAtom(facet int, bary []float64) float64 {
	var e float64
	for i, v := range a.facets[facet] {
		e += bary[i] * a.qhull[v].EnergyPerAtom()
	}

	return e
}

// Decomposition returns the stable phases comp splits into. Amounts are atom
// fractions: they sum to 1 whatever the size of comp.
//
// Errors:
//   - ErrCompositionNotInDiagram.
func (a *Analyzer) Decomposition(comp composition.Composition) (Decomposition, error) {
	facet, bary, err := a.facetOf(comp)
	if err != nil {
		return nil, err
	}
	d := make(Decomposition)
	for _, p := range a.phases(facet, bary) {
		d[p.Entry] = p.Amount
	}

	return d, nil
}

// DecompositionAmounts is Decomposition with every fraction multiplied by the
// atom count of comp: the atoms of comp that end up in each phase.
func (a *Analyzer) DecompositionAmounts(comp composition.Composition) (Decomposition, error) {
	d, err := a.Decomposition(comp)
	if err != nil {
		return nil, err
	}
	n := comp.NumAtoms()
	for e := range d {
		d[e] *= n
	}

	return d, nil
}

// DecompositionEnergy returns the hull energy of comp: the total energy of
// its equilibrium decomposition at comp's atom count.
func (a *Analyzer) DecompositionEnergy(comp composition.Composition) (float64, error) {
	facet, bary, err := a.facetOf(comp)
	if err != nil {
		return 0, err
	}

	return a.hullEnergyPerAtom(facet, bary) * comp.NumAtoms(), nil
}

// DecompositionAndEAboveHull returns the decomposition of e's composition and
// e's energy per atom above the hull there. A stable entry decomposes into
// itself at 0.
//
// Behavior highlights:
//   - Values in [-NumericalTol, 0) are reported as 0 unless allowNegative.
//
// Errors:
//   - ErrCompositionNotInDiagram.
//   - ErrNoValidDecomposition (e lies below the hull, allowNegative false).
func (a *Analyzer) DecompositionAndEAboveHull(e phasediagram.Entry, allowNegative bool) (Decomposition, float64, error) {
	if a.pd.IsStable(e) {
		return Decomposition{e: 1}, 0, nil
	}
	facet, bary, err := a.facetOf(e.Composition())
	if err != nil {
		return nil, 0, err
	}
	d := make(Decomposition)
	for _, p := range a.phases(facet, bary) {
		d[p.Entry] = p.Amount
	}
	ehull := e.EnergyPerAtom() - a.hullEnergyPerAtom(facet, bary)
	if allowNegative {
		return d, ehull, nil
	}
	if ehull < -a.opts.NumericalTol {
		return nil, 0, fmt.Errorf("analyzer: %s %.6g below hull: %w", e.Name(), -ehull, ErrNoValidDecomposition)
	}

	return d, math.Max(ehull, 0), nil
}

// EAboveHull returns e's energy per atom above the hull (0 when stable).
func (a *Analyzer) EAboveHull(e phasediagram.Entry) (float64, error) {
	_, ehull, err := a.DecompositionAndEAboveHull(e, false)

	return ehull, err
}

// EquilibriumReactionEnergy returns how far a stable entry lies below the
// hull of all other stable entries (≤ 0; 0 for elemental references).
//
// Errors:
//   - ErrNotStable.
func (a *Analyzer) EquilibriumReactionEnergy(e phasediagram.Entry) (float64, error) {
	if !a.pd.IsStable(e) {
		return 0, fmt.Errorf("analyzer: %s: %w", e.Name(), ErrNotStable)
	}
	if e.Composition().IsElement() {
		return 0, nil
	}
	var others []phasediagram.Entry
	for _, s := range a.pd.StableEntries() {
		if s != e {
			others = append(others, s)
		}
	}
	sub, err := phasediagram.New(others,
		phasediagram.WithOptions(a.pd.Options()),
		phasediagram.WithElements(a.elements...))
	if err != nil {
		return 0, fmt.Errorf("analyzer: diagram without %s: %w", e.Name(), err)
	}
	subA, err := New(sub, withOptions(a.opts))
	if err != nil {
		return 0, err
	}
	_, ehull, err := subA.DecompositionAndEAboveHull(e, true)
	if err != nil {
		return 0, err
	}
	a.opts.Logger.Debug("equilibrium reaction energy", "entry", e.Name(), "energy", ehull)

	return ehull, nil
}
