// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// stabilityRegion holds what both stability-phase queries derive from the
// chemical-potential range map of a target composition.
type stabilityRegion struct {
	dep      composition.Element
	elts     []composition.Element // all elements but dep, in diagram order
	muref    []float64             // reference energies per atom of elts
	coeff    []float64             // -target amount of each of elts
	ef       float64               // stable entry energy per target formula unit
	depAmt   float64
	vertices [][]float64 // referenced μ of elts at each region vertex
}

// depChempot solves Σ target·μ = ef for μ(dep) at vertex v.
func (r *stabilityRegion) depChempot(v []float64) float64 {
	var s float64
	for i := range v {
		s += (v[i] + r.muref[i]) * r.coeff[i]
	}

	return (s + r.ef) / r.depAmt
}

// region builds the stability region of the stable phase with target's
// reduced composition, with dep as the dependent element.
func (a *Analyzer) region(target composition.Composition, dep composition.Element) (*stabilityRegion, error) {
	if _, err := a.elementIndex(dep); err != nil {
		return nil, err
	}
	if !a.pd.Contains(target) {
		return nil, fmt.Errorf("analyzer: %s: %w", target.Formula(), ErrCompositionNotInDiagram)
	}
	if !target.Contains(dep) {
		return nil, fmt.Errorf("analyzer: %s in %s: %w", dep, target.Formula(), ErrElementNotInComposition)
	}

	r := &stabilityRegion{dep: dep, depAmt: target.Amount(dep)}
	for _, el := range a.elements {
		if el == dep {
			continue
		}
		ref, _ := a.pd.ElRef(el)
		r.elts = append(r.elts, el)
		r.muref = append(r.muref, ref.EnergyPerAtom())
		r.coeff = append(r.coeff, -target.Amount(el))
	}
	ranges, err := a.ChempotRangeMap(r.elts, true)
	if err != nil {
		return nil, err
	}

	var phase phasediagram.Entry
	for _, e := range a.pd.StableEntries() {
		if _, ok := ranges[e]; ok && e.Composition().SameReduced(target) {
			phase = e
			break
		}
	}
	if phase == nil {
		return nil, fmt.Errorf("analyzer: no stability region for %s: %w", target.ReducedFormula(), ErrNotStable)
	}
	multiplicator := phase.Composition().Amount(dep) / r.depAmt
	r.ef = phase.Energy() / multiplicator
	for _, s := range ranges[phase] {
		r.vertices = append(r.vertices, s.Coords()...)
	}

	return r, nil
}

// MuVerticesStabilityPhase returns the vertices of the chemical-potential
// region in which the stable phase of target's composition exists, as
// absolute chemical potentials of every element. depEl's potential follows
// from the others through the phase's energy. Vertices closer than tolEn in
// every element are reported once (tolEn <= 0 selects DefaultMuTol).
//
// Errors:
//   - ErrElementNotInDiagram, ErrCompositionNotInDiagram,
//     ErrElementNotInComposition, ErrNotStable.
func (a *Analyzer) MuVerticesStabilityPhase(target composition.Composition, depEl composition.Element, tolEn float64) ([]map[composition.Element]float64, error) {
	if tolEn <= 0 {
		tolEn = DefaultMuTol
	}
	r, err := a.region(target, depEl)
	if err != nil {
		return nil, err
	}

	var out []map[composition.Element]float64
	for _, v := range r.vertices {
		res := make(map[composition.Element]float64, len(r.elts)+1)
		for i, el := range r.elts {
			res[el] = v[i] + r.muref[i]
		}
		res[depEl] = r.depChempot(v)
		if !containsMu(out, res, tolEn) {
			out = append(out, res)
		}
	}

	return out, nil
}

// MuRangeStabilityPhase returns the range of openEl's chemical potential over
// the stability region of target's phase. The other elements' ranges are
// their potentials at the vertices where openEl is lowest (Min) and highest
// (Max).
//
// Errors:
//   - same as MuVerticesStabilityPhase.
func (a *Analyzer) MuRangeStabilityPhase(target composition.Composition, openEl composition.Element) (map[composition.Element]ChempotRange, error) {
	r, err := a.region(target, openEl)
	if err != nil {
		return nil, err
	}
	if len(r.vertices) == 0 {
		return nil, fmt.Errorf("analyzer: empty stability region for %s: %w", target.ReducedFormula(), ErrNotStable)
	}

	minOpen, maxOpen := math.Inf(1), math.Inf(-1)
	var minMus, maxMus []float64
	for _, v := range r.vertices {
		mu := r.depChempot(v)
		if mu > maxOpen {
			maxOpen, maxMus = mu, v
		}
		if mu < minOpen {
			minOpen, minMus = mu, v
		}
	}

	out := make(map[composition.Element]ChempotRange, len(r.elts)+1)
	for i, el := range r.elts {
		out[el] = ChempotRange{Min: minMus[i] + r.muref[i], Max: maxMus[i] + r.muref[i]}
	}
	out[openEl] = ChempotRange{Min: minOpen, Max: maxOpen}

	return out, nil
}

func containsMu(list []map[composition.Element]float64, m map[composition.Element]float64, tol float64) bool {
	for _, other := range list {
		same := true
		for el, v := range other {
			if math.Abs(v-m[el]) > tol {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}

	return false
}
