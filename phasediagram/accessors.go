// SPDX-License-Identifier: MIT

package phasediagram

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/hull"
)

// Elements returns the element space in coordinate order.
func (pd *PhaseDiagram) Elements() []composition.Element {
	return append([]composition.Element(nil), pd.elements...)
}

// Dim returns the number of elements.
func (pd *PhaseDiagram) Dim() int { return len(pd.elements) }

// AllEntries returns every entry inside the element space, in input order.
func (pd *PhaseDiagram) AllEntries() []Entry { return append([]Entry(nil), pd.allEntries...) }

// QhullEntries returns the hull input entries: references first, then the
// lowest-energy entry of every composition with negative formation energy.
func (pd *PhaseDiagram) QhullEntries() []Entry { return append([]Entry(nil), pd.qhullEntries...) }

// QhullData returns the hull input rows aligned with QhullEntries: fractions
// of elements[1:] followed by formation energy per atom.
func (pd *PhaseDiagram) QhullData() [][]float64 {
	out := make([][]float64, len(pd.qhullData))
	for i, row := range pd.qhullData {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Facets returns the lower-hull facets as index tuples into QhullEntries.
func (pd *PhaseDiagram) Facets() [][]int {
	out := make([][]int, len(pd.facets))
	for i, f := range pd.facets {
		out[i] = append([]int(nil), f...)
	}

	return out
}

// FacetEntries returns the vertex entries of facet i.
func (pd *PhaseDiagram) FacetEntries(i int) []Entry {
	f := pd.facets[i]
	out := make([]Entry, len(f))
	for j, v := range f {
		out[j] = pd.qhullEntries[v]
	}

	return out
}

// Simplices returns the facets projected to composition space, aligned with
// Facets. The simplices are shared and read-only.
func (pd *PhaseDiagram) Simplices() []*hull.Simplex { return append([]*hull.Simplex(nil), pd.simplices...) }

// StableEntries returns the entries on the lower hull, in QhullEntries order.
func (pd *PhaseDiagram) StableEntries() []Entry { return append([]Entry(nil), pd.stable...) }

// UnstableEntries returns AllEntries minus StableEntries, in input order.
func (pd *PhaseDiagram) UnstableEntries() []Entry {
	var out []Entry
	for _, e := range pd.allEntries {
		if !pd.stableSet[e] {
			out = append(out, e)
		}
	}

	return out
}

// IsStable reports whether e is a vertex of a lower facet.
func (pd *PhaseDiagram) IsStable(e Entry) bool { return pd.stableSet[e] }

// ElRefs returns a copy of the element → reference entry map.
func (pd *PhaseDiagram) ElRefs() map[composition.Element]Entry {
	out := make(map[composition.Element]Entry, len(pd.elRefs))
	for el, e := range pd.elRefs {
		out[el] = e
	}

	return out
}

// ElRef returns the reference entry of el.
func (pd *PhaseDiagram) ElRef(el composition.Element) (Entry, bool) {
	e, ok := pd.elRefs[el]

	return e, ok
}

// ChemPots returns the fixed chemical potentials of a grand-potential
// diagram (nil for an ordinary one).
func (pd *PhaseDiagram) ChemPots() map[composition.Element]float64 {
	if pd.chempots == nil {
		return nil
	}
	out := make(map[composition.Element]float64, len(pd.chempots))
	for el, mu := range pd.chempots {
		out[el] = mu
	}

	return out
}

// Options returns the options the diagram was built with.
func (pd *PhaseDiagram) Options() Options { return pd.opts }

// Contains reports whether every element of comp is in the element space.
func (pd *PhaseDiagram) Contains(comp composition.Composition) bool {
	return comp.IsSubsetOf(pd.elements)
}

// PDCoords returns the fractions of elements[1:] in comp: the composition
// coordinates of the hull. Elements outside the diagram are not checked.
func (pd *PhaseDiagram) PDCoords(comp composition.Composition) []float64 {
	out := make([]float64, len(pd.elements)-1)
	for i, el := range pd.elements[1:] {
		out[i] = comp.Fraction(el)
	}

	return out
}

// FormationEnergy returns e's energy minus the reference energy of its atoms.
//
// Errors:
//   - ErrCompositionNotInDiagram.
func (pd *PhaseDiagram) FormationEnergy(e Entry) (float64, error) {
	c := e.Composition()
	if !pd.Contains(c) {
		return 0, fmt.Errorf("phasediagram: %s: %w", c.Formula(), ErrCompositionNotInDiagram)
	}
	form := e.Energy()
	for _, el := range c.Elements() {
		form -= c.Amount(el) * pd.elRefs[el].EnergyPerAtom()
	}

	return form, nil
}

// FormationEnergyPerAtom is FormationEnergy divided by the atom count.
func (pd *PhaseDiagram) FormationEnergyPerAtom(e Entry) (float64, error) {
	form, err := pd.FormationEnergy(e)
	if err != nil {
		return 0, err
	}

	return form / e.Composition().NumAtoms(), nil
}

// String lists the stable phases, one per line, under a chemical-system header.
func (pd *PhaseDiagram) String() string {
	var b strings.Builder
	syms := make([]string, len(pd.elements))
	for i, el := range pd.elements {
		syms[i] = el.Symbol()
	}
	fmt.Fprintf(&b, "%s phase diagram\n", strings.Join(syms, "-"))
	fmt.Fprintf(&b, "%d stable phases:\n", len(pd.stable))
	for i, e := range pd.stable {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Name())
	}

	return b.String()
}
