// SPDX-License-Identifier: MIT

package phasediagram

import (
	"fmt"

	"github.com/katalvlaran/phasehull/composition"
)

// GrandPotentialEntry is an entry seen from a system open to some elements:
// the open elements leave the composition and their chemical potential
// energy leaves the energy (Φ = E - Σ μ·n).
type GrandPotentialEntry struct {
	original Entry
	comp     composition.Composition
	energy   float64
	chempots map[composition.Element]float64
}

// NewGrandPotentialEntry transforms e at the given open-element chemical
// potentials. The result may have an empty composition when e holds only
// open elements; NewGrandPotential skips those.
func NewGrandPotentialEntry(e Entry, chempots map[composition.Element]float64) *GrandPotentialEntry {
	c := e.Composition()
	energy := e.Energy()
	open := make([]composition.Element, 0, len(chempots))
	cp := make(map[composition.Element]float64, len(chempots))
	for el, mu := range chempots {
		energy -= mu * c.Amount(el)
		open = append(open, el)
		cp[el] = mu
	}

	return &GrandPotentialEntry{
		original: e,
		comp:     c.Without(open...),
		energy:   energy,
		chempots: cp,
	}
}

// Name returns the original entry's name.
func (g *GrandPotentialEntry) Name() string { return g.original.Name() }

// Composition returns the closed-element composition.
func (g *GrandPotentialEntry) Composition() composition.Composition { return g.comp }

// Energy returns the grand potential.
func (g *GrandPotentialEntry) Energy() float64 { return g.energy }

// EnergyPerAtom returns the grand potential per closed-element atom.
func (g *GrandPotentialEntry) EnergyPerAtom() float64 { return g.energy / g.comp.NumAtoms() }

// Original returns the untransformed entry.
func (g *GrandPotentialEntry) Original() Entry { return g.original }

// String prints the name, closed composition and grand potential.
func (g *GrandPotentialEntry) String() string {
	return fmt.Sprintf("GrandPotentialEntry %s (%s) Φ=%.4f", g.Name(), g.comp.Formula(), g.energy)
}

// NewGrandPotential builds the phase diagram of entries open to the elements
// keyed in chempots. The element space is the closed elements (WithElements,
// when given, minus the open ones); entries without any closed element are
// dropped. Facet vertices are *GrandPotentialEntry values.
//
// Errors:
//   - same as New; ErrNoEntries when every element is open.
func NewGrandPotential(entries []Entry, chempots map[composition.Element]float64, opts ...Option) (*PhaseDiagram, error) {
	o := gatherOptions(opts)
	space := o.Elements
	if len(space) == 0 {
		space = elementsOf(entries)
	}
	closed := make([]composition.Element, 0, len(space))
	for _, el := range space {
		if _, open := chempots[el]; !open {
			closed = append(closed, el)
		}
	}
	if len(closed) == 0 {
		return nil, fmt.Errorf("phasediagram: all elements open: %w", ErrNoEntries)
	}

	gp := make([]Entry, 0, len(entries))
	for _, e := range entries {
		g := NewGrandPotentialEntry(e, chempots)
		if !g.comp.IsEmpty() {
			gp = append(gp, g)
		}
	}

	pd, err := New(gp, append(append([]Option(nil), opts...), WithElements(closed...))...)
	if err != nil {
		return nil, err
	}
	pd.chempots = make(map[composition.Element]float64, len(chempots))
	for el, mu := range chempots {
		pd.chempots[el] = mu
	}

	return pd, nil
}
