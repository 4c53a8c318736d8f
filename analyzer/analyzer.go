// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"

	"github.com/katalvlaran/phasehull/matrix"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// New prepares an Analyzer for pd. The chemical potentials of every facet are
// solved once here.
//
// Errors:
//   - ErrNilDiagram.
//   - matrix.ErrSingular (wrapped) when a facet's compositions are dependent.
func New(pd *phasediagram.PhaseDiagram, opts ...Option) (*Analyzer, error) {
	if pd == nil {
		return nil, ErrNilDiagram
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Analyzer{
		pd:        pd,
		opts:      o,
		elements:  pd.Elements(),
		qhull:     pd.QhullEntries(),
		facets:    pd.Facets(),
		simplices: pd.Simplices(),
	}
	a.chempots = make([][]float64, len(a.facets))
	for i, f := range a.facets {
		mu, err := a.solveChempots(f)
		if err != nil {
			return nil, fmt.Errorf("analyzer: facet %v: %w", f, err)
		}
		a.chempots[i] = mu
	}

	return a, nil
}

// Diagram returns the analyzed diagram.
func (a *Analyzer) Diagram() *phasediagram.PhaseDiagram { return a.pd }

// solveChempots solves C·μ = E where row i of C holds the atomic fractions of
// facet vertex i over all elements and E its energy per atom.
func (a *Analyzer) solveChempots(facet []int) ([]float64, error) {
	rows := make([][]float64, len(facet))
	energies := make([]float64, len(facet))
	for i, v := range facet {
		e := a.qhull[v]
		c := e.Composition()
		row := make([]float64, len(a.elements))
		for j, el := range a.elements {
			row[j] = c.Fraction(el)
		}
		rows[i] = row
		energies[i] = e.EnergyPerAtom()
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}

	return matrix.Solve(m, energies)
}

// withOptions hands an analyzer's configuration to a derived analyzer.
func withOptions(src Options) Option {
	return func(o *Options) { *o = src }
}
