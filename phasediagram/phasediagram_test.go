// SPDX-License-Identifier: MIT
package phasediagram_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/entry"
	"github.com/katalvlaran/phasehull/internal/logging"
	"github.com/katalvlaran/phasehull/phasediagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liO is a Li–O system with formation energies per atom:
// Li2O -1, Li2O2 -0.8 (stable), LiO2 -0.5 (0.0333 above hull), Li3O +0.25.
type liO struct {
	li, liHigh, o2, li2o, li2o2, lio2, li3o *entry.Entry
}

func newLiO() liO {
	return liO{
		li:     entry.MustNew("Li", -2),
		liHigh: entry.MustNew("Li", -1.5, entry.WithName("Li_hcp")),
		o2:     entry.MustNew("O2", -10),
		li2o:   entry.MustNew("Li2O", -12),
		li2o2:  entry.MustNew("Li2O2", -17.2),
		lio2:   entry.MustNew("LiO2", -13.5),
		li3o:   entry.MustNew("Li3O", -10),
	}
}

func (s liO) all() []*entry.Entry {
	return []*entry.Entry{s.li, s.liHigh, s.o2, s.li2o, s.li2o2, s.lio2, s.li3o}
}

func MustDiagram(t *testing.T, entries []*entry.Entry, opts ...phasediagram.Option) *phasediagram.PhaseDiagram {
	t.Helper()
	pd, err := phasediagram.New(phasediagram.FromEntries(entries), opts...)
	require.NoError(t, err)

	return pd
}

func names(entries []phasediagram.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}

	return out
}

func TestNew_Binary(t *testing.T) {
	s := newLiO()
	pd := MustDiagram(t, s.all())

	assert.Equal(t, []composition.Element{"Li", "O"}, pd.Elements())
	assert.Equal(t, 2, pd.Dim())
	assert.Equal(t, []string{"Li", "O", "Li2O", "LiO"}, names(pd.StableEntries()))
	assert.Equal(t, []string{"Li_hcp", "LiO2", "Li3O"}, names(pd.UnstableEntries()))
	// Li3O has positive formation energy and never reaches the hull input
	assert.Equal(t, []string{"Li", "O", "Li2O", "LiO", "LiO2"}, names(pd.QhullEntries()))
	assert.ElementsMatch(t, [][]int{{0, 2}, {2, 3}, {1, 3}}, pd.Facets())

	ref, ok := pd.ElRef("Li")
	require.True(t, ok)
	assert.Same(t, s.li, ref)
	assert.True(t, pd.IsStable(s.li2o2))
	assert.False(t, pd.IsStable(s.lio2))
}

func TestNew_BinaryFormationEnergy(t *testing.T) {
	s := newLiO()
	pd := MustDiagram(t, s.all())

	form, err := pd.FormationEnergy(s.li2o)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, form, 1e-12)
	perAtom, err := pd.FormationEnergyPerAtom(s.lio2)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, perAtom, 1e-12)

	_, err = pd.FormationEnergy(entry.MustNew("FeO", -3))
	assert.ErrorIs(t, err, phasediagram.ErrCompositionNotInDiagram)

	data := pd.QhullData()
	assert.InDeltaSlice(t, []float64{1.0 / 3, -1}, data[2], 1e-12)
}

// ternary returns a Fe–Li–O system with zero-energy references; every
// compound sits on the hull except FeLiO.
func ternary() []*entry.Entry {
	return []*entry.Entry{
		entry.MustNew("Fe", 0),
		entry.MustNew("Li", 0),
		entry.MustNew("O2", 0),
		entry.MustNew("FeO", -2),
		entry.MustNew("Li2O", -3.6),
		entry.MustNew("LiFeO2", -6),
		entry.MustNew("Fe2O3", -5.5),
		entry.MustNew("FeLiO", -0.3),
	}
}

func TestNew_Ternary(t *testing.T) {
	pd := MustDiagram(t, ternary())

	assert.Equal(t, []composition.Element{"Fe", "Li", "O"}, pd.Elements())
	assert.ElementsMatch(t,
		[]string{"Fe", "Li", "O", "FeO", "Li2O", "FeLiO2", "Fe2O3"},
		names(pd.StableEntries()))
	assert.Equal(t, []string{"FeLiO"}, names(pd.UnstableEntries()))

	// 7 points, 6 on the boundary of the composition triangle: 2·7-6-2 triangles
	require.Len(t, pd.Facets(), 6)
	var area float64
	for i, s := range pd.Simplices() {
		assert.Len(t, pd.FacetEntries(i), 3)
		assert.False(t, s.IsDegenerate())
		area += s.Volume()
	}
	assert.InDelta(t, 0.5, area, 1e-12, "lower facets tile the composition triangle")
}

func TestNew_OnlyReferences(t *testing.T) {
	pd := MustDiagram(t, []*entry.Entry{
		entry.MustNew("Li", -2),
		entry.MustNew("O2", -10),
		entry.MustNew("Li3O", -10),
	})
	assert.Equal(t, [][]int{{0, 1}}, pd.Facets())
	assert.Equal(t, []string{"Li", "O"}, names(pd.StableEntries()))
}

func TestNew_SingleElement(t *testing.T) {
	low := entry.MustNew("Fe2", -4)
	pd := MustDiagram(t, []*entry.Entry{entry.MustNew("Fe", -1), low})

	assert.Equal(t, 1, pd.Dim())
	assert.Equal(t, [][]int{{0}}, pd.Facets())
	require.Len(t, pd.StableEntries(), 1)
	assert.Same(t, low, pd.StableEntries()[0])
	require.Len(t, pd.Simplices(), 1)
	assert.Equal(t, 0, pd.Simplices()[0].SpaceDim())
}

func TestNew_DuplicateCompositionsKeepLowest(t *testing.T) {
	s := newLiO()
	better := entry.MustNew("Li4O2", -24.6)
	pd := MustDiagram(t, []*entry.Entry{s.li, s.o2, s.li2o, better})

	assert.True(t, pd.IsStable(better))
	assert.False(t, pd.IsStable(s.li2o))
}

func TestNew_Errors(t *testing.T) {
	_, err := phasediagram.New(nil)
	assert.ErrorIs(t, err, phasediagram.ErrNoEntries)

	_, err = phasediagram.New(phasediagram.FromEntries([]*entry.Entry{
		entry.MustNew("Fe", -8),
		entry.MustNew("FeO", -17),
	}))
	assert.ErrorIs(t, err, phasediagram.ErrMissingElementReference)

	_, err = phasediagram.New(
		phasediagram.FromEntries([]*entry.Entry{entry.MustNew("Fe", -8)}),
		phasediagram.WithElements("Mn"),
	)
	assert.ErrorIs(t, err, phasediagram.ErrNoEntries)
}

func TestWithElements_DropsForeignEntries(t *testing.T) {
	s := newLiO()
	entries := append(s.all(), entry.MustNew("Fe", -8), entry.MustNew("FeO", -20))
	pd := MustDiagram(t, entries, phasediagram.WithElements("O", "Li", "O"))

	assert.Equal(t, []composition.Element{"Li", "O"}, pd.Elements())
	assert.Len(t, pd.AllEntries(), len(s.all()))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { phasediagram.WithTolerance(-1) })
	assert.Panics(t, func() { phasediagram.WithHullEpsilon(-1) })
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	MustDiagram(t, newLiO().all(), phasediagram.WithLogger(logging.NewWriter(&buf, slog.LevelDebug)))
	assert.Contains(t, buf.String(), "phase diagram built")
	assert.Contains(t, buf.String(), "facets=3")
}

// TestWithHullEpsilon_CollapsedHull flattens the whole point set with an
// absurd hull tolerance; the diagram keeps only the element references.
func TestWithHullEpsilon_CollapsedHull(t *testing.T) {
	var buf bytes.Buffer
	s := newLiO()
	pd := MustDiagram(t, s.all(),
		phasediagram.WithHullEpsilon(1e6),
		phasediagram.WithLogger(logging.NewWriter(&buf, slog.LevelDebug)))

	assert.Equal(t, [][]int{{0, 1}}, pd.Facets())
	assert.Equal(t, []string{"Li", "O"}, names(pd.StableEntries()))
	assert.False(t, pd.IsStable(s.li2o))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "hull degenerate, falling back to reference facet")
	assert.Contains(t, buf.String(), "span only 0 of 2 dims")
}

func TestString(t *testing.T) {
	pd := MustDiagram(t, newLiO().all())
	assert.Equal(t, "Li-O phase diagram\n4 stable phases:\nLi, O, Li2O, LiO", pd.String())
}

func TestNewGrandPotential(t *testing.T) {
	s := newLiO()
	chempots := map[composition.Element]float64{"O": -6}
	pd, err := phasediagram.NewGrandPotential(phasediagram.FromEntries(s.all()), chempots)
	require.NoError(t, err)

	assert.Equal(t, []composition.Element{"Li"}, pd.Elements())
	assert.Equal(t, chempots, pd.ChemPots())
	require.Len(t, pd.StableEntries(), 1)
	gp, ok := pd.StableEntries()[0].(*phasediagram.GrandPotentialEntry)
	require.True(t, ok)
	assert.Same(t, s.li2o, gp.Original())
	// Φ = -12 - (-6)·1 over 2 Li atoms
	assert.InDelta(t, -3.0, gp.EnergyPerAtom(), 1e-12)
	assert.Equal(t, "Li2", gp.Composition().Formula())

	_, err = phasediagram.NewGrandPotential(phasediagram.FromEntries(s.all()),
		map[composition.Element]float64{"O": -6, "Li": -2})
	assert.ErrorIs(t, err, phasediagram.ErrNoEntries)
}
