// SPDX-License-Identifier: MIT
package analyzer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/phasehull/analyzer"
	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/phasediagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Properties every diagram must satisfy, checked on both fixtures.

func fixtures() map[string][]phasediagram.Entry {
	return map[string][]phasediagram.Entry{
		"Li-O":    phasediagram.FromEntries(newLiO().all()),
		"Fe-Li-O": phasediagram.FromEntries(ternary()),
	}
}

func TestProperties_EAboveHull(t *testing.T) {
	for name, entries := range fixtures() {
		t.Run(name, func(t *testing.T) {
			pd, err := phasediagram.New(entries)
			require.NoError(t, err)
			a, err := analyzer.New(pd)
			require.NoError(t, err)

			for _, e := range pd.StableEntries() {
				ehull, err := a.EAboveHull(e)
				require.NoError(t, err)
				assert.Less(t, ehull, 1e-11, e.Name())

				rxn, err := a.EquilibriumReactionEnergy(e)
				require.NoError(t, err)
				assert.LessOrEqual(t, rxn, 0.0, e.Name())
			}
			for _, e := range pd.UnstableEntries() {
				d, ehull, err := a.DecompositionAndEAboveHull(e, false)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, ehull, 0.0, e.Name())

				// fractions sum to 1 and reproduce the entry energy
				var sum, hullE float64
				for p, amt := range d {
					sum += amt
					hullE += amt * p.EnergyPerAtom()
				}
				assert.InDelta(t, 1, sum, 1e-9, e.Name())
				assert.InDelta(t, e.EnergyPerAtom(), hullE+ehull, 1e-9, e.Name())
			}
		})
	}
}

func TestProperties_Decomposition(t *testing.T) {
	for name, entries := range fixtures() {
		t.Run(name, func(t *testing.T) {
			pd, err := phasediagram.New(entries)
			require.NoError(t, err)
			a, err := analyzer.New(pd)
			require.NoError(t, err)

			for _, e := range pd.AllEntries() {
				d, err := a.Decomposition(e.Composition())
				require.NoError(t, err)
				assert.NotEmpty(t, d, e.Name())
				assert.LessOrEqual(t, len(d), pd.Dim(), e.Name())
				for p := range d {
					assert.True(t, pd.IsStable(p), p.Name())
				}
			}
			for _, e := range pd.StableEntries() {
				d, err := a.Decomposition(e.Composition())
				require.NoError(t, err)
				require.Len(t, d, 1, e.Name())
				for p, amt := range d {
					assert.True(t, p.Composition().SameReduced(e.Composition()), e.Name())
					assert.InDelta(t, 1, amt, 1e-9)
				}
			}
		})
	}
}

func TestProperties_Chempots(t *testing.T) {
	for name, entries := range fixtures() {
		t.Run(name, func(t *testing.T) {
			pd, err := phasediagram.New(entries)
			require.NoError(t, err)
			a, err := analyzer.New(pd)
			require.NoError(t, err)

			for _, el := range pd.Elements() {
				mus, err := a.TransitionChempots(el)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(mus), len(pd.Facets()))
				for i := 1; i < len(mus); i++ {
					assert.Greater(t, mus[i-1], mus[i])
				}
				ref, _ := pd.ElRef(el)
				assert.InDelta(t, ref.EnergyPerAtom(), mus[0], 1e-9,
					"the highest potential is the elemental one")
			}
		})
	}
}

func TestProperties_ElementProfile(t *testing.T) {
	pd, err := phasediagram.New(phasediagram.FromEntries(ternary()))
	require.NoError(t, err)
	a, err := analyzer.New(pd)
	require.NoError(t, err)

	steps, err := a.ElementProfile("O", composition.MustParse("LiFeO2"))
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	assert.LessOrEqual(t, len(steps), len(pd.Facets()))
	for i, s := range steps {
		assert.NotEmpty(t, s.Entries)
		if i > 0 {
			assert.Less(t, s.Chempot, steps[i-1].Chempot)
			assert.LessOrEqual(t, s.Evolution, steps[i-1].Evolution+1e-9,
				"less oxygen is taken up as its potential drops")
		}
	}
	// at the bottom only the metals remain: 2 O released per LiFeO2
	last := steps[len(steps)-1]
	assert.InDelta(t, -2, last.Evolution, 1e-6)
	assert.False(t, math.IsNaN(last.Chempot))
}

func TestProperties_StabilityRegion(t *testing.T) {
	pd, err := phasediagram.New(phasediagram.FromEntries(ternary()))
	require.NoError(t, err)
	a, err := analyzer.New(pd)
	require.NoError(t, err)

	target := composition.MustParse("LiFeO2")
	vertices, err := a.MuVerticesStabilityPhase(target, "O", 0)
	require.NoError(t, err)
	require.NotEmpty(t, vertices)
	for _, v := range vertices {
		// the phase energy is reproduced at every vertex
		var sum float64
		for el, amt := range target.Map() {
			sum += amt * v[el]
		}
		assert.InDelta(t, -6, sum, 1e-9)
	}

	r, err := a.MuRangeStabilityPhase(target, "O")
	require.NoError(t, err)
	assert.LessOrEqual(t, r["O"].Min, r["O"].Max)
	for _, v := range vertices {
		assert.GreaterOrEqual(t, v["O"], r["O"].Min-1e-9)
		assert.LessOrEqual(t, v["O"], r["O"].Max+1e-9)
	}
}
