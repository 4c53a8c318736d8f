// SPDX-License-Identifier: MIT

package analyzer

import (
	"sort"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/hull"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// Analyzer answers stability queries against one PhaseDiagram.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	pd        *phasediagram.PhaseDiagram
	opts      Options
	elements  []composition.Element
	qhull     []phasediagram.Entry
	facets    [][]int
	simplices []*hull.Simplex
	chempots  [][]float64 // per facet, per element (absolute)
}

// Phase is one member of a decomposition.
type Phase struct {
	Entry  phasediagram.Entry
	Amount float64
}

// Decomposition maps stable entries to their share of a composition.
type Decomposition map[phasediagram.Entry]float64

// Phases returns the members by descending amount, then by name.
func (d Decomposition) Phases() []Phase {
	out := make([]Phase, 0, len(d))
	for e, amt := range d {
		out = append(out, Phase{Entry: e, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Entry.Name() < out[j].Entry.Name()
	})

	return out
}

// ProfileStep is one stage of an element profile: below Chempot the
// composition decomposes into Entries while taking up Evolution atoms of the
// element per formula unit (negative when it releases them).
type ProfileStep struct {
	Chempot          float64
	Evolution        float64
	ElementReference phasediagram.Entry
	Entries          []phasediagram.Entry
}

// ChempotRange bounds one element's chemical potential over a stability
// region. For the open element Min <= Max. For every other element the two
// values are taken at the vertices where the open element is lowest (Min)
// and highest (Max), so Min may exceed Max.
type ChempotRange struct {
	Min, Max float64
}
