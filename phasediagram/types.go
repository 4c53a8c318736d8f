// SPDX-License-Identifier: MIT

package phasediagram

import (
	"log/slog"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/hull"
)

// Entry is a point of the diagram: a composition with a total energy.
// Implementations must be comparable (pointer types in practice); the diagram
// tracks stability by identity.
type Entry interface {
	Name() string
	Composition() composition.Composition
	Energy() float64
	EnergyPerAtom() float64
}

// FromEntries widens a slice of concrete entries to []Entry.
func FromEntries[E Entry](in []E) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e
	}

	return out
}

// PhaseDiagram is the lower convex hull of a set of entries in
// (composition fraction, formation energy per atom) space.
// It is immutable after New and safe for concurrent readers.
type PhaseDiagram struct {
	elements     []composition.Element
	allEntries   []Entry
	qhullEntries []Entry
	qhullData    [][]float64 // fractions of elements[1:], then formation energy per atom
	elRefs       map[composition.Element]Entry
	facets       [][]int // indices into qhullEntries
	simplices    []*hull.Simplex
	stable       []Entry
	stableSet    map[Entry]bool
	chempots     map[composition.Element]float64 // open elements of a grand-potential diagram
	opts         Options
	logger       *slog.Logger
}
