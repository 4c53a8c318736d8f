// SPDX-License-Identifier: MIT

package entry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phasehull/composition"
)

// Entry is an immutable composition + energy pair with optional metadata.
type Entry struct {
	name        string
	composition composition.Composition
	energy      float64
	attribute   map[string]any
}

// Option configures New.
type Option func(*Entry)

// WithName sets the display name (default: reduced formula).
func WithName(name string) Option {
	return func(e *Entry) { e.name = name }
}

// WithAttribute attaches free-form metadata. The map is copied.
func WithAttribute(attr map[string]any) Option {
	return func(e *Entry) {
		if attr == nil {
			e.attribute = nil
			return
		}
		e.attribute = make(map[string]any, len(attr))
		for k, v := range attr {
			e.attribute[k] = v
		}
	}
}

// New validates and builds an Entry.
//
// Errors:
//   - ErrEmptyComposition, ErrNonFiniteEnergy.
func New(comp composition.Composition, energy float64, opts ...Option) (*Entry, error) {
	if comp.IsEmpty() {
		return nil, ErrEmptyComposition
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return nil, fmt.Errorf("%s: %w", comp.ReducedFormula(), ErrNonFiniteEnergy)
	}
	e := &Entry{composition: comp, energy: energy}
	for _, opt := range opts {
		opt(e)
	}
	if e.name == "" {
		e.name = comp.ReducedFormula()
	}

	return e, nil
}

// MustNew parses formula and builds an Entry, panicking on error.
// Intended for literals in tests and examples.
func MustNew(formula string, energy float64, opts ...Option) *Entry {
	e, err := New(composition.MustParse(formula), energy, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// Name returns the display name.
func (e *Entry) Name() string { return e.name }

// Composition returns the composition as written.
func (e *Entry) Composition() composition.Composition { return e.composition }

// Energy returns the total energy of the composition as written.
func (e *Entry) Energy() float64 { return e.energy }

// EnergyPerAtom returns Energy / NumAtoms.
func (e *Entry) EnergyPerAtom() float64 { return e.energy / e.composition.NumAtoms() }

// IsElement reports whether the entry is a single-element composition.
func (e *Entry) IsElement() bool { return e.composition.IsElement() }

// Attribute returns a copy of the metadata map (nil when unset).
func (e *Entry) Attribute() map[string]any {
	if e.attribute == nil {
		return nil
	}
	out := make(map[string]any, len(e.attribute))
	for k, v := range e.attribute {
		out[k] = v
	}

	return out
}

// String implements fmt.Stringer.
func (e *Entry) String() string {
	return fmt.Sprintf("%s (%s) E=%.6f", e.name, e.composition.Formula(), e.energy)
}

// Equal reports whether a and b carry the same name, composition and energy.
func Equal(a, b *Entry) bool {
	return a.name == b.name && a.energy == b.energy && a.composition.Equal(b.composition)
}

// Elements returns the canonical union of elements over entries.
func Elements(entries []*Entry) []composition.Element {
	seen := make(map[composition.Element]struct{})
	var out []composition.Element
	for _, e := range entries {
		for _, el := range e.composition.Elements() {
			if _, ok := seen[el]; !ok {
				seen[el] = struct{}{}
				out = append(out, el)
			}
		}
	}

	return composition.SortElements(out)
}
