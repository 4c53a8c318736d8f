// SPDX-License-Identifier: MIT

package phasediagram

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/internal/logging"
)

// DefaultFormationEnergyTol is the margin below zero a formation energy per
// atom must reach for an entry to be offered to the hull.
const DefaultFormationEnergyTol = 1e-11

const (
	panicTolInvalid     = "phasediagram: WithTolerance: tol must be finite, non-negative"
	panicEpsilonInvalid = "phasediagram: WithHullEpsilon: eps must be finite, non-negative"
)

// Options configures New and NewGrandPotential.
//
// Elements           – explicit element space; empty means "union over entries".
// FormationEnergyTol – entries need formation energy < -tol to enter the hull;
// it is also the threshold on a facet normal's energy component.
// HullEpsilon        – absolute coplanarity tolerance for the hull; 0 keeps
// the hull package default.
// Logger             – receives Debug construction summaries.
type Options struct {
	Elements           []composition.Element
	FormationEnergyTol float64
	HullEpsilon        float64
	Logger             *slog.Logger
}

// Option represents a functional option for building a PhaseDiagram.
type Option func(*Options)

// DefaultOptions returns the construction defaults.
//
// Defaults:
//   - Elements:           nil (derived from entries).
//   - FormationEnergyTol: DefaultFormationEnergyTol.
//   - HullEpsilon:        0 (hull.DefaultEpsilon scaled to the data).
//   - Logger:             no-op.
func DefaultOptions() Options {
	return Options{
		FormationEnergyTol: DefaultFormationEnergyTol,
		Logger:             logging.NewNop(),
	}
}

// WithElements fixes the element space. Entries holding any other element
// are ignored. The elements are deduplicated and sorted.
func WithElements(els ...composition.Element) Option {
	cp := make([]composition.Element, 0, len(els))
	seen := make(map[composition.Element]bool, len(els))
	for _, el := range els {
		if !seen[el] {
			seen[el] = true
			cp = append(cp, el)
		}
	}
	composition.SortElements(cp)

	return func(o *Options) {
		o.Elements = cp
	}
}

// WithTolerance sets FormationEnergyTol.
// Panics on negative or non-finite values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) {
		o.FormationEnergyTol = tol
	}
}

// WithHullEpsilon sets the absolute coplanarity tolerance handed to the hull.
// Panics on negative or non-finite values.
func WithHullEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.HullEpsilon = eps
	}
}

// WithLogger routes construction logs to l. A nil l restores the no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logging.NewNop()
		}
		o.Logger = l
	}
}

// WithOptions replaces the whole configuration, typically with the Options
// of an existing diagram so a derived diagram is built the same way.
func WithOptions(src Options) Option {
	els := append([]composition.Element(nil), src.Elements...)

	return func(o *Options) {
		*o = src
		o.Elements = els
		if o.Logger == nil {
			o.Logger = logging.NewNop()
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
