// SPDX-License-Identifier: MIT

package analyzer

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/phasehull/internal/logging"
)

const (
	// DefaultNumericalTol drops decomposition weights with |w| below it and
	// bounds how far below the hull an entry may sit before it is an error.
	DefaultNumericalTol = 1e-8

	// DefaultInSimplexTol is how negative a barycentric coordinate may be
	// for a point to still count as inside a facet.
	DefaultInSimplexTol = 1e-9

	// DefaultCompTol is the minimum grand-canonical weight for a phase to
	// count in an element profile step.
	DefaultCompTol = 1e-5

	// DefaultMuTol is the distance used to deduplicate chemical potential
	// vertices in MuVerticesStabilityPhase when the caller passes 0.
	DefaultMuTol = 1e-2

	// profileShift is how far below each transition chemical potential the
	// element profile probes the grand-potential diagram.
	profileShift = 1e-5
)

const panicTolInvalid = "analyzer: tolerance must be finite, positive"

// Options configures an Analyzer.
//
// NumericalTol – decomposition weight cut-off and e-above-hull slack.
// InSimplexTol – facet containment slack.
// CompTol      – element-profile phase cut-off.
// Logger       – Debug traces of derived diagrams.
type Options struct {
	NumericalTol float64
	InSimplexTol float64
	CompTol      float64
	Logger       *slog.Logger
}

// Option represents a functional option for an Analyzer.
type Option func(*Options)

// DefaultOptions returns the analyzer defaults.
func DefaultOptions() Options {
	return Options{
		NumericalTol: DefaultNumericalTol,
		InSimplexTol: DefaultInSimplexTol,
		CompTol:      DefaultCompTol,
		Logger:       logging.NewNop(),
	}
}

func checkTol(tol float64) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}
}

// WithNumericalTol sets NumericalTol. Panics unless tol is finite and > 0.
func WithNumericalTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.NumericalTol = tol }
}

// WithInSimplexTol sets InSimplexTol. Panics unless tol is finite and > 0.
func WithInSimplexTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.InSimplexTol = tol }
}

// WithCompTol sets CompTol. Panics unless tol is finite and > 0.
func WithCompTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.CompTol = tol }
}

// WithLogger routes analyzer logs to l; nil restores the no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logging.NewNop()
		}
		o.Logger = l
	}
}
