// SPDX-License-Identifier: MIT

package hull

import "math"

// DefaultEpsilon is the relative coplanarity tolerance of ConvexHull.
const DefaultEpsilon = 1e-10

// MaxDim is the largest point dimension ConvexHull accepts. A phase diagram
// over n elements builds its hull in n dimensions.
const MaxDim = 32

const panicEpsilonInvalid = "hull: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options.
type Option func(*Options)

// Options holds the effective hull configuration.
type Options struct {
	eps      float64 // absolute tolerance; 0 means "derive from DefaultEpsilon"
	explicit bool
}

// WithEpsilon sets an absolute coplanarity tolerance.
// Panics when eps is negative or non-finite (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.explicit = true
	}
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// tolerance resolves the absolute eps for a point set.
func (o Options) tolerance(points [][]float64) float64 {
	if o.explicit {
		return o.eps
	}
	scale := 1.0
	for _, p := range points {
		for _, v := range p {
			if a := math.Abs(v); a > scale {
				scale = a
			}
		}
	}

	return DefaultEpsilon * scale
}
