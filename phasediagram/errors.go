// SPDX-License-Identifier: MIT

package phasediagram

import "errors"

var (
	// ErrNoEntries is returned when no entry falls inside the element space.
	ErrNoEntries = errors.New("phasediagram: no entries")

	// ErrMissingElementReference is returned when some element of the diagram
	// has no single-element entry to serve as its reference.
	ErrMissingElementReference = errors.New("phasediagram: missing elemental reference")

	// ErrDegenerateHull is returned when the hull cannot be built and the
	// trivial reference facet cannot stand in for it.
	ErrDegenerateHull = errors.New("phasediagram: degenerate hull")

	// ErrCompositionNotInDiagram is returned when a composition holds an
	// element outside the diagram's element space.
	ErrCompositionNotInDiagram = errors.New("phasediagram: composition not in diagram")
)
