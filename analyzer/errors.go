// SPDX-License-Identifier: MIT

package analyzer

import (
	"errors"

	"github.com/katalvlaran/phasehull/phasediagram"
)

var (
	// ErrNilDiagram is returned by New for a nil *PhaseDiagram.
	ErrNilDiagram = errors.New("analyzer: phase diagram is nil")

	// ErrFacetOutOfRange is returned for a facet index outside the diagram.
	ErrFacetOutOfRange = errors.New("analyzer: facet index out of range")

	// ErrCompositionNotInDiagram is returned when a composition holds an
	// element outside the diagram, or no facet contains its point.
	ErrCompositionNotInDiagram = phasediagram.ErrCompositionNotInDiagram

	// ErrElementNotInDiagram is returned when a queried element is not one
	// of the diagram's elements.
	ErrElementNotInDiagram = errors.New("analyzer: element not in diagram")

	// ErrElementNotInComposition is returned when a stability-region query
	// names an element the target composition does not contain.
	ErrElementNotInComposition = errors.New("analyzer: element not in composition")

	// ErrNotStable is returned when an operation needs a stable entry.
	ErrNotStable = errors.New("analyzer: entry is not stable")

	// ErrNoValidDecomposition is returned when an entry lies below the hull
	// by more than the numerical tolerance and negatives are not allowed.
	ErrNoValidDecomposition = errors.New("analyzer: no valid decomposition")
)
