// SPDX-License-Identifier: MIT

// Package phasediagram builds compositional phase diagrams: the lower convex
// hull of entries in (composition fraction, formation energy per atom) space.
//
// What is here?
//
//	• New               — the diagram of a set of entries.
//	• NewGrandPotential — the diagram of a system open to some elements at
//	                      fixed chemical potentials (Legendre transform).
//	• Accessors         — stable/unstable entries, elemental references,
//	                      facets, their composition-space simplices and
//	                      formation energies.
//
// Coordinates:
//
//	With elements e0 < e1 < … < e(k-1) (symbol order), an entry maps to
//	(x(e1), …, x(e(k-1)), ΔH) where x is the atomic fraction and ΔH the
//	formation energy per atom against the elemental references. The hull
//	is k-dimensional; every lower facet is a k-vertex simplex.
//
// A PhaseDiagram never changes after New. Queries live in package analyzer.
//
// Errors (sentinel):
//
//	– ErrNoEntries               no entry inside the element space.
//	– ErrMissingElementReference an element lacks a single-element entry.
//	– ErrDegenerateHull          no usable lower facet could be produced.
//	– ErrCompositionNotInDiagram composition holds a foreign element.
package phasediagram
