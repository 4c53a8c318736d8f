// SPDX-License-Identifier: MIT

// Package analyzer answers thermodynamic stability queries against a
// phasediagram.PhaseDiagram.
//
// What is here?
//
//	• Decomposition family  — equilibrium phases of a composition, their atom
//	                          fractions or atom counts, and the hull energy.
//	• EAboveHull            — distance of an entry above the hull per atom.
//	• EquilibriumReactionEnergy — how far a stable entry sits below the hull
//	                          of all other stable entries.
//	• Chemical potentials   — per facet, per composition, and the transition
//	                          values of one element.
//	• ChempotRangeMap       — stability regions in chemical-potential space.
//	• ElementProfile        — phase evolution of a composition opened to one
//	                          element.
//	• MuVerticesStabilityPhase / MuRangeStabilityPhase — the chemical
//	                          potential region where a stable phase exists.
//
// An Analyzer precomputes facet chemical potentials in New and is read-only
// afterwards. Queries that need derived diagrams (reaction energies, element
// profiles) build them on the fly with the parent diagram's options.
//
// Errors (sentinel):
//
//	– ErrNilDiagram              New got a nil diagram.
//	– ErrFacetOutOfRange         facet index outside the diagram.
//	– ErrCompositionNotInDiagram foreign element or no containing facet.
//	– ErrElementNotInDiagram     queried element not in the diagram.
//	– ErrElementNotInComposition dependent element absent from the target.
//	– ErrNotStable               operation requires a stable entry.
//	– ErrNoValidDecomposition    entry below the hull beyond tolerance.
package analyzer
