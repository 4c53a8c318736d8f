// Package phasehull computes thermodynamic phase diagrams: the lower convex
// hull of formation energies over composition space, and the stability data
// that follows from it.
//
// 🚀 What is phasehull?
//
//	A small, dependency-light library plus CLI that brings together:
//		• Compositions: formula parsing, reduction, fractional coordinates
//		• Entries: named (composition, energy) records with CSV/JSON/YAML IO
//		• Hull geometry: d-dimensional convex hulls and simplex queries
//		• Phase diagrams: stable phases, facets, grand-potential transforms
//		• Analysis: decompositions, energy above hull, reaction energies,
//		  chemical potentials, element profiles and stability regions
//
// Under the hood the work is split into flat packages:
//
//	composition/  — Element and Composition values, formula parser
//	entry/        — Entry records and their file formats
//	matrix/       — dense linear algebra (LUP, solve, determinants, null vectors)
//	hull/         — convex hulls, simplices, barycentric containment
//	phasediagram/ — PhaseDiagram and grand-potential diagrams
//	analyzer/     — stability queries against a PhaseDiagram
//	config/       — TOML settings for pdtool
//	cmd/pdtool/   — command-line front end
//
// Quick example (Li–O, energies in eV per formula unit):
//
//	Li -2, O2 -10, Li2O -12, Li2O2 -17.2 → all four on the hull
//	LiO2 -13.5                           → 0.0333 eV/atom above it,
//	                                       decomposing to 2/3 Li2O2 + 1/3 O2
//
//	go install github.com/katalvlaran/phasehull/cmd/pdtool@latest
package phasehull
