// SPDX-License-Identifier: MIT

// Package matrix is the small dense linear-algebra core behind phasehull.
//
// What & Why:
//
//	Every geometric question the phase-diagram engine asks ends up as a tiny
//	dense system: the barycentric weights of a point in a simplex, the
//	determinant of a facet's vertex matrix, the chemical potentials that make
//	a facet's hyperplane pass through its vertex energies. This package keeps
//	those systems in one row-major Dense type and solves them through a single
//	partially pivoted LU factorization.
//
// Surface:
//
//   - Dense, NewDense, NewDenseFromRows: storage with bounds-checked At/Set.
//   - LUP, Solve, Det: factorization-based kernels.
//   - Rank: numerical rank, used by the hull to reject flat point sets.
//   - NullVector: hyperplane normals by cofactor expansion.
//
// Errors are package sentinels (ErrSingular, ErrNonSquare, ...) wrapped with
// an operation tag; match them with errors.Is.
//
// Complexity:
//
//	At/Set O(1); LUP/Solve/Det O(n³); Rank O(r·c·min(r,c)); NullVector O(n⁴).
package matrix
