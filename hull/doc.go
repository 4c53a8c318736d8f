// SPDX-License-Identifier: MIT

// Package hull is the geometric query layer of phasehull: convex hulls of
// small point sets in d dimensions and barycentric queries against simplices.
//
// 🚀 What is here?
//
//	• ConvexHull  — incremental (beneath-beyond) hull; simplicial facets with
//	                oriented outward hyperplanes.
//	• Simplex     — barycentric coordinates, containment within a tolerance,
//	                interpolation of vertex values.
//	• FindContaining — first simplex of a list that contains a point.
//
// Everything is a pure function of (points, query point): no phase-diagram
// types leak in, so properties can be tested on synthetic point sets.
//
// ⚙️ Numeric policy:
//
//	Points within eps of a facet plane count as inside (they never become
//	vertices). eps defaults to DefaultEpsilon scaled by max(1, max|coord|);
//	override it with WithEpsilon.
//
// Complexity:
//
//	ConvexHull is O(n·F·d³) for n points and F live facets; the d³ term is the
//	cofactor normal of each new facet. Phase diagrams have d ≤ ~6 and a few
//	hundred points, where this is comfortably fast.
package hull
