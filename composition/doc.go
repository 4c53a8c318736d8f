// SPDX-License-Identifier: MIT

// Package composition models chemical compositions: immutable multisets of
// element symbols with non-negative real amounts.
//
// It is the collaborator the phase-diagram engine leans on for everything
// compositional:
//
//   - enumerate (Element, amount) pairs in canonical (symbol) order,
//   - total atom count and atomic fractions,
//   - equality and hashing by normalized (fractional) formula via Key,
//   - construction from formula strings such as "Li3Fe7O11" or "Ca(OH)2".
//
// Usage:
//
//	c, err := composition.Parse("LiFeO2")
//	if err != nil { ... }
//	c.Fraction("O")    // 0.5
//	c.ReducedFormula() // "FeLiO2"
//
// Element data (masses, electronegativities, ...) is deliberately out of
// scope; an Element is only a validated symbol with a stable total order.
package composition
