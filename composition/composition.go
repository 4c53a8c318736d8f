// SPDX-License-Identifier: MIT

package composition

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountTolerance is the amount below which an element is considered absent,
// and the distance to the nearest integer under which an amount is integral.
const AmountTolerance = 1e-8

// keyDigits is the number of decimals kept for atomic fractions in Key.
const keyDigits = 8

// Composition is an immutable mapping Element -> amount (> AmountTolerance).
// The zero value is the empty composition.
type Composition struct {
	amounts map[Element]float64
	order   []Element // canonical element order, cached at construction
}

// New builds a Composition from an element->amount map. Amounts at or below
// AmountTolerance are dropped.
//
// Errors:
//   - ErrInvalidElement, ErrNegativeAmount, ErrNonFiniteAmount.
func New(amounts map[Element]float64) (Composition, error) {
	m := make(map[Element]float64, len(amounts))
	for el, amt := range amounts {
		if !isSymbol(string(el)) {
			return Composition{}, fmt.Errorf("%q: %w", string(el), ErrInvalidElement)
		}
		if math.IsNaN(amt) || math.IsInf(amt, 0) {
			return Composition{}, fmt.Errorf("%s: %w", el, ErrNonFiniteAmount)
		}
		if amt < -AmountTolerance {
			return Composition{}, fmt.Errorf("%s=%g: %w", el, amt, ErrNegativeAmount)
		}
		if amt > AmountTolerance {
			m[el] = amt
		}
	}

	return fromMap(m), nil
}

// MustNew is New that panics on error. Intended for literals in tests/examples.
func MustNew(amounts map[Element]float64) Composition {
	c, err := New(amounts)
	if err != nil {
		panic(err)
	}

	return c
}

// fromMap takes ownership of a pre-validated map.
func fromMap(m map[Element]float64) Composition {
	order := make([]Element, 0, len(m))
	for el := range m {
		order = append(order, el)
	}
	SortElements(order)

	return Composition{amounts: m, order: order}
}

// Elements returns the elements present, in canonical order.
func (c Composition) Elements() []Element {
	out := make([]Element, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of distinct elements.
func (c Composition) Len() int { return len(c.order) }

// IsEmpty reports whether the composition has no elements.
func (c Composition) IsEmpty() bool { return len(c.order) == 0 }

// Amount returns the amount of el (0 when absent).
func (c Composition) Amount(el Element) float64 { return c.amounts[el] }

// Contains reports whether el is present.
func (c Composition) Contains(el Element) bool {
	_, ok := c.amounts[el]

	return ok
}

// NumAtoms returns the total amount over all elements.
func (c Composition) NumAtoms() float64 {
	var n float64
	for _, el := range c.order {
		n += c.amounts[el]
	}

	return n
}

// Fraction returns the atomic fraction of el (0 for an empty composition).
func (c Composition) Fraction(el Element) float64 {
	n := c.NumAtoms()
	if n == 0 {
		return 0
	}

	return c.amounts[el] / n
}

// Fractional returns the composition normalized to one atom.
func (c Composition) Fractional() Composition {
	n := c.NumAtoms()
	if n == 0 {
		return c
	}

	return c.Scale(1 / n)
}

// IsElement reports whether the composition holds exactly one element.
func (c Composition) IsElement() bool { return len(c.order) == 1 }

// IsSubsetOf reports whether every element of c is in els.
func (c Composition) IsSubsetOf(els []Element) bool {
	for _, el := range c.order {
		if IndexOf(els, el) < 0 {
			return false
		}
	}

	return true
}

// Map returns a copy of the underlying amounts.
func (c Composition) Map() map[Element]float64 {
	out := make(map[Element]float64, len(c.amounts))
	for k, v := range c.amounts {
		out[k] = v
	}

	return out
}

// Scale returns c with every amount multiplied by f (f must be > 0).
func (c Composition) Scale(f float64) Composition {
	m := make(map[Element]float64, len(c.amounts))
	for el, amt := range c.amounts {
		m[el] = amt * f
	}

	return fromMap(m)
}

// Add returns the element-wise sum c + o.
func (c Composition) Add(o Composition) Composition {
	m := c.Map()
	for el, amt := range o.amounts {
		m[el] += amt
	}

	return fromMap(m)
}

// Without returns c with the given elements removed.
func (c Composition) Without(els ...Element) Composition {
	m := c.Map()
	for _, el := range els {
		delete(m, el)
	}

	return fromMap(m)
}

// ReducedAndFactor returns the reduced composition and the factor it was
// divided by. Reduction divides by the gcd of the amounts when they are all
// integral; otherwise the factor is 1.
func (c Composition) ReducedAndFactor() (Composition, float64) {
	if c.IsEmpty() {
		return c, 1
	}
	var g int64
	ints := make(map[Element]float64, len(c.order))
	for _, el := range c.order {
		amt := c.amounts[el]
		r := math.Round(amt)
		if math.Abs(amt-r) > AmountTolerance || r < 1 {
			return c, 1
		}
		ints[el] = r
		g = gcd(g, int64(r))
	}
	if g <= 1 {
		return c, 1
	}
	for el, r := range ints {
		ints[el] = r / float64(g)
	}

	return fromMap(ints), float64(g)
}

// Reduced returns the reduced composition (see ReducedAndFactor).
func (c Composition) Reduced() Composition {
	r, _ := c.ReducedAndFactor()

	return r
}

// Key returns a canonical string identifying the normalized composition.
// Two compositions with equal Key have the same atomic fractions.
func (c Composition) Key() string {
	n := c.NumAtoms()
	var b strings.Builder
	for _, el := range c.order {
		b.WriteString(string(el))
		b.WriteString(strconv.FormatFloat(c.amounts[el]/n, 'f', keyDigits, 64))
	}

	return b.String()
}

// Equal reports exact equality of elements and amounts.
func (c Composition) Equal(o Composition) bool {
	if len(c.order) != len(o.order) {
		return false
	}
	for el, amt := range c.amounts {
		if o.amounts[el] != amt {
			return false
		}
	}

	return true
}

// AlmostEqual reports equality of elements and amounts within tol.
func (c Composition) AlmostEqual(o Composition, tol float64) bool {
	if len(c.order) != len(o.order) {
		return false
	}
	for el, amt := range c.amounts {
		oamt, ok := o.amounts[el]
		if !ok || math.Abs(oamt-amt) > tol {
			return false
		}
	}

	return true
}

// SameReduced reports whether c and o have the same atomic fractions.
func (c Composition) SameReduced(o Composition) bool { return c.Key() == o.Key() }

// Formula returns the space separated formula in canonical order, e.g. "Fe2 O3".
func (c Composition) Formula() string {
	parts := make([]string, len(c.order))
	for i, el := range c.order {
		parts[i] = string(el) + formatAmount(c.amounts[el])
	}

	return strings.Join(parts, " ")
}

// ReducedFormula returns the compact reduced formula with unit amounts
// omitted, e.g. "Fe2O3".
func (c Composition) ReducedFormula() string {
	r := c.Reduced()
	var b strings.Builder
	for _, el := range r.order {
		b.WriteString(string(el))
		if amt := r.amounts[el]; math.Abs(amt-1) > AmountTolerance {
			b.WriteString(formatAmount(amt))
		}
	}

	return b.String()
}

// String implements fmt.Stringer (Formula).
func (c Composition) String() string { return c.Formula() }

// formatAmount prints integral amounts without decimals and everything else
// with the shortest exact representation.
func formatAmount(a float64) string {
	if a == math.Trunc(a) && math.Abs(a) < 1e15 {
		return strconv.FormatInt(int64(a), 10)
	}

	return strconv.FormatFloat(a, 'f', -1, 64)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
