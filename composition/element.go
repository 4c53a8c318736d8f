// SPDX-License-Identifier: MIT

package composition

import (
	"fmt"
	"sort"
)

// Element is a chemical element symbol such as "Fe" or "O".
// Elements are totally ordered by symbol.
type Element string

// NewElement validates sym as [A-Z][a-z]{0,2}.
func NewElement(sym string) (Element, error) {
	if !isSymbol(sym) {
		return "", fmt.Errorf("%q: %w", sym, ErrInvalidElement)
	}

	return Element(sym), nil
}

// MustElement is NewElement that panics on invalid input. Intended for literals.
func MustElement(sym string) Element {
	el, err := NewElement(sym)
	if err != nil {
		panic(err)
	}

	return el
}

// Symbol returns the element symbol.
func (e Element) Symbol() string { return string(e) }

// String implements fmt.Stringer.
func (e Element) String() string { return string(e) }

// Less reports whether e sorts before o.
func (e Element) Less(o Element) bool { return e < o }

// SortElements sorts els in place in canonical order and returns it.
func SortElements(els []Element) []Element {
	sort.Slice(els, func(i, j int) bool { return els[i] < els[j] })

	return els
}

// IndexOf returns the position of el in els, or -1.
func IndexOf(els []Element, el Element) int {
	for i, e := range els {
		if e == el {
			return i
		}
	}

	return -1
}

func isSymbol(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}

	return true
}
