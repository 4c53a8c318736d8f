// SPDX-License-Identifier: MIT

package composition

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse builds a Composition from a chemical formula.
//
// Grammar (whitespace between tokens is ignored):
//
//	formula := term*
//	term    := (symbol | "(" formula ")" | "[" formula "]") amount?
//	amount  := digits ["." digits]
//
// Examples: "Fe2O3", "Li3Fe7O11", "Ca(OH)2", "Li0.5CoO2", "Li1 Fe1 O2".
//
// Errors:
//   - ErrEmptyFormula for blank input.
//   - ErrInvalidFormula (wrapped with the byte offset) for malformed input.
func Parse(formula string) (Composition, error) {
	if strings.TrimSpace(formula) == "" {
		return Composition{}, ErrEmptyFormula
	}
	p := &parser{src: formula}
	m, err := p.formula(0)
	if err != nil {
		return Composition{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Composition{}, p.errorf("unexpected %q", p.src[p.pos])
	}

	return New(m)
}

// MustParse is Parse that panics on error. Intended for literals.
func MustParse(formula string) Composition {
	c, err := Parse(formula)
	if err != nil {
		panic(err)
	}

	return c
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%q at %d: %s: %w", p.src, p.pos, fmt.Sprintf(format, args...), ErrInvalidFormula)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// formula parses terms until EOF or the given closing byte (0 for top level).
func (p *parser) formula(closing byte) (map[Element]float64, error) {
	out := make(map[Element]float64)
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			if closing != 0 {
				return nil, p.errorf("missing %q", closing)
			}

			return out, nil
		}
		c := p.src[p.pos]
		switch {
		case c == closing:
			return out, nil
		case c == '(' || c == '[':
			open := c
			p.pos++
			want := byte(')')
			if open == '[' {
				want = ']'
			}
			inner, err := p.formula(want)
			if err != nil {
				return nil, err
			}
			p.pos++ // consume closing bracket
			if len(inner) == 0 {
				return nil, p.errorf("empty group")
			}
			mult, err := p.amount()
			if err != nil {
				return nil, err
			}
			for el, amt := range inner {
				out[el] += amt * mult
			}
		case c >= 'A' && c <= 'Z':
			start := p.pos
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
				p.pos++
			}
			el, err := NewElement(p.src[start:p.pos])
			if err != nil {
				return nil, p.errorf("%v", err)
			}
			amt, err := p.amount()
			if err != nil {
				return nil, err
			}
			out[el] += amt
		default:
			return nil, p.errorf("unexpected %q", c)
		}
	}
}

// amount parses an optional decimal amount; absent means 1.
func (p *parser) amount() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 1, nil
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("bad amount %q", p.src[start:p.pos])
	}

	return v, nil
}
