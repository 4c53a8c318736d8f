// SPDX-License-Identifier: MIT

package composition

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// exactFormula renders every amount with the shortest representation that
// parses back to the same float64, so Parse(exactFormula(c)) == c.
func (c Composition) exactFormula() string {
	var out []byte
	for _, el := range c.order {
		out = append(out, el...)
		out = strconv.AppendFloat(out, c.amounts[el], 'f', -1, 64)
	}

	return string(out)
}

// MarshalText implements encoding.TextMarshaler (used by encoding/json).
func (c Composition) MarshalText() ([]byte, error) {
	return []byte(c.exactFormula()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Composition) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler: a composition is a formula scalar.
func (c Composition) MarshalYAML() (any, error) {
	return c.exactFormula(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both a formula scalar and an
// element->amount mapping are accepted.
func (c *Composition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var m map[Element]float64
		if err := node.Decode(&m); err != nil {
			return err
		}
		parsed, err := New(m)
		if err != nil {
			return err
		}
		*c = parsed

		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return c.UnmarshalText([]byte(s))
}
