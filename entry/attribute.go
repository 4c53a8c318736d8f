// SPDX-License-Identifier: MIT

package entry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeAttribute decodes the entry's free-form attribute map into out, a
// pointer to a struct tagged with `mapstructure:"..."`. Weakly typed input
// (numbers stored as strings, ...) is accepted since record formats differ in
// how they type scalars.
func DecodeAttribute(e *Entry, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("entry: attribute decoder: %w", err)
	}
	if err = dec.Decode(e.attribute); err != nil {
		return fmt.Errorf("entry %s: decode attribute: %w", e.name, err)
	}

	return nil
}
