// SPDX-License-Identifier: MIT

package entry

import "errors"

var (
	// ErrEmptyComposition is returned when an entry has no elements.
	ErrEmptyComposition = errors.New("entry: empty composition")

	// ErrNonFiniteEnergy is returned when an entry energy is NaN or ±Inf.
	ErrNonFiniteEnergy = errors.New("entry: non-finite energy")

	// ErrMalformedRecord is returned by readers for structurally invalid input.
	ErrMalformedRecord = errors.New("entry: malformed record")

	// ErrUnknownFormat is returned by Load/Save for unsupported extensions.
	ErrUnknownFormat = errors.New("entry: unknown record format")
)
