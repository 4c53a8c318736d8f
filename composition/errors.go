// SPDX-License-Identifier: MIT

package composition

import "errors"

// Sentinel errors. Parse errors are wrapped with the offending position.
var (
	// ErrInvalidElement is returned for symbols that are not of the form Xx.
	ErrInvalidElement = errors.New("composition: invalid element symbol")

	// ErrNegativeAmount is returned when an element amount is below zero.
	ErrNegativeAmount = errors.New("composition: negative amount")

	// ErrNonFiniteAmount is returned when an element amount is NaN or ±Inf.
	ErrNonFiniteAmount = errors.New("composition: non-finite amount")

	// ErrEmptyFormula is returned by Parse for blank input.
	ErrEmptyFormula = errors.New("composition: empty formula")

	// ErrInvalidFormula is returned by Parse for malformed input.
	ErrInvalidFormula = errors.New("composition: invalid formula")
)
