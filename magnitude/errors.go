// SPDX-License-Identifier: MIT
// Package magnitude: sentinel error set.
//
// Every error returned by this package matches one of the sentinels below via
// errors.Is. Errors caused by exponent arithmetic additionally match the
// underlying ratio sentinel (ratio.ErrOverflow, ratio.ErrZeroDenominator).

package magnitude

import (
	"errors"
	"fmt"
)

var (
	// ErrDefinition reports a magnitude that cannot exist: a zero or negative
	// ratio, a zero denominator, exponent or value overflow, or a root that
	// is not exactly representable.
	ErrDefinition = errors.New("magnitude: invalid definition")

	// ErrInexactIntegral reports that evaluating a magnitude into an integer
	// type would truncate.
	ErrInexactIntegral = errors.New("magnitude: inexact integral conversion")

	// ErrNotRational reports that an operation needs a ratio of integers but
	// the magnitude has irrational atoms or fractional prime exponents.
	ErrNotRational = errors.New("magnitude: not a rational value")
)

// Operation tags used to prefix errors.
const (
	opRational   = "Rational"
	opIrrational = "Irrational"
	opMultiply   = "Multiply"
	opDivide     = "Divide"
	opPower      = "Power"
	opRoot       = "Root"
	opPow        = "Pow"
	opValue      = "Value"
	opRatio      = "Ratio"
)

// definitionErrorf tags a definition failure; cause may be nil.
func definitionErrorf(tag string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, ErrDefinition)
	}

	return fmt.Errorf("%s: %w: %w", tag, ErrDefinition, cause)
}

// magnitudeErrorf tags err with the operation name.
func magnitudeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
