// SPDX-License-Identifier: MIT

package unit

import (
	"errors"
	"fmt"
)

var (
	// ErrDefinition reports a unit that cannot be built. Errors coming from
	// the magnitude and dimension packages are wrapped so that their own
	// sentinels keep matching as well.
	ErrDefinition = errors.New("unit: invalid definition")

	// ErrInconvertible reports two units whose dimensions are not equivalent.
	// It is returned before any numeric scaling takes place.
	ErrInconvertible = errors.New("unit: inconvertible units")
)

var (
	errNoOperands  = errors.New("no operands")
	errEmptyName   = errors.New("empty quantity name")
	errNameInUse   = errors.New("quantity name registered with another dimension")
	errOutOfRange  = errors.New("value does not fit the target type")
	errIntegerPath = errors.New("conversion factor is not a ratio of int64")
)

// Operation tags used to prefix errors.
const (
	opScaled   = "Scaled"
	opMultiply = "Multiply"
	opDivide   = "Divide"
	opPow      = "Pow"
	opFactor   = "ConversionFactor"
	opCommon   = "CommonUnit"
	opConvert  = "Convert"
	opRegister = "Register"
)

// definitionErrorf wraps cause under ErrDefinition so that both match.
func definitionErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrDefinition, cause)
}

// inconvertibleErrorf names the offending pair.
func inconvertibleErrorf(tag string, a, b Unit) error {
	return fmt.Errorf("%s: %w: %s [%s] and %s [%s]", tag, ErrInconvertible, a, a.dim, b, b.dim)
}

// unitErrorf tags err with the operation name.
func unitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
