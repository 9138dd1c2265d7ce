// SPDX-License-Identifier: MIT

package dimension

import (
	"errors"
	"fmt"
)

// ErrDefinition reports an exponent list that cannot be built: an empty base
// identifier, a zero denominator or exponent overflow.
var ErrDefinition = errors.New("dimension: invalid definition")

var errEmptyBase = errors.New("empty base identifier")

// Operation tags used to prefix errors.
const (
	opNew      = "New"
	opMultiply = "Multiply"
	opDivide   = "Divide"
	opPow      = "Pow"
)

// definitionErrorf wraps cause under ErrDefinition so that both match.
func definitionErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrDefinition, cause)
}

// dimensionErrorf tags err with the operation name.
func dimensionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
