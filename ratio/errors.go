// SPDX-License-Identifier: MIT

package ratio

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned when a rational is built or divided with a
	// zero denominator.
	ErrZeroDenominator = errors.New("ratio: zero denominator")

	// ErrOverflow is returned when an exact result does not fit into int64.
	ErrOverflow = errors.New("ratio: integer overflow")
)

// ratioErrorf tags err with the operation that produced it.
func ratioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
