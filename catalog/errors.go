// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned by Lookup for a symbol or name that is not
	// in the catalog.
	ErrUnknownUnit = errors.New("catalog: unknown unit")

	// ErrDuplicateSymbol is returned by New when two different units claim
	// the same symbol or name.
	ErrDuplicateSymbol = errors.New("catalog: duplicate symbol")
)

// catalogErrorf tags err with the operation name.
func catalogErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
