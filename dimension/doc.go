// SPDX-License-Identifier: MIT

// Package dimension implements the exponent-list algebra used to describe
// physical dimensions.
//
// A List is a product of base quantities raised to rational exponents:
//
//	L¹·T⁻²     (acceleration)
//	M¹·L⁻¹·T⁻² (pressure)
//	∅          (dimensionless)
//
// Every List is kept in canonical form: entries sorted by the lexical order of
// their Base identifier, one entry per base, no zero exponents. Two
// compositions that describe the same physical dimension therefore produce
// structurally identical lists regardless of the order in which their factors
// were supplied, and Equivalent is a plain element-by-element comparison.
//
// Exponent arithmetic uses the ratio package; overflow is reported as
// ErrDefinition (also matching ratio.ErrOverflow) and never wraps.
//
// Lists are immutable values, the zero value is the dimensionless list, and
// all functions are safe for concurrent use.
package dimension
