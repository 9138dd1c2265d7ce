// SPDX-License-Identifier: MIT

// Package ratio implements exact rational numbers over int64 with
// overflow-checked arithmetic.
//
// A Ratio is the exponent type shared by the magnitude engine (prime-power
// exponents) and the dimension algebra (base-quantity exponents). Every value
// is kept in lowest terms with a strictly positive denominator, so two equal
// rationals are always represented identically and Equal is a field comparison.
//
// Arithmetic never wraps: products are computed with a 128-bit intermediate
// (math/bits) and any result that does not fit back into int64 is reported as
// ErrOverflow. Numerators and denominators equal to math.MinInt64 are rejected
// at construction, which keeps negation total.
//
// The zero value is a valid 0/1.
package ratio
