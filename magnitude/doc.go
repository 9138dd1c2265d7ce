// SPDX-License-Identifier: MIT

// Package magnitude implements exact scale factors ("magnitudes") as products
// of rational powers of primes and of named irrational atoms such as π.
//
// Representation:
//
//	m = Π pᵢ^eᵢ × Π aⱼ^fⱼ
//
//	pᵢ — distinct primes in ascending order, eᵢ ≠ 0 rational
//	aⱼ — irrational atoms (ID + numeric value), ordered by ID, fⱼ ≠ 0 rational
//
// The empty product is the identity; the zero value of Magnitude is One.
// Every operation returns a new value and never mutates its operands, so a
// Magnitude can be shared between goroutines freely.
//
// Exactness guarantees:
//   - construction factors the integers with the prime package, so 1000/1
//     and 2³·5³ are the same value and compare Equal;
//   - exponent arithmetic is overflow-checked (ratio package) and fails with
//     ErrDefinition instead of wrapping;
//   - Root fails with ErrDefinition when n does not divide a prime exponent's
//     numerator; Pow with a rational exponent is the explicit way to build
//     values such as √2.
//
// Evaluation:
//
//	Value[int64](m)   — exact, or ErrInexactIntegral when m is not an integer
//	Value[float64](m) — always succeeds, computed with a 128-bit big.Float
//
// Typical use:
//
//	kilo := magnitude.MustInt(1000)
//	milli := magnitude.Invert(kilo)
//	f, _ := magnitude.Multiply(kilo, milli) // One
package magnitude
