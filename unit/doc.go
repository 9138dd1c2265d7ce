// SPDX-License-Identifier: MIT

// Package unit composes units of measurement out of an exact magnitude and a
// dimension, and answers the three questions a quantity layer needs:
//
//	Convertible(a, b)       — may a value in a be expressed in b?
//	ConversionFactor(a, b)  — the exact Magnitude f with value_in(b) = value_in(a)·f
//	CommonUnit(us...)       — the coarsest unit every operand is an integral multiple of
//
// A Unit is an immutable value:
//
//	Unit = (Magnitude relative to the coherent unit, dimension.List, name, symbol, kind)
//
// Units are built once, at definition time, with NewBase, Scaled, Prefixed,
// Named and the algebraic constructors Multiply, Divide, Pow and Invert. Every
// constructor validates eagerly, so a Unit that exists is always well formed.
//
// Kinds:
//
// A unit's kind names the quantity it measures, e.g. hertz is "frequency" and
// becquerel is "activity". Kinds are metadata only: convertibility depends on
// the dimension alone, so Hz and Bq (both T⁻¹) convert to each other. Units
// produced by the algebraic constructors have an empty kind.
//
// The Quantities table maps canonical dimensions to registered quantity names
// ("velocity", "pressure") so callers can recognize what an anonymous
// composition measures. It is safe for concurrent use.
package unit
