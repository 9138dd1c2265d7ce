// SPDX-License-Identifier: MIT

package unit

import (
	"errors"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/ratio"
)

// Convertible reports whether a value in a may be expressed in b, i.e. whether
// their dimensions are equivalent. Kinds do not take part: hertz and becquerel
// are both T⁻¹ and convert to each other.
func Convertible(a, b Unit) bool {
	return dimension.Equivalent(a.dim, b.dim)
}

// ConversionFactor returns f = mag(a)/mag(b), so that a value v in a is v·f
// in b. ConversionFactor(km, m) is 1000.
//
// Errors: ErrInconvertible (with a One magnitude) when !Convertible(a, b).
func ConversionFactor(a, b Unit) (magnitude.Magnitude, error) {
	if !Convertible(a, b) {
		return magnitude.One, inconvertibleErrorf(opFactor, a, b)
	}
	f, err := magnitude.Divide(a.mag, b.mag)
	if err != nil {
		return magnitude.One, definitionErrorf(opFactor, err)
	}

	return f, nil
}

// CommonUnit returns the largest unit that every operand is an integral
// multiple of, e.g. metre for {metre, kilometre}. Its magnitude is
// magnitude.CommonOf over the operands, its dimension is theirs. The kind is
// kept when all operands share it. When the common magnitude equals an
// operand's magnitude, that operand's name and symbol are reused.
//
// Errors:
//   - ErrDefinition when called without operands;
//   - ErrInconvertible when an operand is not convertible to the first.
func CommonUnit(units ...Unit) (Unit, error) {
	if len(units) == 0 {
		return Unit{}, definitionErrorf(opCommon, errNoOperands)
	}
	for _, u := range units[1:] {
		if !Convertible(units[0], u) {
			return Unit{}, inconvertibleErrorf(opCommon, units[0], u)
		}
	}

	mags := make([]magnitude.Magnitude, len(units))
	kind := units[0].kind
	for i, u := range units {
		mags[i] = u.mag
		if u.kind != kind {
			kind = ""
		}
	}
	out := Unit{kind: kind, mag: magnitude.CommonOf(mags...), dim: units[0].dim}
	for _, u := range units {
		if u.mag.Equal(out.mag) {
			out.name, out.symbol = u.name, u.symbol
			break
		}
	}

	return out, nil
}

// Convert expresses v, given in from, in to.
//
// Integral T: the result must be exact; a fractional result or an irrational
// factor yields magnitude.ErrInexactIntegral and a result that does not fit T
// yields ErrDefinition. Floating T: v·factor rounded to T.
//
// Errors: ErrInconvertible when !Convertible(from, to).
func Convert[T magnitude.Number](v T, from, to Unit) (T, error) {
	f, err := ConversionFactor(from, to)
	if err != nil {
		return 0, unitErrorf(opConvert, err)
	}
	if f.IsOne() || v == 0 {
		return v, nil
	}
	if !isIntegral[T]() {
		return T(float64(v) * f.Float64()), nil
	}

	num, den, err := magnitude.Ratio(f)
	switch {
	case errors.Is(err, magnitude.ErrNotRational):
		return 0, unitErrorf(opConvert, magnitude.ErrInexactIntegral)
	case err != nil:
		return 0, definitionErrorf(opConvert, errIntegerPath)
	}

	x := int64(v)
	if T(x) != v || (x < 0) != (v < 0) {
		return 0, definitionErrorf(opConvert, errOutOfRange)
	}
	p, ok := ratio.MulInt64(x, num)
	if !ok {
		return 0, definitionErrorf(opConvert, ratio.ErrOverflow)
	}
	if p%den != 0 {
		return 0, unitErrorf(opConvert, magnitude.ErrInexactIntegral)
	}
	r := p / den
	out := T(r)
	if int64(out) != r || (out < 0) != (r < 0) {
		return 0, definitionErrorf(opConvert, errOutOfRange)
	}

	return out, nil
}

func isIntegral[T magnitude.Number]() bool {
	var one T = 1

	return one/2 == 0
}
