// SPDX-License-Identifier: MIT

package magnitude

import (
	"math"

	"github.com/katalvlaran/lvunits/prime"
	"github.com/katalvlaran/lvunits/ratio"
)

// Rational returns the magnitude p/q.
//
// Both integers are factored with the wheel factorizer; the denominator's
// exponents are negated and merged with the numerator's, so common factors
// cancel. The sign is folded: -p/-q is p/q.
//
// Errors (all match ErrDefinition):
//   - q == 0 (also matches ratio.ErrZeroDenominator);
//   - p == 0;
//   - p/q < 0.
func Rational(p, q int64) (Magnitude, error) {
	if q == 0 {
		return One, definitionErrorf(opRational, ratio.ErrZeroDenominator)
	}
	if p == 0 {
		return One, definitionErrorf(opRational, errZeroValue)
	}
	if (p < 0) != (q < 0) {
		return One, definitionErrorf(opRational, errNegative)
	}

	num := prime.Factorize(absUint64(p))
	den := prime.Factorize(absUint64(q))
	terms := make([]Term, 0, len(num)+len(den))
	i, j := 0, 0
	for i < len(num) || j < len(den) {
		switch {
		case j == len(den) || (i < len(num) && num[i].Prime < den[j].Prime):
			terms = append(terms, Term{Prime: num[i].Prime, Exp: ratio.Int(int64(num[i].Exponent))})
			i++
		case i == len(num) || den[j].Prime < num[i].Prime:
			terms = append(terms, Term{Prime: den[j].Prime, Exp: ratio.Int(-int64(den[j].Exponent))})
			j++
		default:
			// Exponents are bounded by 64, the difference cannot overflow.
			if e := int64(num[i].Exponent - den[j].Exponent); e != 0 {
				terms = append(terms, Term{Prime: num[i].Prime, Exp: ratio.Int(e)})
			}
			i++
			j++
		}
	}

	return Magnitude{terms: compactTerms(terms)}, nil
}

// Int returns the magnitude n/1.
func Int(n int64) (Magnitude, error) {
	return Rational(n, 1)
}

// MustRational is like Rational but panics on error. It is intended for
// package-level unit definitions where a failure is a programming error.
func MustRational(p, q int64) Magnitude {
	m, err := Rational(p, q)
	if err != nil {
		panic(err)
	}

	return m
}

// MustInt is like Int but panics on error.
func MustInt(n int64) Magnitude {
	return MustRational(n, 1)
}

// Irrational wraps an atom as a factor with exponent 1.
//
// Errors: ErrDefinition when the atom has an empty ID or a value that is not
// finite and positive.
func Irrational(a Atom) (Magnitude, error) {
	if a.ID == "" || !(a.Value > 0) || math.IsInf(a.Value, 0) {
		return One, definitionErrorf(opIrrational, errBadAtom)
	}

	return Magnitude{irrationals: []IrrationalTerm{{Atom: a, Exp: ratio.One}}}, nil
}

// MustIrrational is like Irrational but panics on error.
func MustIrrational(a Atom) Magnitude {
	m, err := Irrational(a)
	if err != nil {
		panic(err)
	}

	return m
}

// PowerOf returns base^exp, e.g. PowerOf(10, -3) for milli.
func PowerOf(base, exp int64) (Magnitude, error) {
	b, err := Int(base)
	if err != nil {
		return One, err
	}

	return Power(b, exp)
}

// MustPowerOf is like PowerOf but panics on error.
func MustPowerOf(base, exp int64) Magnitude {
	m, err := PowerOf(base, exp)
	if err != nil {
		panic(err)
	}

	return m
}

// absUint64 returns |x| for every int64, including MinInt64.
func absUint64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

// compactTerms returns nil for an empty slice so that One has a single shape.
func compactTerms(ts []Term) []Term {
	if len(ts) == 0 {
		return nil
	}

	return ts
}

func compactIrrationals(its []IrrationalTerm) []IrrationalTerm {
	if len(its) == 0 {
		return nil
	}

	return its
}
