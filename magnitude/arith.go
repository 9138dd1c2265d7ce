// SPDX-License-Identifier: MIT

package magnitude

import (
	"github.com/katalvlaran/lvunits/ratio"
)

// Multiply returns a·b.
//
// Both factor lists are merged in order; exponents of equal primes (or equal
// atom IDs) are added and factors whose exponent becomes zero are dropped.
//
// Errors: ErrDefinition on exponent overflow, or when a and b bind the same
// atom ID to different values.
//
// Complexity: O(len(a) + len(b)).
func Multiply(a, b Magnitude) (Magnitude, error) {
	if a.IsOne() {
		return b, nil
	}
	if b.IsOne() {
		return a, nil
	}

	terms, err := mergeTerms(a.terms, b.terms)
	if err != nil {
		return One, definitionErrorf(opMultiply, err)
	}
	irr, err := mergeIrrationals(a.irrationals, b.irrationals)
	if err != nil {
		return One, definitionErrorf(opMultiply, err)
	}

	return Magnitude{terms: terms, irrationals: irr}, nil
}

// Invert returns 1/a by negating every exponent. It never fails.
func Invert(a Magnitude) Magnitude {
	out := Magnitude{}
	if len(a.terms) > 0 {
		out.terms = make([]Term, len(a.terms))
		for i, t := range a.terms {
			out.terms[i] = Term{Prime: t.Prime, Exp: t.Exp.Neg()}
		}
	}
	if len(a.irrationals) > 0 {
		out.irrationals = make([]IrrationalTerm, len(a.irrationals))
		for i, it := range a.irrationals {
			out.irrationals[i] = IrrationalTerm{Atom: it.Atom, Exp: it.Exp.Neg()}
		}
	}

	return out
}

// Divide returns a/b = Multiply(a, Invert(b)).
func Divide(a, b Magnitude) (Magnitude, error) {
	out, err := Multiply(a, Invert(b))
	if err != nil {
		return One, magnitudeErrorf(opDivide, err)
	}

	return out, nil
}

// Power returns a^n for an integer n. Power(a, 0) is One.
//
// Errors: ErrDefinition when an exponent product overflows.
func Power(a Magnitude, n int64) (Magnitude, error) {
	out, err := scaleExponents(a, ratio.Int(clampMin(n)), n == minInt64)
	if err != nil {
		return One, definitionErrorf(opPower, err)
	}

	return out, nil
}

// Root returns the n-th root of a.
//
// Each prime exponent's numerator must be divisible by n, so the root adds no
// fractional part of its own: Root(8, 3) is 2 and Root(2^(3/2), 3) is √2,
// while Root(2, 2) fails. Irrational exponents are divided symbolically
// (Root(π², 2) is π; Root(π, 2) is π^½).
//
// Errors: ErrDefinition when n <= 0 or a prime exponent's numerator is not
// divisible by n.
func Root(a Magnitude, n int64) (Magnitude, error) {
	if n <= 0 {
		return One, definitionErrorf(opRoot, errBadRootIndex)
	}
	for _, t := range a.terms {
		if t.Exp.Num()%n != 0 {
			return One, definitionErrorf(opRoot, errInexactRoot)
		}
	}
	exp, err := ratio.New(1, n)
	if err != nil {
		return One, definitionErrorf(opRoot, err)
	}
	out, err := scaleExponents(a, exp, false)
	if err != nil {
		return One, definitionErrorf(opRoot, err)
	}

	return out, nil
}

// Pow returns a^(num/den) for a rational exponent. Unlike Root it accepts
// fractional prime exponents, so Pow(2, 1, 2) is the exact value √2.
//
// Errors: ErrDefinition when den == 0 or an exponent product overflows.
func Pow(a Magnitude, num, den int64) (Magnitude, error) {
	exp, err := ratio.New(num, den)
	if err != nil {
		return One, definitionErrorf(opPow, err)
	}
	out, err := scaleExponents(a, exp, false)
	if err != nil {
		return One, definitionErrorf(opPow, err)
	}

	return out, nil
}

// Sqrt is Pow(a, 1, 2).
func Sqrt(a Magnitude) (Magnitude, error) { return Pow(a, 1, 2) }

const minInt64 = -1 << 63

// clampMin maps MinInt64 to 0 so ratio.Int cannot panic; the caller reports
// the overflow through forceOverflow.
func clampMin(n int64) int64 {
	if n == minInt64 {
		return 0
	}

	return n
}

// scaleExponents multiplies every exponent of a by k. A zero k yields One.
func scaleExponents(a Magnitude, k ratio.Ratio, forceOverflow bool) (Magnitude, error) {
	if forceOverflow && !a.IsOne() {
		return One, ratio.ErrOverflow
	}
	if k.IsZero() || a.IsOne() {
		return One, nil
	}

	out := Magnitude{}
	if len(a.terms) > 0 {
		out.terms = make([]Term, len(a.terms))
		for i, t := range a.terms {
			e, err := t.Exp.Mul(k)
			if err != nil {
				return One, err
			}
			out.terms[i] = Term{Prime: t.Prime, Exp: e}
		}
	}
	if len(a.irrationals) > 0 {
		out.irrationals = make([]IrrationalTerm, len(a.irrationals))
		for i, it := range a.irrationals {
			e, err := it.Exp.Mul(k)
			if err != nil {
				return One, err
			}
			out.irrationals[i] = IrrationalTerm{Atom: it.Atom, Exp: e}
		}
	}

	return out, nil
}

// mergeTerms merges two prime-sorted lists, summing equal primes.
func mergeTerms(a, b []Term) ([]Term, error) {
	out := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Prime < b[j].Prime:
			out = append(out, a[i])
			i++
		case b[j].Prime < a[i].Prime:
			out = append(out, b[j])
			j++
		default:
			e, err := a[i].Exp.Add(b[j].Exp)
			if err != nil {
				return nil, err
			}
			if !e.IsZero() {
				out = append(out, Term{Prime: a[i].Prime, Exp: e})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return compactTerms(out), nil
}

// mergeIrrationals merges two ID-sorted lists, summing equal atoms.
func mergeIrrationals(a, b []IrrationalTerm) ([]IrrationalTerm, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, nil
	}
	out := make([]IrrationalTerm, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Atom.ID < b[j].Atom.ID:
			out = append(out, a[i])
			i++
		case b[j].Atom.ID < a[i].Atom.ID:
			out = append(out, b[j])
			j++
		default:
			if a[i].Atom.Value != b[j].Atom.Value {
				return nil, errAtomConflict
			}
			e, err := a[i].Exp.Add(b[j].Exp)
			if err != nil {
				return nil, err
			}
			if !e.IsZero() {
				out = append(out, IrrationalTerm{Atom: a[i].Atom, Exp: e})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return compactIrrationals(out), nil
}
