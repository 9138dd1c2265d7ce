// SPDX-License-Identifier: MIT

package magnitude

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/lvunits/ratio"
)

// floatPrec is the mantissa precision of the intermediate big.Float.
const floatPrec = 128

// IsRational reports whether m is an exact ratio of integers: no irrational
// atoms and every prime exponent an integer.
func IsRational(m Magnitude) bool {
	if len(m.irrationals) != 0 {
		return false
	}
	for _, t := range m.terms {
		if !t.Exp.IsInt() {
			return false
		}
	}

	return true
}

// IsIntegral reports whether m is a positive integer (rational, no negative
// exponents). One is integral.
func IsIntegral(m Magnitude) bool {
	if !IsRational(m) {
		return false
	}
	for _, t := range m.terms {
		if t.Exp.Sign() < 0 {
			return false
		}
	}

	return true
}

// Numerator returns the largest integer magnitude that can be extracted from
// the positive prime powers of m (floor of each positive exponent).
func Numerator(m Magnitude) Magnitude {
	var terms []Term
	for _, t := range m.terms {
		if t.Exp.Sign() <= 0 {
			continue
		}
		whole := t.Exp.Num() / t.Exp.Den()
		if whole > 0 {
			terms = append(terms, Term{Prime: t.Prime, Exp: ratio.Int(whole)})
		}
	}

	return Magnitude{terms: compactTerms(terms)}
}

// Denominator is Numerator(Invert(m)).
func Denominator(m Magnitude) Magnitude {
	return Numerator(Invert(m))
}

// Ratio returns m as num/den in lowest terms.
//
// Errors:
//   - ErrNotRational if m is not rational;
//   - ErrDefinition if num or den does not fit into int64.
func Ratio(m Magnitude) (num, den int64, err error) {
	if !IsRational(m) {
		return 0, 0, magnitudeErrorf(opRatio, ErrNotRational)
	}
	n, ok := integerValue(Numerator(m))
	if !ok || n > math.MaxInt64 {
		return 0, 0, definitionErrorf(opRatio, errValueOverflow)
	}
	d, ok := integerValue(Denominator(m))
	if !ok || d > math.MaxInt64 {
		return 0, 0, definitionErrorf(opRatio, errValueOverflow)
	}

	return int64(n), int64(d), nil
}

// Value evaluates m into the representation type T.
//
// Integral T: m must be an exact positive integer, otherwise the result is
// ErrInexactIntegral; a value that does not fit T is ErrDefinition.
// Floating T: always succeeds; the product is accumulated in a 128-bit
// big.Float by repeated squaring per prime, irrational atoms contribute their
// numeric Value, and the result is rounded once to T.
func Value[T Number](m Magnitude) (T, error) {
	if !isIntegralType[T]() {
		return T(floatValue(m)), nil
	}
	if !IsIntegral(m) {
		return 0, magnitudeErrorf(opValue, ErrInexactIntegral)
	}
	v, ok := integerValue(m)
	if !ok {
		return 0, definitionErrorf(opValue, errValueOverflow)
	}
	out := T(v)
	if out < 0 || uint64(out) != v {
		return 0, definitionErrorf(opValue, errValueOverflow)
	}

	return out, nil
}

// Float64 evaluates m as float64. It never fails.
func (m Magnitude) Float64() float64 {
	return floatValue(m)
}

// Int64 evaluates m exactly as int64; see Value.
func (m Magnitude) Int64() (int64, error) {
	return Value[int64](m)
}

// isIntegralType reports whether T truncates division.
func isIntegralType[T Number]() bool {
	var one T = 1

	return one/2 == 0
}

// integerValue multiplies out a magnitude with only positive integer prime
// exponents. ok is false on uint64 overflow.
func integerValue(m Magnitude) (uint64, bool) {
	acc := uint64(1)
	for _, t := range m.terms {
		for k := t.Exp.Num(); k > 0; k-- {
			hi, lo := bits.Mul64(acc, t.Prime)
			if hi != 0 {
				return 0, false
			}
			acc = lo
		}
	}

	return acc, true
}

// floatValue evaluates m with big.Float accumulators for the positive and
// negative powers. When either side leaves the big.Float exponent range the
// value is recomputed in the log domain, which rounds to 0 or +Inf.
func floatValue(m Magnitude) float64 {
	num := newFloat(1)
	den := newFloat(1)
	for _, t := range m.terms {
		if !mulRationalPower(num, den, newFloat(0).SetUint64(t.Prime), t.Exp.Num(), t.Exp.Den()) {
			return logValue(m)
		}
	}
	for _, it := range m.irrationals {
		if !mulRationalPower(num, den, newFloat(0).SetFloat64(it.Atom.Value), it.Exp.Num(), it.Exp.Den()) {
			return logValue(m)
		}
	}
	f, _ := num.Quo(num, den).Float64()

	return f
}

// mulRationalPower applies base^(num/den): the integer part of the exponent
// is computed exactly at floatPrec into num (positive) or den (negative); the
// fractional remainder goes through math.Pow. It returns false once a value
// is no longer finite and non-zero.
func mulRationalPower(numAcc, denAcc, base *big.Float, num, den int64) bool {
	whole := num / den
	frac := num % den

	if whole != 0 {
		p := powBig(base, uabs(whole))
		target := numAcc
		if whole < 0 {
			target = denAcc
		}
		target.Mul(target, p)
		if !finiteNonZero(target) {
			return false
		}
	}
	if frac != 0 {
		b, _ := base.Float64()
		f := math.Pow(b, float64(frac)/float64(den))
		if f == 0 || math.IsInf(f, 0) {
			return false
		}
		numAcc.Mul(numAcc, newFloat(0).SetFloat64(f))
		if !finiteNonZero(numAcc) {
			return false
		}
	}

	return true
}

// logValue evaluates m as exp(Σ e·ln b).
func logValue(m Magnitude) float64 {
	sum := 0.0
	for _, t := range m.terms {
		sum += t.Exp.Float64() * math.Log(float64(t.Prime))
	}
	for _, it := range m.irrationals {
		sum += it.Exp.Float64() * math.Log(it.Atom.Value)
	}

	return math.Exp(sum)
}

// powBig returns base^n by square-and-multiply, stopping early once the
// running square is infinite.
func powBig(base *big.Float, n uint64) *big.Float {
	result := newFloat(1)
	sq := newFloat(0).Set(base)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, sq)
		}
		n >>= 1
		if n > 0 {
			if sq.IsInf() {
				return result.SetInf(false)
			}
			sq.Mul(sq, sq)
		}
	}

	return result
}

func newFloat(v int64) *big.Float {
	return new(big.Float).SetPrec(floatPrec).SetInt64(v)
}

func finiteNonZero(f *big.Float) bool {
	return !f.IsInf() && f.Sign() != 0
}

func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}
