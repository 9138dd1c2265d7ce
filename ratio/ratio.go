// SPDX-License-Identifier: MIT

package ratio

import (
	"math"
	"math/bits"
	"strconv"
)

// Ratio is an exact rational number num/den in lowest terms with den > 0.
// Use New to build one; the zero value means 0.
type Ratio struct {
	num int64
	den int64 // 0 only in the zero value, read as 1
}

// Operation tags used to prefix errors.
const (
	opNew = "New"
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Ratio{num: 0, den: 1}
	One  = Ratio{num: 1, den: 1}
)

// New returns num/den reduced to lowest terms with a positive denominator.
//
// Errors:
//   - ErrZeroDenominator if den == 0.
//   - ErrOverflow if num or den is math.MinInt64.
func New(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, ratioErrorf(opNew, ErrZeroDenominator)
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Ratio{}, ratioErrorf(opNew, ErrOverflow)
	}

	return reduce(num, den), nil
}

// Int returns n/1. It panics if n is math.MinInt64.
func Int(n int64) Ratio {
	return MustNew(n, 1)
}

// MustNew is like New but panics on error. It is meant for constants.
func MustNew(num, den int64) Ratio {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// reduce normalizes sign and divides out the gcd. Inputs are known to be
// non-MinInt64 and den != 0.
func reduce(num, den int64) Ratio {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Ratio{num: 0, den: 1}
	}
	g := int64(gcd(abs(num), uint64(den)))

	return Ratio{num: num / g, den: den / g}
}

// Num returns the numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the (positive) denominator.
func (r Ratio) Den() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// IsZero reports whether r == 0.
func (r Ratio) IsZero() bool { return r.num == 0 }

// IsInt reports whether r has denominator 1.
func (r Ratio) IsInt() bool { return r.Den() == 1 }

// Sign returns -1, 0 or +1.
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -r. It cannot overflow because MinInt64 is never stored.
func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, den: r.Den()}
}

// Equal reports whether r and s denote the same rational.
func (r Ratio) Equal(s Ratio) bool {
	return r.num == s.num && r.Den() == s.Den()
}

// Cmp compares r and s and returns -1, 0 or +1. It is exact: the cross
// products are compared as 128-bit values.
func (r Ratio) Cmp(s Ratio) int {
	if r.Equal(s) {
		return 0
	}
	if r.Sign() != s.Sign() {
		if r.Sign() < s.Sign() {
			return -1
		}
		return 1
	}
	// Same sign: compare |r.num|*s.den against |s.num|*r.den.
	lh, ll := bits.Mul64(abs(r.num), uint64(s.Den()))
	rh, rl := bits.Mul64(abs(s.num), uint64(r.Den()))
	c := cmp128(lh, ll, rh, rl)
	if r.Sign() < 0 {
		c = -c
	}

	return c
}

// Add returns r + s.
func (r Ratio) Add(s Ratio) (Ratio, error) {
	out, err := addSub(r, s, false)
	if err != nil {
		return Ratio{}, ratioErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns r - s.
func (r Ratio) Sub(s Ratio) (Ratio, error) {
	out, err := addSub(r, s, true)
	if err != nil {
		return Ratio{}, ratioErrorf(opSub, err)
	}

	return out, nil
}

// Mul returns r * s.
func (r Ratio) Mul(s Ratio) (Ratio, error) {
	if r.IsZero() || s.IsZero() {
		return Zero, nil
	}
	// Cross-reduce first to keep intermediates small.
	g1 := int64(gcd(abs(r.num), uint64(s.Den())))
	g2 := int64(gcd(abs(s.num), uint64(r.Den())))
	num, ok := mulInt64(r.num/g1, s.num/g2)
	if !ok {
		return Ratio{}, ratioErrorf(opMul, ErrOverflow)
	}
	den, ok := mulInt64(r.Den()/g2, s.Den()/g1)
	if !ok {
		return Ratio{}, ratioErrorf(opMul, ErrOverflow)
	}

	return reduce(num, den), nil
}

// Div returns r / s.
func (r Ratio) Div(s Ratio) (Ratio, error) {
	if s.IsZero() {
		return Ratio{}, ratioErrorf(opDiv, ErrZeroDenominator)
	}
	out, err := r.Mul(Ratio{num: s.Den(), den: s.num}.normalized())
	if err != nil {
		return Ratio{}, ratioErrorf(opDiv, err)
	}

	return out, nil
}

// MulInt returns r * n.
func (r Ratio) MulInt(n int64) (Ratio, error) {
	if n == math.MinInt64 {
		return Ratio{}, ratioErrorf(opMul, ErrOverflow)
	}

	return r.Mul(Ratio{num: n, den: 1})
}

// DivInt returns r / n.
func (r Ratio) DivInt(n int64) (Ratio, error) {
	if n == math.MinInt64 {
		return Ratio{}, ratioErrorf(opDiv, ErrOverflow)
	}

	return r.Div(Ratio{num: n, den: 1})
}

// Float64 returns the nearest float64.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders "n" for integers and "n/d" otherwise.
func (r Ratio) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// normalized moves a negative denominator's sign into the numerator.
func (r Ratio) normalized() Ratio {
	if r.den < 0 {
		return Ratio{num: -r.num, den: -r.den}
	}

	return r
}

// addSub computes r ± s over the lcm of the denominators.
func addSub(r, s Ratio, negate bool) (Ratio, error) {
	sn := s.num
	if negate {
		sn = -sn
	}
	rd, sd := r.Den(), s.Den()
	g := int64(gcd(uint64(rd), uint64(sd)))
	// lcm = rd/g * sd
	left, ok := mulInt64(r.num, sd/g)
	if !ok {
		return Ratio{}, ErrOverflow
	}
	right, ok := mulInt64(sn, rd/g)
	if !ok {
		return Ratio{}, ErrOverflow
	}
	num, ok := addInt64(left, right)
	if !ok {
		return Ratio{}, ErrOverflow
	}
	den, ok := mulInt64(rd/g, sd)
	if !ok {
		return Ratio{}, ErrOverflow
	}

	return reduce(num, den), nil
}
