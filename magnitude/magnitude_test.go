// SPDX-License-Identifier: MIT
package magnitude_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/ratio"
)

// mustMul is a test helper around magnitude.Multiply.
func mustMul(t *testing.T, a, b magnitude.Magnitude) magnitude.Magnitude {
	t.Helper()
	m, err := magnitude.Multiply(a, b)
	require.NoError(t, err)
	return m
}

func TestRational_FactorsAndCancels(t *testing.T) {
	m, err := magnitude.Rational(1000, 1)
	require.NoError(t, err)
	assert.Equal(t, []magnitude.Term{
		{Prime: 2, Exp: ratio.Int(3)},
		{Prime: 5, Exp: ratio.Int(3)},
	}, m.Terms())

	// 12/18 = 2/3: shared factors cancel.
	m, err = magnitude.Rational(12, 18)
	require.NoError(t, err)
	assert.Equal(t, []magnitude.Term{
		{Prime: 2, Exp: ratio.Int(1)},
		{Prime: 3, Exp: ratio.Int(-1)},
	}, m.Terms())

	// Sign folding.
	neg, err := magnitude.Rational(-12, -18)
	require.NoError(t, err)
	assert.True(t, neg.Equal(m))

	one, err := magnitude.Rational(7, 7)
	require.NoError(t, err)
	assert.True(t, one.IsOne())
	assert.True(t, one.Equal(magnitude.One))
}

func TestRational_Errors(t *testing.T) {
	_, err := magnitude.Rational(1, 0)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)

	_, err = magnitude.Rational(0, 5)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	_, err = magnitude.Rational(-3, 4)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	assert.Panics(t, func() { magnitude.MustRational(1, 0) })
}

func TestRational_ExtremeInputs(t *testing.T) {
	m, err := magnitude.Rational(math.MinInt64, -1)
	require.NoError(t, err)
	assert.Equal(t, []magnitude.Term{{Prime: 2, Exp: ratio.Int(63)}}, m.Terms())

	m, err = magnitude.Rational(math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Len(t, m.Terms(), 6)
	assert.InDelta(t, float64(math.MaxInt64), m.Float64(), 1)
}

func TestRational_ReciprocalIsIdentity(t *testing.T) {
	pairs := [][2]int64{{1, 1}, {2, 3}, {1000, 1}, {45359237, 100000000}, {9144, 10000}, {97, 91}, {1 << 40, 3 * 5 * 7}}
	for _, pq := range pairs {
		p, q := pq[0], pq[1]
		a := magnitude.MustRational(p, q)
		b := magnitude.MustRational(q, p)
		assert.True(t, mustMul(t, a, b).IsOne(), "%d/%d · %d/%d", p, q, q, p)
		assert.InDelta(t, float64(p)/float64(q), a.Float64(), 1e-15*float64(p)/float64(q))
	}
}

func TestInvertAndDivide(t *testing.T) {
	samples := []magnitude.Magnitude{
		magnitude.One,
		magnitude.MustInt(1000),
		magnitude.MustRational(3, 2),
		mustMul(t, magnitude.MustRational(1, 180), magnitude.MustIrrational(magnitude.Pi)),
	}
	for _, m := range samples {
		assert.True(t, magnitude.Invert(magnitude.Invert(m)).Equal(m), "invert twice: %s", m)

		q, err := magnitude.Divide(m, m)
		require.NoError(t, err)
		assert.True(t, q.IsOne(), "m/m for %s", m)
	}
}

func TestMultiply_CommutativeAssociative(t *testing.T) {
	a := magnitude.MustRational(12, 35)
	b := mustMul(t, magnitude.MustRational(49, 8), magnitude.MustIrrational(magnitude.Pi))
	c := magnitude.MustRational(5, 3)

	assert.True(t, mustMul(t, a, b).Equal(mustMul(t, b, a)))
	assert.True(t, mustMul(t, mustMul(t, a, b), c).Equal(mustMul(t, a, mustMul(t, b, c))))

	// 12/35 · 49/8 · 5/3 = 7/2 · π
	want := mustMul(t, magnitude.MustRational(7, 2), magnitude.MustIrrational(magnitude.Pi))
	assert.True(t, mustMul(t, mustMul(t, a, b), c).Equal(want))
}

func TestMultiply_AtomConflict(t *testing.T) {
	fake := magnitude.MustIrrational(magnitude.Atom{ID: "pi", Value: 3})
	_, err := magnitude.Multiply(magnitude.MustIrrational(magnitude.Pi), fake)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	// Distinct IDs never combine.
	e := magnitude.MustIrrational(magnitude.Atom{ID: "e", Value: math.E})
	m := mustMul(t, magnitude.MustIrrational(magnitude.Pi), e)
	require.Len(t, m.Irrationals(), 2)
	assert.Equal(t, "e", m.Irrationals()[0].Atom.ID)
	assert.Equal(t, "pi", m.Irrationals()[1].Atom.ID)
}

func TestIrrational_Validation(t *testing.T) {
	_, err := magnitude.Irrational(magnitude.Atom{ID: "", Value: 2})
	assert.ErrorIs(t, err, magnitude.ErrDefinition)
	_, err = magnitude.Irrational(magnitude.Atom{ID: "x", Value: -1})
	assert.ErrorIs(t, err, magnitude.ErrDefinition)
	_, err = magnitude.Irrational(magnitude.Atom{ID: "x", Value: math.NaN()})
	assert.ErrorIs(t, err, magnitude.ErrDefinition)
}

func TestPower(t *testing.T) {
	kilo := magnitude.MustInt(1000)
	mega, err := magnitude.Power(kilo, 2)
	require.NoError(t, err)
	assert.True(t, mega.Equal(magnitude.MustInt(1000000)))

	milli, err := magnitude.Power(kilo, -1)
	require.NoError(t, err)
	assert.True(t, milli.Equal(magnitude.MustRational(1, 1000)))

	zero, err := magnitude.Power(kilo, 0)
	require.NoError(t, err)
	assert.True(t, zero.IsOne())

	huge, err := magnitude.Power(kilo, math.MaxInt64/4)
	require.NoError(t, err)
	_, err = magnitude.Power(huge, 3)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	_, err = magnitude.Power(kilo, math.MinInt64)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	p, err := magnitude.PowerOf(10, -3)
	require.NoError(t, err)
	assert.True(t, p.Equal(milli))
}

func TestRoot(t *testing.T) {
	r, err := magnitude.Root(magnitude.MustInt(1000000), 3)
	require.NoError(t, err)
	assert.True(t, r.Equal(magnitude.MustInt(100)))

	r, err = magnitude.Root(magnitude.MustRational(4, 9), 2)
	require.NoError(t, err)
	assert.True(t, r.Equal(magnitude.MustRational(2, 3)))

	_, err = magnitude.Root(magnitude.MustInt(2), 2)
	assert.ErrorIs(t, err, magnitude.ErrDefinition, "√2 is not a ratio of integers")

	_, err = magnitude.Root(magnitude.MustInt(4), 0)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	// Fractional prime exponents are kept when n divides their numerator.
	sqrt2, err := magnitude.Sqrt(magnitude.MustInt(2))
	require.NoError(t, err)
	r, err = magnitude.Root(sqrt2, 1)
	require.NoError(t, err)
	assert.True(t, r.Equal(sqrt2))

	twoThreeHalves, err := magnitude.Pow(magnitude.MustInt(2), 3, 2)
	require.NoError(t, err)
	r, err = magnitude.Root(twoThreeHalves, 3)
	require.NoError(t, err)
	assert.True(t, r.Equal(sqrt2), "got %s", r)

	_, err = magnitude.Root(sqrt2, 2)
	assert.ErrorIs(t, err, magnitude.ErrDefinition, "2^(1/4) needs a new fractional part")

	// Irrational exponents divide symbolically.
	piSq, err := magnitude.Power(magnitude.MustIrrational(magnitude.Pi), 2)
	require.NoError(t, err)
	r, err = magnitude.Root(mustMul(t, piSq, magnitude.MustInt(4)), 2)
	require.NoError(t, err)
	assert.True(t, r.Equal(mustMul(t, magnitude.MustIrrational(magnitude.Pi), magnitude.MustInt(2))))

	r, err = magnitude.Root(magnitude.MustIrrational(magnitude.Pi), 2)
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(1, 2), r.Irrationals()[0].Exp)
}

func TestPow_RationalExponent(t *testing.T) {
	sqrt2, err := magnitude.Sqrt(magnitude.MustInt(2))
	require.NoError(t, err)
	assert.False(t, magnitude.IsRational(sqrt2))
	assert.InDelta(t, math.Sqrt2, sqrt2.Float64(), 1e-15)

	two, err := magnitude.Power(sqrt2, 2)
	require.NoError(t, err)
	assert.True(t, two.Equal(magnitude.MustInt(2)))

	_, err = magnitude.Pow(sqrt2, 1, 0)
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	p, err := magnitude.Pow(magnitude.MustInt(8), 2, 3)
	require.NoError(t, err)
	assert.True(t, p.Equal(magnitude.MustInt(4)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1", magnitude.One.String())
	assert.Equal(t, "1000", magnitude.MustInt(1000).String())
	assert.Equal(t, "3/2", magnitude.MustRational(3, 2).String())
	deg := mustMul(t, magnitude.MustRational(1, 180), magnitude.MustIrrational(magnitude.Pi))
	assert.Equal(t, "2^-2·3^-2·5^-1·pi", deg.String())
	sqrt2, err := magnitude.Sqrt(magnitude.MustInt(2))
	require.NoError(t, err)
	assert.Equal(t, "2^(1/2)", sqrt2.String())
}

func TestTermsAreCopies(t *testing.T) {
	m := magnitude.MustInt(1000)
	ts := m.Terms()
	ts[0].Prime = 3
	assert.Equal(t, uint64(2), m.Terms()[0].Prime, "mutating a copy must not leak")
}
