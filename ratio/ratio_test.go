// SPDX-License-Identifier: MIT
package ratio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/ratio"
)

func TestNew_ReducesAndNormalizesSign(t *testing.T) {
	cases := []struct {
		num, den         int64
		wantNum, wantDen int64
	}{
		{6, 4, 3, 2},
		{-6, 4, -3, 2},
		{6, -4, -3, 2},
		{-6, -4, 3, 2},
		{0, -9, 0, 1},
		{7, 1, 7, 1},
	}
	for _, tc := range cases {
		r, err := ratio.New(tc.num, tc.den)
		require.NoError(t, err)
		assert.Equal(t, tc.wantNum, r.Num(), "num of %d/%d", tc.num, tc.den)
		assert.Equal(t, tc.wantDen, r.Den(), "den of %d/%d", tc.num, tc.den)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := ratio.New(1, 0)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)

	_, err = ratio.New(math.MinInt64, 1)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	_, err = ratio.New(1, math.MinInt64)
	assert.ErrorIs(t, err, ratio.ErrOverflow)
}

func TestZeroValue(t *testing.T) {
	var r ratio.Ratio
	assert.True(t, r.IsZero())
	assert.Equal(t, int64(1), r.Den())
	assert.True(t, r.Equal(ratio.Zero))
	assert.Equal(t, "0", r.String())
}

func TestArithmetic(t *testing.T) {
	half := ratio.MustNew(1, 2)
	third := ratio.MustNew(1, 3)

	sum, err := half.Add(third)
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(5, 6), sum)

	diff, err := half.Sub(third)
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(1, 6), diff)

	prod, err := half.Mul(third)
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(1, 6), prod)

	quo, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(3, 2), quo)

	neg, err := half.Div(ratio.Int(-2))
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(-1, 4), neg)

	_, err = half.Div(ratio.Zero)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)

	back, err := sum.Sub(sum)
	require.NoError(t, err)
	assert.True(t, back.IsZero())
	assert.Equal(t, ratio.Zero, back)
}

func TestOverflowIsRejected(t *testing.T) {
	big := ratio.Int(math.MaxInt64)

	_, err := big.Add(ratio.One)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	_, err = big.Mul(ratio.Int(2))
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	_, err = ratio.Int(-math.MaxInt64).Sub(ratio.One)
	assert.ErrorIs(t, err, ratio.ErrOverflow, "MinInt64 must not be produced")

	// Denominator growth is checked too.
	tiny := ratio.MustNew(1, math.MaxInt64)
	_, err = tiny.Mul(ratio.MustNew(1, 3))
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	// Cross-reduction keeps products that cancel representable.
	r, err := ratio.MustNew(math.MaxInt64, 3).Mul(ratio.MustNew(3, math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, ratio.One, r)
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, ratio.MustNew(1, 3).Cmp(ratio.MustNew(1, 2)))
	assert.Equal(t, 1, ratio.MustNew(-1, 3).Cmp(ratio.MustNew(-1, 2)))
	assert.Equal(t, 0, ratio.MustNew(2, 4).Cmp(ratio.MustNew(1, 2)))
	assert.Equal(t, -1, ratio.Int(-5).Cmp(ratio.Zero))
	// Cross products beyond int64 are still compared exactly.
	a := ratio.MustNew(math.MaxInt64-1, math.MaxInt64)
	b := ratio.MustNew(math.MaxInt64-2, math.MaxInt64-1)
	assert.Equal(t, 1, a.Cmp(b))
}

func TestString(t *testing.T) {
	assert.Equal(t, "-3/2", ratio.MustNew(3, -2).String())
	assert.Equal(t, "4", ratio.Int(4).String())
	assert.InDelta(t, 1.5, ratio.MustNew(3, 2).Float64(), 1e-15)
}

func TestCheckedKernels(t *testing.T) {
	_, ok := ratio.MulInt64(math.MaxInt64, 2)
	assert.False(t, ok)
	p, ok := ratio.MulInt64(-4, 5)
	assert.True(t, ok)
	assert.Equal(t, int64(-20), p)

	_, ok = ratio.AddInt64(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = ratio.AddInt64(-math.MaxInt64, -1)
	assert.False(t, ok)
}
