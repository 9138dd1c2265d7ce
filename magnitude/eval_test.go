// SPDX-License-Identifier: MIT
package magnitude_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/magnitude"
)

func TestValue_Integral(t *testing.T) {
	v, err := magnitude.Value[int64](magnitude.MustInt(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)

	u, err := magnitude.Value[uint8](magnitude.MustInt(255))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u)

	_, err = magnitude.Value[uint8](magnitude.MustInt(256))
	assert.ErrorIs(t, err, magnitude.ErrDefinition, "does not fit uint8")

	_, err = magnitude.Value[int8](magnitude.MustInt(128))
	assert.ErrorIs(t, err, magnitude.ErrDefinition, "does not fit int8")

	one, err := magnitude.Value[int](magnitude.One)
	require.NoError(t, err)
	assert.Equal(t, 1, one)
}

func TestValue_InexactIntegral(t *testing.T) {
	m := magnitude.MustRational(3, 2)

	_, err := magnitude.Value[int64](m)
	assert.ErrorIs(t, err, magnitude.ErrInexactIntegral)

	f, err := magnitude.Value[float64](m)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	_, err = magnitude.Value[int32](magnitude.MustIrrational(magnitude.Pi))
	assert.ErrorIs(t, err, magnitude.ErrInexactIntegral)
}

func TestValue_Floating(t *testing.T) {
	deg, err := magnitude.Multiply(magnitude.MustRational(1, 180), magnitude.MustIrrational(magnitude.Pi))
	require.NoError(t, err)
	f, err := magnitude.Value[float64](deg)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/180, f, 1e-17)

	f32, err := magnitude.Value[float32](magnitude.MustRational(1, 3))
	require.NoError(t, err)
	assert.InDelta(t, float32(1.0/3.0), f32, 1e-7)

	assert.InEpsilon(t, 1e-30, magnitude.MustPowerOf(10, -30).Float64(), 1e-15)
	assert.Equal(t, 1e30, magnitude.MustPowerOf(10, 30).Float64())
}

func TestValue_FloatingExtremes(t *testing.T) {
	huge := magnitude.MustPowerOf(10, 400)
	assert.True(t, math.IsInf(huge.Float64(), 1))
	assert.Equal(t, 0.0, magnitude.Invert(huge).Float64())

	// Cancellation happens exactly before evaluation.
	big := magnitude.MustPowerOf(2, 1<<40)
	q, err := magnitude.Divide(big, magnitude.MustPowerOf(2, 1<<40-1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, q.Float64())

	// Beyond big.Float range in both directions: log-domain fallback.
	mixed, err := magnitude.Multiply(magnitude.MustPowerOf(2, 1<<40), magnitude.MustPowerOf(3, -(1 << 40)))
	require.NoError(t, err)
	assert.Equal(t, 0.0, mixed.Float64())
}

func TestValue_Int64Overflow(t *testing.T) {
	_, err := magnitude.MustPowerOf(10, 19).Int64()
	assert.ErrorIs(t, err, magnitude.ErrDefinition)

	v, err := magnitude.MustPowerOf(10, 18).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1e18), v)
}

func TestIsRationalIntegral(t *testing.T) {
	assert.True(t, magnitude.IsRational(magnitude.MustRational(1, 3)))
	assert.False(t, magnitude.IsIntegral(magnitude.MustRational(1, 3)))
	assert.True(t, magnitude.IsIntegral(magnitude.MustInt(12)))
	assert.True(t, magnitude.IsIntegral(magnitude.One))
	assert.False(t, magnitude.IsRational(magnitude.MustIrrational(magnitude.Pi)))
}

func TestRatioNumeratorDenominator(t *testing.T) {
	m := magnitude.MustRational(45359237, 100000000)
	num, den, err := magnitude.Ratio(m)
	require.NoError(t, err)
	assert.Equal(t, int64(45359237), num)
	assert.Equal(t, int64(100000000), den)

	assert.True(t, magnitude.Numerator(m).Equal(magnitude.MustInt(45359237)))
	assert.True(t, magnitude.Denominator(m).Equal(magnitude.MustInt(100000000)))

	_, _, err = magnitude.Ratio(magnitude.MustIrrational(magnitude.Pi))
	assert.ErrorIs(t, err, magnitude.ErrNotRational)

	_, _, err = magnitude.Ratio(magnitude.MustPowerOf(10, -20))
	assert.ErrorIs(t, err, magnitude.ErrDefinition)
}
