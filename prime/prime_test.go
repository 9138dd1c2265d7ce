// SPDX-License-Identifier: MIT
package prime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvunits/prime"
)

// naiveFirstFactor is the reference trial division used to cross-check the wheel.
func naiveFirstFactor(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return d
		}
	}
	return n
}

func TestFirstFactor_Scenarios(t *testing.T) {
	assert.Equal(t, uint64(97), prime.FirstFactor(97))
	assert.Equal(t, uint64(7), prime.FirstFactor(91))
	assert.Equal(t, uint64(0), prime.FirstFactor(0))
	assert.Equal(t, uint64(1), prime.FirstFactor(1))
	assert.Equal(t, uint64(2), prime.FirstFactor(1024))
	assert.Equal(t, uint64(13), prime.FirstFactor(169))
}

func TestFirstFactor_MatchesTrialDivision(t *testing.T) {
	for n := uint64(0); n < 20000; n++ {
		if got, want := prime.FirstFactor(n), naiveFirstFactor(n); got != want {
			t.Fatalf("FirstFactor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestFirstFactor_BeyondFirstWheel(t *testing.T) {
	// Factors above WheelSize exercise the shifted residues.
	p, q := uint64(2311), uint64(4621) // both prime, > 2310
	assert.Equal(t, p, prime.FirstFactor(p*q))
	assert.Equal(t, uint64(2347), prime.FirstFactor(2347*2347))
	assert.Equal(t, uint64(65537), prime.FirstFactor(65537*65537))
}

func TestFirstFactor_LargeValues(t *testing.T) {
	const mersenne61 = uint64(1)<<61 - 1
	assert.Equal(t, mersenne61, prime.FirstFactor(mersenne61))

	const maxUint64Prime = uint64(18446744073709551557)
	assert.Equal(t, maxUint64Prime, prime.FirstFactor(maxUint64Prime))

	// 2^64-1 = 3·5·17·257·641·65537·6700417
	assert.Equal(t, uint64(3), prime.FirstFactor(^uint64(0)))

	// 2^63-1 = 7²·73·127·337·92737·649657
	assert.Equal(t, uint64(7), prime.FirstFactor(1<<63-1))
}

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 2309, 2311, 1000003, 2147483647}
	for _, p := range primes {
		assert.True(t, prime.IsPrime(p), "%d should be prime", p)
	}
	composites := []uint64{0, 1, 4, 9, 2310, 561, 1105, 3215031751, 1000001}
	for _, c := range composites {
		assert.False(t, prime.IsPrime(c), "%d should not be prime", c)
	}
}

func TestFactorize(t *testing.T) {
	assert.Nil(t, prime.Factorize(1))
	assert.Equal(t, []prime.Power{{Prime: 2, Exponent: 3}, {Prime: 3, Exponent: 2}, {Prime: 5, Exponent: 1}}, prime.Factorize(360))
	assert.Equal(t, []prime.Power{{Prime: 2, Exponent: 6}, {Prime: 5, Exponent: 6}}, prime.Factorize(1000000))
	assert.Equal(t, []prime.Power{{Prime: 7, Exponent: 2}, {Prime: 73, Exponent: 1}, {Prime: 127, Exponent: 1},
		{Prime: 337, Exponent: 1}, {Prime: 92737, Exponent: 1}, {Prime: 649657, Exponent: 1}}, prime.Factorize(1<<63-1))
}
