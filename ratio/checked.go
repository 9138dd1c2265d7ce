// SPDX-License-Identifier: MIT

package ratio

import (
	"math"
	"math/bits"
)

// Checked integer kernels. Results equal to math.MinInt64 are reported as
// overflow so that every stored value stays negatable.

// abs returns |x| as uint64; valid for every int64 including MinInt64.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

// gcd is Euclid on unsigned values; gcd(0, b) == b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}

// mulInt64 returns a*b and whether it fits in (MinInt64, MaxInt64].
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(abs(a), abs(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	p := int64(lo)
	if (a < 0) != (b < 0) {
		p = -p
	}

	return p, true
}

// addInt64 returns a+b and whether it fits in (MinInt64, MaxInt64].
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) || s == math.MinInt64 {
		return 0, false
	}

	return s, true
}

// cmp128 compares two unsigned 128-bit values (hi, lo).
func cmp128(ah, al, bh, bl uint64) int {
	switch {
	case ah < bh:
		return -1
	case ah > bh:
		return 1
	case al < bl:
		return -1
	case al > bl:
		return 1
	default:
		return 0
	}
}

// MulInt64 is the exported checked product used by the magnitude evaluator.
// ok is false when a*b does not fit.
func MulInt64(a, b int64) (p int64, ok bool) {
	return mulInt64(a, b)
}

// AddInt64 is the exported checked sum. ok is false when a+b does not fit.
func AddInt64(a, b int64) (s int64, ok bool) {
	return addInt64(a, b)
}
