// SPDX-License-Identifier: MIT

package prime

import "math/bits"

// witnesses is a base set for which Miller–Rabin is exact on all n < 2^64.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// isProbablePrime runs a deterministic Miller–Rabin test. It expects n to be
// odd and > 3; callers trial-divide by the basis first.
func isProbablePrime(n uint64) bool {
	d := n - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	for _, a := range witnesses {
		if a%n == 0 {
			continue
		}
		x := powMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for i := 1; i < s; i++ {
			x = mulMod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// mulMod returns a*b mod m using a 128-bit product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)

	return rem
}

// powMod returns base^exp mod m by square-and-multiply.
func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}

	return result
}
