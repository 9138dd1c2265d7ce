// SPDX-License-Identifier: MIT

package prime

// Power is one prime raised to its multiplicity in a factorization.
type Power struct {
	Prime    uint64
	Exponent int
}

// Factorize returns the prime factorization of n in ascending prime order.
// Factorize(0) and Factorize(1) return nil.
func Factorize(n uint64) []Power {
	if n <= 1 {
		return nil
	}

	var out []Power
	for n > 1 {
		p := FirstFactor(n)
		k := 0
		for n%p == 0 {
			n /= p
			k++
		}
		out = append(out, Power{Prime: p, Exponent: k})
	}

	return out
}
