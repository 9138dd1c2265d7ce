// SPDX-License-Identifier: MIT

package prime

import "math/bits"

// Wheel parameters.
const (
	// BasisSize is the number of leading primes used as the wheel basis.
	BasisSize = 5

	// WheelSize is the product of the basis primes (2·3·5·7·11).
	WheelSize = 2310

	// numCoprimes is Euler's phi(WheelSize) = 1·2·4·6·10.
	numCoprimes = 480
)

// basis holds the first BasisSize primes.
var basis = [BasisSize]uint64{2, 3, 5, 7, 11}

// coprimes holds, in ascending order, every residue r in [1, WheelSize) that
// is coprime with all basis primes. coprimes[0] == 1.
var coprimes = buildCoprimes()

func buildCoprimes() [numCoprimes]uint64 {
	var out [numCoprimes]uint64
	i := 0
	for r := uint64(1); r < WheelSize; r++ {
		if isCoprimeWithBasis(r) {
			out[i] = r
			i++
		}
	}
	if i != numCoprimes {
		panic("prime: wheel residue table has unexpected size")
	}

	return out
}

func isCoprimeWithBasis(n uint64) bool {
	for _, p := range basis {
		if n%p == 0 {
			return false
		}
	}

	return true
}

// FirstFactor returns the smallest prime factor of n. It returns n itself
// when n <= 1 or n is prime.
//
// Stages:
//  1. trial-divide by the basis primes;
//  2. short-circuit on a Miller–Rabin prime;
//  3. try the coprime residues of the first wheel (skipping 1);
//  4. try residues shifted by WheelSize, 2·WheelSize, … while candidate² <= n.
//
// Complexity: O(√n · φ(W)/W) divisions in the worst case (a semiprime with two
// large factors); O(1) for primes.
func FirstFactor(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	for _, p := range basis {
		if n%p == 0 {
			return p
		}
	}
	if isProbablePrime(n) {
		return n
	}
	for _, r := range coprimes[1:] {
		if f, done := tryFactor(n, r); done {
			return f
		}
	}
	for wheel := uint64(WheelSize); wheel < n; wheel += WheelSize {
		for _, r := range coprimes {
			if f, done := tryFactor(n, wheel+r); done {
				return f
			}
		}
		// A failed candidate can only be smaller than √n, so the loop ends
		// through tryFactor; the guard keeps wheel from wrapping.
		if wheel > maxWheelStart {
			break
		}
	}

	return n
}

// maxWheelStart bounds the outer wheel loop so that wheel+r cannot overflow.
const maxWheelStart = ^uint64(0) - 2*WheelSize

// tryFactor reports (candidate, true) when candidate divides n, and (n, true)
// when candidate exceeds √n, meaning n is prime. Otherwise done is false.
func tryFactor(n, candidate uint64) (factor uint64, done bool) {
	hi, lo := bits.Mul64(candidate, candidate)
	if hi != 0 || lo > n {
		return n, true
	}
	if n%candidate == 0 {
		return candidate, true
	}

	return 0, false
}

// IsPrime reports whether n is prime: n > 1 and FirstFactor(n) == n.
func IsPrime(n uint64) bool {
	return n > 1 && FirstFactor(n) == n
}
