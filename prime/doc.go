// SPDX-License-Identifier: MIT

// Package prime factors 64-bit integers with a wheel factorizer.
//
// What is wheel factorization?
//
//	Trial division wastes most of its divisions on candidates that share a
//	factor with a small prime. A "wheel" built from the first K primes (the
//	basis) lists the residues that are coprime with all of them; only those
//	residues, shifted by successive multiples of the wheel size, need to be
//	tried.
//
//	  K | wheel size | coprime residues | candidates tried
//	  --+------------+------------------+-----------------
//	  1 |          2 |                1 |           50.0 %
//	  2 |          6 |                2 |           33.3 %
//	  3 |         30 |                8 |           26.7 %
//	  4 |        210 |               48 |           22.9 %
//	  5 |       2310 |              480 |           20.8 %
//
// This package uses K = 5. The residue table is computed once at init and is
// shared by every call; FirstFactor performs no heap allocation.
//
// Large primes are detected up front with a deterministic Miller–Rabin test
// (exact for every uint64), so FirstFactor on a 19-digit prime returns
// immediately instead of walking the wheel up to its square root.
//
// Usage:
//
//	prime.FirstFactor(91)  // 7
//	prime.IsPrime(97)      // true
//	prime.Factorize(360)   // [{2 3} {3 2} {5 1}]
package prime
