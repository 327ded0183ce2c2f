// SPDX-License-Identifier: MIT

// Package numtheory is the number-theory kernel behind the exact-arithmetic
// tower: primality, prime factorization, gcd of a list and the divisor sum.
//
// What & Why:
//
//	Every routine is trial-division based and reads from an incrementally
//	grown table of known primes (a Sieve). The table is seeded with {2} and a
//	"checked up to" watermark; each call extends it only as far as the
//	square root of its input requires, so repeated factorizations across a
//	session are amortized cheap.
//
// Lifecycle:
//
//   - Default is the process-wide Sieve used by the package-level helpers.
//   - The table only grows; entries are never invalidated.
//   - Reset returns a Sieve to its seed state (test isolation, benchmarks).
//   - Snapshot exposes a copy of the table for inspection.
//   - All Sieve methods are safe for concurrent use (single mutex).
//
// Capability limit:
//
//	Inputs must satisfy 0 ≤ n ≤ MaxInput (1e15). Larger values fail with
//	ErrInvalidInput; trial division is unsuitable beyond that scale.
//
// Complexity:
//
//	Factorize(n) is O(√n / ln √n) divisions once the table is warm, plus the
//	one-time O(√n · π(n^¼)) cost of growing the table.
package numtheory
