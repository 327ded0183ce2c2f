// SPDX-License-Identifier: MIT
// Package numtheory - package-level facades over the Default sieve.
// Each facade delegates 1:1 to the Sieve method of the same name.

package numtheory

// PrimesUpTo100 lists the 25 primes below 100 (reference fixture).
var PrimesUpTo100 = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97,
}

// PopulateUpTo warms the Default sieve up to n.
func PopulateUpTo(n int64) { Default.PopulateUpTo(n) }

// Reset returns the Default sieve to its seed state.
func Reset() { Default.Reset() }

// IsPrime reports whether n is prime using the Default sieve.
func IsPrime(n int64) (bool, error) { return Default.IsPrime(n) }

// Factorize returns the prime factorization of n using the Default sieve.
//
//	f, _ := numtheory.Factorize(98) // map[2:1 7:2]
func Factorize(n int64) (Factorization, error) { return Default.Factorize(n) }

// GCD returns the gcd of ns using the Default sieve.
func GCD(ns ...int64) (int64, error) { return Default.GCD(ns...) }

// Sigma returns the divisor sum of n using the Default sieve.
func Sigma(n int64) (int64, error) { return Default.Sigma(n) }

// ProperDivisorSum returns σ(n) − n using the Default sieve.
func ProperDivisorSum(n int64) (int64, error) { return Default.ProperDivisorSum(n) }

// SquareFree splits n ≥ 1 into n = root² · rest with rest square-free.
// Errors: ErrInvalidInput when n is outside [1, ceiling].
func SquareFree(n int64) (root, rest int64, err error) {
	if n < 1 {
		return 0, 0, ntErrorf(opFactorize, ErrInvalidInput)
	}
	f, err := Default.Factorize(n)
	if err != nil {
		return 0, 0, err
	}
	root, rest = 1, 1
	for p, e := range f {
		root *= ipow(p, e/2)
		if e%2 == 1 {
			rest *= p
		}
	}

	return root, rest, nil
}
