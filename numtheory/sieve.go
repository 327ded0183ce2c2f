// SPDX-License-Identifier: MIT

package numtheory

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Factorization maps each prime divisor to its exponent.
// The zero-length factorization represents 1 (and, by convention, 0).
type Factorization map[int64]int

// Primes returns the prime divisors in ascending order.
// Complexity: O(k log k) for k distinct primes.
func (f Factorization) Primes() []int64 {
	out := make([]int64, 0, len(f))
	for p := range f {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Value multiplies the factorization back out.
func (f Factorization) Value() int64 {
	result := int64(1)
	for p, e := range f {
		for i := 0; i < e; i++ {
			result *= p
		}
	}

	return result
}

// Sieve is an append-only table of known primes with a watermark recording
// how far primality has been decided. The zero value is not usable; call
// NewSieve.
type Sieve struct {
	mu      sync.Mutex
	primes  []int64 // ascending, seeded with 2
	checked int64   // every integer ≤ checked has been classified
	opts    Options
}

// NewSieve returns a Sieve in its seed state ({2}, watermark 2).
func NewSieve(opts ...Option) *Sieve {
	s := &Sieve{opts: gatherOptions(opts...)}
	s.resetLocked()

	return s
}

// Default is the process-wide Sieve used by the package-level helpers.
var Default = NewSieve()

// Ceiling reports the inclusive input bound of s.
func (s *Sieve) Ceiling() int64 { return s.opts.ceiling }

// Reset drops every discovered prime and returns s to its seed state.
func (s *Sieve) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Sieve) resetLocked() {
	s.primes = []int64{2}
	s.checked = 2
}

// Snapshot returns a copy of the known primes and the current watermark.
func (s *Sieve) Snapshot() ([]int64, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.primes))
	copy(out, s.primes)

	return out, s.checked
}

// validate enforces 0 ≤ n ≤ ceiling.
func (s *Sieve) validate(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidInput, n)
	}
	if n > s.opts.ceiling {
		return fmt.Errorf("%w: %d exceeds ceiling %d", ErrInvalidInput, n, s.opts.ceiling)
	}

	return nil
}

// PopulateUpTo classifies every integer up to n, appending new primes.
// Callers expecting large inputs may warm the table explicitly.
// Values at or below the watermark are a no-op.
func (s *Sieve) PopulateUpTo(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.populateLocked(n)
}

// populateLocked: each candidate above the watermark is trial-divided by the
// known primes up to its square root.
func (s *Sieve) populateLocked(n int64) {
	for s.checked < n {
		s.checked++
		candidate := s.checked
		prime := true
		for _, p := range s.primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			s.primes = append(s.primes, candidate)
		}
	}
}

// IsPrime reports whether n is prime.
// Errors: ErrInvalidInput when n is outside [0, ceiling].
func (s *Sieve) IsPrime(n int64) (bool, error) {
	if err := s.validate(n); err != nil {
		return false, ntErrorf(opIsPrime, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 2 {
		return false, nil
	}
	if n <= s.checked {
		i := sort.Search(len(s.primes), func(i int) bool { return s.primes[i] >= n })
		return i < len(s.primes) && s.primes[i] == n, nil
	}

	// A composite n has a prime divisor no larger than √n.
	limit := isqrt(n)
	s.populateLocked(limit)
	for _, p := range s.primes {
		if p > limit {
			break
		}
		if n%p == 0 {
			return false, nil
		}
	}

	return true, nil
}

// Factorize returns the prime factorization of n.
// Factorize(0) and Factorize(1) return an empty factorization.
//
// Implementation:
//   - Stage 1: grow the table to ⌊√n⌋.
//   - Stage 2: divide out each prime while p² ≤ the remaining cofactor.
//   - Stage 3: a remaining cofactor > 1 is itself prime.
//
// Errors: ErrInvalidInput when n is outside [0, ceiling].
func (s *Sieve) Factorize(n int64) (Factorization, error) {
	if err := s.validate(n); err != nil {
		return nil, ntErrorf(opFactorize, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.factorizeLocked(n), nil
}

func (s *Sieve) factorizeLocked(n int64) Factorization {
	result := Factorization{}
	if n < 2 {
		return result
	}
	s.populateLocked(isqrt(n))
	for _, p := range s.primes {
		if p*p > n {
			break
		}
		for n%p == 0 {
			result[p]++
			n /= p
		}
	}
	if n > 1 {
		result[n]++
	}

	return result
}

// GCD returns the greatest common divisor of ns.
//
// Implementation:
//   - Stage 1: validate the whole list (every element in [1, ceiling]).
//   - Stage 2: factorize the minimum only.
//   - Stage 3: for every element, shrink each prime's exponent until the
//     prime power divides it; drop primes whose exponent reaches 0.
//
// Errors: ErrInvalidInput for an empty list or any element outside [1, ceiling].
func (s *Sieve) GCD(ns ...int64) (int64, error) {
	if len(ns) == 0 {
		return 0, ntErrorf(opGCD, fmt.Errorf("%w: empty list", ErrInvalidInput))
	}
	minimum := ns[0]
	for _, n := range ns {
		if n < 1 {
			return 0, ntErrorf(opGCD, fmt.Errorf("%w: %d is not positive", ErrInvalidInput, n))
		}
		if err := s.validate(n); err != nil {
			return 0, ntErrorf(opGCD, err)
		}
		if n < minimum {
			minimum = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	common := s.factorizeLocked(minimum)
	for _, n := range ns {
		for p, e := range common {
			for e > 0 && n%ipow(p, e) != 0 {
				e--
			}
			if e == 0 {
				delete(common, p)
			} else {
				common[p] = e
			}
		}
	}

	return common.Value(), nil
}

// Sigma returns the sum of the divisors of n using the multiplicative
// formula Π (1 + p + … + p^a) over n = Π p^a.
// Errors: ErrInvalidInput when n is outside [1, ceiling].
func (s *Sieve) Sigma(n int64) (int64, error) {
	if n == 0 {
		return 0, ntErrorf(opSigma, fmt.Errorf("%w: divisor sum of 0", ErrInvalidInput))
	}
	f, err := s.Factorize(n)
	if err != nil {
		return 0, ntErrorf(opSigma, err)
	}
	result := int64(1)
	for p, a := range f {
		sum, term := int64(1), int64(1)
		for i := 0; i < a; i++ {
			term *= p
			sum += term
		}
		result *= sum
	}

	return result, nil
}

// ProperDivisorSum returns σ(n) − n, the sum of the divisors of n below n.
func (s *Sieve) ProperDivisorSum(n int64) (int64, error) {
	sigma, err := s.Sigma(n)
	if err != nil {
		return 0, err
	}

	return sigma - n, nil
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting float64 rounding.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// ipow returns p^e for small e; callers guarantee p^e divides a valid input.
func ipow(p int64, e int) int64 {
	result := int64(1)
	for i := 0; i < e; i++ {
		result *= p
	}

	return result
}
