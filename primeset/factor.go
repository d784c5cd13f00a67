// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package primeset

import "fmt"

// Factor is one term of a prime factorization.
type Factor struct {
	Prime    uint64
	Exponent int
}

// Factorize returns the prime factorization of n as (prime, exponent)
// pairs with strictly increasing primes, whose product equals n. The
// result is empty for n = 1 and ErrInvalidInput is returned for n = 0.
// The set is extended only as far as the square root of the remaining
// quotient; once the quotient drops below the square of the next
// candidate prime it is itself prime and becomes the final factor.
func (s *Set) Factorize(n uint64) ([]Factor, error) {
	if n == 0 {
		return nil, fmt.Errorf("factorize 0: %w", ErrInvalidInput)
	}

	var factors []Factor
	for i := 0; n > 1; i++ {
		p, err := s.Nth(i)
		if err != nil {
			return nil, err
		}
		if p > n/p { // p*p > n: the remaining quotient is prime
			factors = append(factors, Factor{Prime: n, Exponent: 1})
			break
		}
		if n%p != 0 {
			continue
		}
		f := Factor{Prime: p}
		for n%p == 0 {
			n /= p
			f.Exponent++
		}
		factors = append(factors, f)
	}
	return factors, nil
}

// DistinctFactors returns the distinct prime factors of n in increasing
// order, without multiplicities.
func (s *Set) DistinctFactors(n uint64) ([]uint64, error) {
	factors, err := s.Factorize(n)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(factors))
	for i, f := range factors {
		out[i] = f.Prime
	}
	return out, nil
}
