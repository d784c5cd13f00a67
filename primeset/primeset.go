// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package primeset

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrOverflow is returned when extending the set would require a
	// candidate beyond the uint64 range.
	ErrOverflow = errors.New("primeset: candidate exceeds uint64 range")

	// ErrInvalidInput is returned for values outside an operation's
	// defined domain, such as a negative index or factorizing 0.
	ErrInvalidInput = errors.New("primeset: input outside the defined domain")
)

// maxPrime is the largest prime representable in a uint64. Once the set
// reaches it there is no next prime to find, so expansion must fail with
// ErrOverflow rather than let the candidate wrap.
const maxPrime uint64 = 18446744073709551557

// Set is an ordered, deduplicated, growing list of discovered primes.
// It holds every prime up to its current maximum, never a sampled
// subset. That completeness is what makes trial division against the
// list alone a correct primality test: any composite n has a prime
// factor <= sqrt(n), and the list covers all primes up to sqrt(n) long
// before n becomes a candidate.
//
// All methods are safe for concurrent use. Expansion is serialized;
// reads against an already-extended set take only the read lock.
type Set struct {
	mu  sync.RWMutex
	lst []uint64
}

// New returns a set seeded with 2 and 3. Seeding with the first two
// primes keeps the expand loop free of even-candidate and empty-list
// special cases.
func New() *Set {
	return &Set{lst: []uint64{2, 3}}
}

// Restore rebuilds a set from a list previously produced by List. The
// list must begin with 2, 3 and be strictly increasing; ok is false
// otherwise and the caller should start fresh. Restore validates the
// structure only, not the primality of every entry, so it should only
// be fed lists the set itself exported.
func Restore(list []uint64) (s *Set, ok bool) {
	if len(list) < 2 || list[0] != 2 || list[1] != 3 {
		return nil, false
	}
	for i := 2; i < len(list); i++ {
		if list[i] <= list[i-1] {
			return nil, false
		}
	}
	lst := make([]uint64, len(list))
	copy(lst, list)
	return &Set{lst: lst}, true
}

// Expand finds exactly one more prime and appends it to the set.
func (s *Set) Expand() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expand()
}

// expand is the core primitive. Callers must hold the write lock. On
// error the list is untouched.
func (s *Set) expand() error {
	last := s.lst[len(s.lst)-1]
	if last >= maxPrime {
		return ErrOverflow
	}

	// The maximum is always odd (the seed covers 2 and 3), so stepping
	// by 2 skips even candidates. A candidate is prime when no cached
	// prime p with p*p <= l divides it. The list always reaches past
	// sqrt(l) for the very next candidate -- each new prime is less than
	// the square of the previous maximum -- so the p > l/p break fires
	// before the list is exhausted.
	for l := last + 2; ; l += 2 {
		composite := false
		for _, p := range s.lst {
			if l%p == 0 {
				composite = true
				break
			}
			if p > l/p { // p*p > l, without overflow
				break
			}
		}
		if !composite {
			s.lst = append(s.lst, l)
			return nil
		}
	}
}

// EnsureLen expands the set until it holds at least n primes. Calling
// it again with the same n is a no-op.
func (s *Set) EnsureLen(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.lst) < n {
		if err := s.expand(); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of primes found so far.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lst)
}

// Max returns the largest prime found so far.
func (s *Set) Max() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lst[len(s.lst)-1]
}

// List returns a copy of all primes found so far, in increasing order.
func (s *Set) List() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint64, len(s.lst))
	copy(out, s.lst)
	return out
}

// Nth returns the (k+1)-th smallest prime (0-indexed), extending the
// set as needed.
func (s *Set) Nth(k int) (uint64, error) {
	if k < 0 {
		return 0, fmt.Errorf("index %d: %w", k, ErrInvalidInput)
	}
	if err := s.EnsureLen(k + 1); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lst[k], nil
}

// Find returns the index and value of the smallest prime >= n,
// extending the set until its maximum reaches n. If n is itself prime
// the result is n.
func (s *Set) Find(n uint64) (int, uint64, error) {
	for {
		if idx, p, ok := s.FindCached(n); ok {
			return idx, p, nil
		}
		if err := s.Expand(); err != nil {
			return 0, 0, err
		}
	}
}

// FindCached answers Find from the primes found so far, without
// extending the set. ok is false when n is beyond the cached maximum.
func (s *Set) FindCached(n uint64) (idx int, p uint64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > s.lst[len(s.lst)-1] {
		return 0, 0, false
	}
	idx = sort.Search(len(s.lst), func(i int) bool { return s.lst[i] >= n })
	return idx, s.lst[idx], true
}

// IsPrime reports whether n is prime. 0 and 1 are not prime. The set is
// extended only as far as sqrt(n), or less when a smaller cached prime
// already divides n.
func (s *Set) IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for i := 0; ; i++ {
		p, err := s.Nth(i)
		if err != nil {
			// Unreachable for any uint64 n: sqrt(n) fits well inside the
			// representable prime range.
			return false
		}
		if p > n/p { // p*p > n: no divisor found up to sqrt(n)
			return true
		}
		if n%p == 0 {
			return n == p
		}
	}
}
