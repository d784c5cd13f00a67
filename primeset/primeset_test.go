// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package primeset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveIsPrime is the reference check: divisibility by every integer up
// to sqrt(n).
func naiveIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestNewSeed(t *testing.T) {
	s := New()
	assert.Equal(t, []uint64{2, 3}, s.List())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, uint64(3), s.Max())
}

func TestExpandAddsExactlyOne(t *testing.T) {
	s := New()
	for i := 0; i < 50; i++ {
		before := s.Len()
		assert.NoError(t, s.Expand())
		assert.Equal(t, before+1, s.Len())
	}
}

func TestEnsureLenIdempotent(t *testing.T) {
	s := New()
	assert.NoError(t, s.EnsureLen(25))
	first := s.List()
	assert.NoError(t, s.EnsureLen(25))
	assert.Equal(t, first, s.List())
	assert.Len(t, first, 25)
}

func TestListInvariants(t *testing.T) {
	s := New()
	assert.NoError(t, s.EnsureLen(500))
	lst := s.List()

	// Strictly increasing, no duplicates.
	for i := 1; i < len(lst); i++ {
		assert.Less(t, lst[i-1], lst[i], "at index %d", i)
	}

	// Completeness: every m <= max is in the list iff m is prime.
	idx := 0
	for m := uint64(0); m <= lst[len(lst)-1]; m++ {
		inList := idx < len(lst) && lst[idx] == m
		if inList {
			idx++
		}
		assert.Equal(t, naiveIsPrime(m), inList, "m=%d", m)
	}

	// The loop invariant behind trial division against the list alone:
	// each prime is smaller than the square of its predecessor, so the
	// list always covers sqrt of the next candidate.
	for i := 1; i < len(lst); i++ {
		assert.Less(t, lst[i], lst[i-1]*lst[i-1], "at index %d", i)
	}
}

func TestNth(t *testing.T) {
	tests := []struct {
		k    int
		want uint64
	}{
		{0, 2},
		{1, 3},
		{4, 11},
		{9, 29},
		{99, 541},
		{167, 997},
	}
	s := New()
	for _, tt := range tests {
		got, err := s.Nth(tt.k)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "k=%d", tt.k)
	}
}

func TestNthNegativeIndex(t *testing.T) {
	s := New()
	_, err := s.Nth(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsPrimeAgainstReference(t *testing.T) {
	s := New()
	for n := uint64(0); n <= 10000; n++ {
		assert.Equal(t, naiveIsPrime(n), s.IsPrime(n), "n=%d", n)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		bound    uint64
		wantIdx  int
		wantItem uint64
	}{
		{"below first prime", 0, 0, 2},
		{"exact first prime", 2, 0, 2},
		{"between primes", 14, 6, 17},
		{"next after ten", 10, 4, 11},
		{"round number", 1000, 168, 1009},
		{"exact hit", 1009, 168, 1009},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			idx, p, err := s.Find(tt.bound)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantItem, p)
		})
	}
}

func TestFindDoesNotOverExtend(t *testing.T) {
	s := New()
	idx, p, err := s.Find(1000)
	assert.NoError(t, err)
	assert.Equal(t, 168, idx)
	assert.Equal(t, uint64(1009), p)

	// Expansion stops at the answer, not beyond it.
	assert.Equal(t, idx+1, s.Len())
	assert.Equal(t, p, s.Max())
}

func TestFindCached(t *testing.T) {
	s := New()

	// Nothing past the seed yet.
	_, _, ok := s.FindCached(1000)
	assert.False(t, ok)

	_, _, err := s.Find(1000)
	assert.NoError(t, err)

	idx, p, ok := s.FindCached(1000)
	assert.True(t, ok)
	assert.Equal(t, 168, idx)
	assert.Equal(t, uint64(1009), p)
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name string
		list []uint64
		ok   bool
	}{
		{"valid prefix", []uint64{2, 3, 5, 7, 11}, true},
		{"seed only", []uint64{2, 3}, true},
		{"too short", []uint64{2}, false},
		{"wrong seed", []uint64{2, 5, 7}, false},
		{"not increasing", []uint64{2, 3, 7, 5}, false},
		{"duplicate", []uint64{2, 3, 3}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Restore(tt.list)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.list, s.List())
			}
		})
	}
}

func TestRestoreContinues(t *testing.T) {
	warm := New()
	assert.NoError(t, warm.EnsureLen(100))

	s, ok := Restore(warm.List())
	assert.True(t, ok)

	got, err := s.Nth(100)
	assert.NoError(t, err)

	want, err := New().Nth(100)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExpandOverflow(t *testing.T) {
	// Structurally valid list ending at the largest uint64 prime. Only
	// the overflow guard is exercised here; the list is not a complete
	// prime prefix.
	s, ok := Restore([]uint64{2, 3, maxPrime})
	assert.True(t, ok)

	err := s.Expand()
	assert.ErrorIs(t, err, ErrOverflow)

	// A failed expansion leaves the set in its prior state.
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, maxPrime, s.Max())
}

func TestConcurrentExpansion(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := s.Iter()
			for i := 0; i < 300; i++ {
				if _, err := c.Next(); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	lst := s.List()
	assert.GreaterOrEqual(t, len(lst), 300)
	for i := 1; i < len(lst); i++ {
		assert.Less(t, lst[i-1], lst[i], "at index %d", i)
	}
}

func BenchmarkExpand(b *testing.B) {
	s := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Expand(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsPrime(b *testing.B) {
	s := New()
	s.IsPrime(999983) // warm the set past sqrt once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.IsPrime(999983)
	}
}
