// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package primeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorize(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want []Factor
	}{
		{"one", 1, nil},
		{"prime", 13, []Factor{{13, 1}}},
		{"square", 49, []Factor{{7, 2}}},
		{"power of two", 64, []Factor{{2, 6}}},
		{"textbook", 360, []Factor{{2, 3}, {3, 2}, {5, 1}}},
		{"two large primes", 99991 * 2, []Factor{{2, 1}, {99991, 1}}},
		{"large prime", 999983, []Factor{{999983, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Factorize(tt.n)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactorizeZero(t *testing.T) {
	_, err := New().Factorize(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFactorizeRoundTrip(t *testing.T) {
	s := New()
	for n := uint64(1); n <= 2000; n++ {
		factors, err := s.Factorize(n)
		assert.NoError(t, err)

		product := uint64(1)
		var prev uint64
		for _, f := range factors {
			assert.True(t, s.IsPrime(f.Prime), "n=%d factor=%d", n, f.Prime)
			assert.Greater(t, f.Prime, prev, "n=%d: primes must increase", n)
			assert.Greater(t, f.Exponent, 0, "n=%d", n)
			prev = f.Prime
			for e := 0; e < f.Exponent; e++ {
				product *= f.Prime
			}
		}
		assert.Equal(t, n, product, "n=%d", n)
	}
}

func TestDistinctFactors(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{1, []uint64{}},
		{8, []uint64{2}},
		{360, []uint64{2, 3, 5}},
		{30030, []uint64{2, 3, 5, 7, 11, 13}},
	}
	s := New()
	for _, tt := range tests {
		got, err := s.DistinctFactors(tt.n)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func BenchmarkFactorize(b *testing.B) {
	s := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Factorize(963761198400); err != nil { // highly composite
			b.Fatal(err)
		}
	}
}
