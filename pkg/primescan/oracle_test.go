package primescan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsPrime_EdgeCases tests boundary inputs around the smallest
// primes.
func TestIsPrime_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want bool
	}{
		{"negative", -7, false},
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"nine", 9, false},
		{"twenty five", 25, false},
		{"perfect square of prime", 49, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrime(tt.n))
		})
	}
}

// TestIsPrime_KnownPrimes tests a sample of known primes across
// magnitudes.
func TestIsPrime_KnownPrimes(t *testing.T) {
	for _, n := range []int64{2, 3, 5, 7, 11, 13, 97, 101, 7919, 104729, 2147483647} {
		assert.True(t, IsPrime(n), "expected %d to be prime", n)
	}
}

// TestIsPrime_KnownComposites tests composites including Carmichael
// numbers, which fool weaker probabilistic checks.
func TestIsPrime_KnownComposites(t *testing.T) {
	for _, n := range []int64{4, 6, 8, 15, 91, 561, 1105, 7917, 104730} {
		assert.False(t, IsPrime(n), "expected %d to be composite", n)
	}
}

// TestIsPrime_AgreesWithSieve cross-checks trial division against a
// Sieve of Eratosthenes over [0, 10000].
func TestIsPrime_AgreesWithSieve(t *testing.T) {
	const limit = 10000
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	for n := 0; n <= limit; n++ {
		want := n >= 2 && !composite[n]
		if IsPrime(int64(n)) != want {
			t.Fatalf("IsPrime(%d) = %v, sieve says %v", n, !want, want)
		}
	}
}
