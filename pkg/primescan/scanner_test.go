package primescan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanRange_Basic tests the canonical small range.
func TestScanRange_Basic(t *testing.T) {
	primes, err := ScanRange(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5, 7}, primes)
}

// TestSequentialScanner_Ranges tests completeness and ordering over a
// variety of ranges.
func TestSequentialScanner_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int64
		want   []int64
	}{
		{"from below two", -5, 10, []int64{2, 3, 5, 7}},
		{"interior range", 10, 30, []int64{11, 13, 17, 19, 23, 29}},
		{"single prime", 13, 13, []int64{13}},
		{"single composite", 15, 15, nil},
		{"empty range", 10, 9, nil},
		{"twin primes", 101, 109, []int64{101, 103, 107, 109}},
	}

	scanner := SequentialScanner{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanner.Scan(context.Background(), tt.lo, tt.hi)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSequentialScanner_Ascending tests the strictly ascending,
// duplicate-free contract over a larger range.
func TestSequentialScanner_Ascending(t *testing.T) {
	primes, err := SequentialScanner{}.Scan(context.Background(), 2, 5000)
	require.NoError(t, err)
	require.NotEmpty(t, primes)

	for i := 1; i < len(primes); i++ {
		require.Greater(t, primes[i], primes[i-1],
			"sequence not strictly ascending at index %d", i)
	}
	for _, p := range primes {
		require.True(t, IsPrime(p), "%d reported prime", p)
	}
}

// TestSequentialScanner_CustomOracle tests the injectable predicate.
func TestSequentialScanner_CustomOracle(t *testing.T) {
	evens := SequentialScanner{Oracle: func(n int64) bool { return n%2 == 0 }}
	got, err := evens.Scan(context.Background(), 2, 9)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 6, 8}, got)
}

// TestFindPrimesUpTo tests the limit-bounded entry point.
func TestFindPrimesUpTo(t *testing.T) {
	t.Run("nil scanner defaults to sequential", func(t *testing.T) {
		primes, err := FindPrimesUpTo(context.Background(), 20, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19}, primes)
	})

	t.Run("limit below two", func(t *testing.T) {
		primes, err := FindPrimesUpTo(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Nil(t, primes)
	})

	t.Run("limit is prime", func(t *testing.T) {
		primes, err := FindPrimesUpTo(context.Background(), 13, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(13), primes[len(primes)-1])
	})
}
