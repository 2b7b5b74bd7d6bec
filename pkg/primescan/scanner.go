package primescan

import "context"

// Scanner produces the primes within an inclusive numeric range.
//
// Implementations must return a strictly ascending, duplicate-free
// sequence containing every prime p with lo <= p <= hi, or an error and
// no primes at all. Partial results are never returned: the search loop
// relies on every scan being a complete, verified range.
type Scanner interface {
	Scan(ctx context.Context, lo, hi int64) ([]int64, error)
}

// SequentialScanner tests each candidate on the calling goroutine.
// Always correct; O(range size * sqrt n) total work.
type SequentialScanner struct {
	// Oracle overrides the primality predicate. Nil means IsPrime.
	// Exposed for testing.
	Oracle func(int64) bool
}

// Scan implements Scanner.
//
// Cancellation is deliberately not checked mid-range: a scan is the
// unit of work between checkpoints and always runs to completion.
func (s SequentialScanner) Scan(_ context.Context, lo, hi int64) ([]int64, error) {
	oracle := s.Oracle
	if oracle == nil {
		oracle = IsPrime
	}
	if lo < 2 {
		lo = 2
	}

	var primes []int64
	for n := lo; n <= hi; n++ {
		if oracle(n) {
			primes = append(primes, n)
		}
	}
	return primes, nil
}

// ScanRange returns all primes in [lo, hi] using a sequential scan.
func ScanRange(ctx context.Context, lo, hi int64) ([]int64, error) {
	return SequentialScanner{}.Scan(ctx, lo, hi)
}
