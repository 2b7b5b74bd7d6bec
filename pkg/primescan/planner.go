package primescan

import "math"

// DefaultBatchSize is the per-batch growth of the count boundary when
// no batch size is configured.
const DefaultBatchSize = 1000

// smallPrimeBound covers the first five primes (2..11), where the
// asymptotic estimate is unusable.
const smallPrimeBound = 15

// Planner chooses the next count boundary for a search batch.
type Planner interface {
	// Next returns the prime-count boundary the next batch should
	// search up to, given the number of primes found so far.
	Next(current int) int
}

// FixedStepPlanner grows the boundary by a fixed step per batch.
// When Target is set (count-bounded mode), the boundary caps at it:
// next = min(current+Step, Target). Target == 0 means unbounded growth
// (time-bounded mode). A non-positive Step falls back to
// DefaultBatchSize.
type FixedStepPlanner struct {
	Step   int
	Target int
}

// Next implements Planner.
func (p FixedStepPlanner) Next(current int) int {
	step := p.Step
	if step <= 0 {
		step = DefaultBatchSize
	}
	next := current + step
	if p.Target > 0 && next > p.Target {
		next = p.Target
	}
	return next
}

// NthPrimeBound estimates an upper numeric bound for the nth prime
// using the asymptotic approximation n*(ln n + ln ln n). The estimate
// is not a guarantee: callers that come up short must grow the bound
// with ExpandBound and scan the additional territory.
func NthPrimeBound(n int) int64 {
	if n <= 0 {
		return 0
	}
	if n < 6 {
		return smallPrimeBound
	}
	ln := math.Log(float64(n))
	return int64(float64(n) * (ln + math.Log(ln)))
}

// ExpandBound grows a bound that undershot by a factor of 1.5.
func ExpandBound(bound int64) int64 {
	next := bound * 3 / 2
	if next <= bound {
		return bound + 1
	}
	return next
}
