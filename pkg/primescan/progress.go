package primescan

// reportEdge is how many primes a Summary keeps at each end of the
// sequence for reporting.
const reportEdge = 10

// ProgressEvent is emitted after every completed batch. It carries just
// enough for a presentation layer to report progress.
type ProgressEvent struct {
	// Count is the total number of primes found so far.
	Count int

	// ElapsedSeconds is accumulated wall-clock search time, including
	// time inherited from a resumed checkpoint.
	ElapsedSeconds float64

	// LargestPrime is the largest prime found so far.
	LargestPrime int64
}

// ProgressHandler receives per-batch progress events. Handlers run on
// the coordinating goroutine between batches; slow handlers slow the
// search.
type ProgressHandler func(ProgressEvent)

// StopReason identifies which stop condition ended a run.
type StopReason string

// Stop reasons, in the order they are checked after each batch.
const (
	StopTarget StopReason = "target"
	StopTime   StopReason = "time"
	StopSignal StopReason = "signal"
)

// Summary describes a finished run.
type Summary struct {
	// TotalCount is the number of primes found.
	TotalCount int

	// LargestPrime is the largest prime found, zero when none.
	LargestPrime int64

	// ElapsedSeconds is total wall-clock search time, including time
	// inherited from a resumed checkpoint.
	ElapsedSeconds float64

	// FirstPrimes and LastPrimes hold up to ten primes from each end
	// of the sequence.
	FirstPrimes []int64
	LastPrimes  []int64

	// Primes is the full ordered sequence found by this run. The
	// caller owns the slice once Run returns.
	Primes []int64

	// StopReason tells which condition ended the run.
	StopReason StopReason

	// Workers is the worker count used, 1 for sequential scans.
	Workers int
}

// Rate returns primes found per second, zero when no time elapsed.
func (s *Summary) Rate() float64 {
	if s.ElapsedSeconds <= 0 {
		return 0
	}
	return float64(s.TotalCount) / s.ElapsedSeconds
}

func newSummary(primes []int64, elapsedSeconds float64, reason StopReason, workers int) *Summary {
	sum := &Summary{
		TotalCount:     len(primes),
		ElapsedSeconds: elapsedSeconds,
		Primes:         primes,
		StopReason:     reason,
		Workers:        workers,
	}
	if len(primes) > 0 {
		sum.LargestPrime = primes[len(primes)-1]
	}
	edge := reportEdge
	if len(primes) < edge {
		edge = len(primes)
	}
	sum.FirstPrimes = append([]int64(nil), primes[:edge]...)
	sum.LastPrimes = append([]int64(nil), primes[len(primes)-edge:]...)
	return sum
}
