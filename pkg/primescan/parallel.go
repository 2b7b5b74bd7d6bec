package primescan

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelScanner partitions a range into contiguous chunks, one per
// worker goroutine, and merges results by chunk position so the output
// stays in ascending candidate order regardless of completion order.
//
// Workers share nothing mutable: each receives its chunk bounds and
// writes into its own result slot. If any worker fails (error or
// panic), the whole batch is discarded and Scan returns the failure
// rather than a partial prime list.
type ParallelScanner struct {
	// Workers is the number of concurrent workers. Zero or negative
	// means runtime.NumCPU().
	Workers int

	// Oracle overrides the primality predicate. Nil means IsPrime.
	// Exposed for testing worker failure paths.
	Oracle func(int64) bool
}

// WorkerCount resolves the effective worker count.
func (s ParallelScanner) WorkerCount() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

// Scan implements Scanner.
func (s ParallelScanner) Scan(_ context.Context, lo, hi int64) ([]int64, error) {
	oracle := s.Oracle
	if oracle == nil {
		oracle = IsPrime
	}
	if lo < 2 {
		lo = 2
	}
	if hi < lo {
		return nil, nil
	}

	span := hi - lo + 1
	workers := s.WorkerCount()
	if int64(workers) > span {
		workers = int(span)
	}

	// Contiguous chunks; the first (span mod workers) chunks carry one
	// extra candidate.
	chunks := make([][]int64, workers)
	chunkSize := span / int64(workers)
	extra := span % int64(workers)

	var g errgroup.Group
	start := lo
	for i := 0; i < workers; i++ {
		i := i
		size := chunkSize
		if int64(i) < extra {
			size++
		}
		cLo, cHi := start, start+size-1
		start = cHi + 1

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Worker: i, Err: fmt.Errorf("panic: %v", r)}
				}
			}()
			var found []int64
			for n := cLo; n <= cHi; n++ {
				if oracle(n) {
					found = append(found, n)
				}
			}
			chunks[i] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge keyed by chunk position, not arrival order. Chunks are
	// contiguous and internally ascending, so the result is ascending.
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	merged := make([]int64, 0, total)
	for _, c := range chunks {
		merged = append(merged, c...)
	}
	return merged, nil
}
