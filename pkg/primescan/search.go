package primescan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"primescan/pkg/primescan/checkpoint"
	"primescan/pkg/primescan/observability"
)

// Searcher drives the batch loop: plan the next boundary, scan the
// growing range, extend the prime sequence, checkpoint, and evaluate
// stop conditions. One Searcher value describes one run configuration
// and may be reused for independent runs.
type Searcher struct {
	cfg searchConfig
}

// NewSearcher validates the options and returns a Searcher.
// Exactly one of WithTargetCount and WithTimeBudget must be set;
// contradictory parameters fail here, before any work starts.
func NewSearcher(opts ...Option) (*Searcher, error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Searcher{cfg: cfg}, nil
}

// searchState is the mutable per-run state owned by the coordinating
// goroutine.
type searchState struct {
	// seq is the ordered, duplicate-free prime sequence. It grows only
	// by appending at the tail.
	seq []int64

	// scannedThrough is the highest candidate whose primality outcome
	// is already reflected in seq. The next scan starts just above it.
	scannedThrough int64
}

// Run executes the search until a stop condition is met: target count
// reached, time budget met, or ctx cancelled. Cancellation is
// cooperative and checked between batches only; the in-flight batch
// always finishes (and checkpoints) before Run returns.
//
// On a fatal error the returned Summary still describes everything
// found so far; already-computed primes are never lost.
func (s *Searcher) Run(ctx context.Context) (summary *Summary, runErr error) {
	cfg := s.cfg

	runID := cfg.runID
	if runID == "" {
		runID = uuid.New().String()
	}

	// Checkpointing applies to time-bounded runs only. Count-bounded
	// runs stay independent of ambient checkpoints.
	checkpointing := cfg.budget > 0 && cfg.store != nil

	// INIT: resolve the starting count and inherited elapsed time.
	startCount := 0
	priorElapsed := 0.0
	if cfg.explicitStart {
		startCount = cfg.startCount
	} else if checkpointing {
		prog, err := cfg.store.Load()
		if err != nil {
			observability.LogCheckpointError(cfg.logger, "load", err)
		}
		if prog != nil {
			startCount = prog.Count
			priorElapsed = prog.ElapsedSeconds
			observability.LogResume(cfg.logger, prog.Count, prog.ElapsedSeconds)

			// A resumed parallel run keeps its recorded worker count
			// unless the caller pinned one.
			if ps, ok := cfg.scanner.(ParallelScanner); ok && ps.Workers <= 0 && prog.Workers > 0 {
				ps.Workers = prog.Workers
				cfg.scanner = ps
			}
		}
	}

	workers := 1
	if ps, ok := cfg.scanner.(ParallelScanner); ok {
		workers = ps.WorkerCount()
	}

	planner := cfg.planner
	if planner == nil {
		planner = FixedStepPlanner{Step: cfg.batchSize, Target: cfg.target}
	}

	observability.LogSearchStart(cfg.logger, runID, cfg.target, cfg.budget, workers)

	start := cfg.now()
	elapsed := func() float64 {
		return priorElapsed + cfg.now().Sub(start).Seconds()
	}

	runStart := time.Now()
	defer func() {
		cfg.metrics.RecordRun(ctx, runErr == nil, time.Since(runStart))
		if runErr != nil {
			observability.LogSearchError(cfg.logger, runID, runErr, elapsed())
		}
	}()

	spanCtx := ctx
	if cfg.tracingEnabled {
		sctx, span := cfg.spans.StartRunSpan(ctx, runID)
		spanCtx = sctx
		defer func() { cfg.spans.EndSpanWithError(span, runErr) }()
	}

	state := &searchState{scannedThrough: 1}

	// Rebuild the deterministic prefix when resuming: the checkpoint
	// records counters, not primes.
	if startCount > 0 {
		if err := s.extendTo(spanCtx, &cfg, state, startCount); err != nil {
			return newSummary(state.seq, elapsed(), "", workers), err
		}
	}

	// RUNNING: one iteration per batch.
	var reason StopReason
	for {
		boundary := planner.Next(len(state.seq))

		batchCtx := spanCtx
		var endBatchSpan func(error)
		if cfg.tracingEnabled {
			bctx, span := cfg.spans.StartBatchSpan(spanCtx, boundary)
			batchCtx = bctx
			endBatchSpan = func(err error) { cfg.spans.EndSpanWithError(span, err) }
		}

		batchStart := time.Now()
		before := len(state.seq)
		err := s.extendTo(batchCtx, &cfg, state, boundary)
		if endBatchSpan != nil {
			endBatchSpan(err)
		}
		if err != nil {
			return newSummary(state.seq, elapsed(), "", workers), err
		}

		count := len(state.seq)
		elapsedS := elapsed()
		var largest int64
		if count > 0 {
			largest = state.seq[count-1]
		}

		if checkpointing {
			prog := checkpoint.Progress{
				Count:          count,
				ElapsedSeconds: elapsedS,
				Timestamp:      checkpoint.EpochSeconds(cfg.now()),
			}
			if workers > 1 {
				prog.Workers = workers
			}
			if saveErr := cfg.store.Save(prog); saveErr != nil {
				if cfg.checkpointFailureFatal {
					return newSummary(state.seq, elapsedS, "", workers),
						&CheckpointError{Op: "save", Err: saveErr}
				}
				observability.LogCheckpointError(cfg.logger, "save", saveErr)
			} else {
				observability.LogCheckpoint(cfg.logger, count)
				cfg.metrics.RecordCheckpoint(ctx, count)
			}
		}

		cfg.metrics.RecordBatch(ctx, count-before, time.Since(batchStart))
		observability.LogBatchComplete(cfg.logger, count, elapsedS, largest)
		if cfg.progress != nil {
			cfg.progress(ProgressEvent{
				Count:          count,
				ElapsedSeconds: elapsedS,
				LargestPrime:   largest,
			})
		}

		// Stop conditions, first match wins.
		if cfg.target > 0 && count >= cfg.target {
			reason = StopTarget
			break
		}
		if cfg.budget > 0 && elapsedS >= cfg.budget.Seconds() {
			reason = StopTime
			break
		}
		if ctx.Err() != nil {
			reason = StopSignal
			break
		}
	}

	// Terminal transition: only a natural time-bounded completion
	// clears the checkpoint; every other stop keeps it for resume.
	if checkpointing && reason == StopTime && ctx.Err() == nil {
		if err := cfg.store.Clear(); err != nil {
			observability.LogCheckpointError(cfg.logger, "clear", err)
		} else {
			observability.LogCheckpointCleared(cfg.logger)
		}
	}

	summary = newSummary(state.seq, elapsed(), reason, workers)
	observability.LogSearchComplete(cfg.logger, runID, summary.TotalCount,
		summary.LargestPrime, summary.ElapsedSeconds, string(reason))
	return summary, nil
}

// extendTo grows the sequence until it holds boundary primes. The scan
// frontier advances through numeric ranges sized by the analytic
// Nth-prime bound; an undershooting bound is expanded by 1.5x and only
// the new territory is scanned.
func (s *Searcher) extendTo(ctx context.Context, cfg *searchConfig, state *searchState, boundary int) error {
	bound := NthPrimeBound(boundary)
	for len(state.seq) < boundary {
		if bound <= state.scannedThrough {
			bound = ExpandBound(state.scannedThrough)
		}

		primes, err := s.scanWithRetry(ctx, cfg, state.scannedThrough+1, bound)
		if err != nil {
			return err
		}

		// Keep only what the boundary needs. Capping by the last kept
		// prime (not the bound) means nothing past it is marked
		// scanned, so later batches re-find the surplus.
		if need := boundary - len(state.seq); len(primes) > need {
			primes = primes[:need]
			state.seq = append(state.seq, primes...)
			state.scannedThrough = primes[len(primes)-1]
		} else {
			state.seq = append(state.seq, primes...)
			state.scannedThrough = bound
		}

		bound = ExpandBound(bound)
	}
	return nil
}

// scanWithRetry runs one range scan, retrying a discarded batch up to
// the configured retry budget. Partial results never survive a failed
// attempt; each retry starts from the same clean range.
func (s *Searcher) scanWithRetry(ctx context.Context, cfg *searchConfig, lo, hi int64) ([]int64, error) {
	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= cfg.scanRetries; attempt++ {
		if attempt > 0 {
			observability.LogScanRetry(cfg.logger, attempt, lastErr)
			cfg.metrics.RecordScanRetry(ctx)
		}
		attempts++
		primes, err := cfg.scanner.Scan(ctx, lo, hi)
		if err == nil {
			return primes, nil
		}
		lastErr = err
	}
	return nil, &ScanError{Lo: lo, Hi: hi, Attempts: attempts, Err: lastErr}
}

// FindFirstN returns the first n primes. It runs a count-bounded search
// with the given options; pass WithScanner(ParallelScanner{...}) to
// parallelize.
func FindFirstN(ctx context.Context, n int, opts ...Option) ([]int64, error) {
	if n <= 0 {
		return nil, nil
	}
	all := append([]Option{WithTargetCount(n)}, opts...)
	searcher, err := NewSearcher(all...)
	if err != nil {
		return nil, err
	}
	sum, err := searcher.Run(ctx)
	if err != nil {
		return nil, err
	}
	if len(sum.Primes) > n {
		return sum.Primes[:n], nil
	}
	return sum.Primes, nil
}

// FindPrimesUpTo returns all primes <= limit using the given scanner,
// or a sequential scan when scanner is nil.
func FindPrimesUpTo(ctx context.Context, limit int64, scanner Scanner) ([]int64, error) {
	if scanner == nil {
		scanner = SequentialScanner{}
	}
	if limit < 2 {
		return nil, nil
	}
	return scanner.Scan(ctx, 2, limit)
}
