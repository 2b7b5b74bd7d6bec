/*
Package primescan incrementally discovers prime numbers over
long-running or resumable executions.

# Overview

The engine grows a search frontier in bounded batches, optionally
parallelizes primality testing across independent workers, persists
progress after each batch so an interrupted run can resume without
redoing work, and stops on a count target, a time budget, or a
cancelled context.

# Basic Usage

Find the first N primes:

	primes, err := primescan.FindFirstN(ctx, 1000)

Parallelize the scan:

	primes, err := primescan.FindFirstN(ctx, 1000,
	    primescan.WithScanner(primescan.ParallelScanner{Workers: 8}))

# Checkpointed Runs

Time-bounded runs checkpoint after every batch and resume from the last
checkpoint on the next invocation:

	store := checkpoint.NewFileStore("primescan_checkpoint.json")
	searcher, err := primescan.NewSearcher(
	    primescan.WithTimeBudget(5*time.Minute),
	    primescan.WithCheckpointStore(store),
	)
	summary, err := searcher.Run(ctx)

A run that exhausts its budget naturally clears the checkpoint; a run
stopped by cancellation keeps it, so the next invocation picks up where
it left off. Count-bounded runs never write or consult checkpoints:
repeated "find N primes" calls stay independent of ambient state.

# Observability

Structured logging (log/slog), OpenTelemetry metrics, and trace spans
are opt-in via WithLogger, WithMetrics, and WithTracing.
*/
package primescan
