package primescan

import (
	"log/slog"
	"time"

	"primescan/pkg/primescan/checkpoint"
	"primescan/pkg/primescan/observability"
)

// defaultScanRetries is how many times a failed batch scan is retried
// before the run fails.
const defaultScanRetries = 2

// searchConfig holds configuration for a search run.
type searchConfig struct {
	target        int           // count-bounded mode when > 0
	budget        time.Duration // time-bounded mode when > 0
	batchSize     int
	startCount    int
	explicitStart bool

	planner Planner
	scanner Scanner

	store                  checkpoint.Store
	runID                  string
	scanRetries            int
	checkpointFailureFatal bool

	progress ProgressHandler
	logger   *slog.Logger

	metrics        observability.MetricsRecorder
	metricsEnabled bool
	spans          observability.SpanManager
	tracingEnabled bool

	now func() time.Time
}

// defaultSearchConfig returns the default run configuration.
func defaultSearchConfig() searchConfig {
	return searchConfig{
		batchSize:   DefaultBatchSize,
		scanner:     SequentialScanner{},
		scanRetries: defaultScanRetries,
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
		now:         time.Now,
	}
}

// validate rejects contradictory or senseless parameters before any
// batch executes.
func (c *searchConfig) validate() error {
	if c.target > 0 && c.budget > 0 {
		return &ConfigError{Field: "target/budget", Err: ErrConflictingModes}
	}
	if c.target <= 0 && c.budget <= 0 {
		return &ConfigError{Field: "target/budget", Err: ErrNoStopCondition}
	}
	if c.batchSize <= 0 {
		return &ConfigError{Field: "batch size", Err: ErrInvalidBatchSize}
	}
	if c.startCount < 0 {
		return &ConfigError{Field: "start count", Err: ErrInvalidStartCount}
	}
	if c.scanRetries < 0 {
		return &ConfigError{Field: "scan retries", Err: ErrInvalidRetries}
	}
	return nil
}

// Option configures a Searcher.
type Option func(*searchConfig)

// WithTargetCount makes the run count-bounded: it stops once n primes
// have been found. Mutually exclusive with WithTimeBudget.
// Count-bounded runs never write or consult checkpoints.
func WithTargetCount(n int) Option {
	return func(c *searchConfig) {
		c.target = n
	}
}

// WithTimeBudget makes the run time-bounded: it stops at the first
// batch boundary where elapsed time meets the budget. Mutually
// exclusive with WithTargetCount.
func WithTimeBudget(d time.Duration) Option {
	return func(c *searchConfig) {
		c.budget = d
	}
}

// WithBatchSize sets the per-batch count growth.
// Default: DefaultBatchSize.
func WithBatchSize(n int) Option {
	return func(c *searchConfig) {
		c.batchSize = n
	}
}

// WithStartCount starts the run as if n primes had already been found.
// Explicit-start runs bypass checkpoint loading entirely, even when a
// checkpoint exists.
func WithStartCount(n int) Option {
	return func(c *searchConfig) {
		c.startCount = n
		c.explicitStart = true
	}
}

// WithPlanner overrides the batch boundary policy.
// Default: FixedStepPlanner with the configured batch size and target.
func WithPlanner(p Planner) Option {
	return func(c *searchConfig) {
		if p != nil {
			c.planner = p
		}
	}
}

// WithScanner sets the scan strategy.
// Default: SequentialScanner.
func WithScanner(s Scanner) Option {
	return func(c *searchConfig) {
		if s != nil {
			c.scanner = s
		}
	}
}

// WithCheckpointStore enables checkpointing for time-bounded runs.
// After every batch the run persists its progress to store; on start it
// resumes from the stored count unless an explicit start is set.
func WithCheckpointStore(store checkpoint.Store) Option {
	return func(c *searchConfig) {
		c.store = store
	}
}

// WithRunID sets the run identifier used in logs and spans.
// Default: a random UUID.
func WithRunID(id string) Option {
	return func(c *searchConfig) {
		c.runID = id
	}
}

// WithScanRetries sets how many times a failed batch is retried before
// the run fails. Default: 2.
func WithScanRetries(n int) Option {
	return func(c *searchConfig) {
		c.scanRetries = n
	}
}

// WithCheckpointFailureFatal makes checkpoint save failures abort the
// run instead of logging a warning and continuing.
func WithCheckpointFailureFatal(fatal bool) Option {
	return func(c *searchConfig) {
		c.checkpointFailureFatal = fatal
	}
}

// WithProgressHandler registers a callback invoked after every batch.
func WithProgressHandler(h ProgressHandler) Option {
	return func(c *searchConfig) {
		c.progress = h
	}
}

// WithLogger sets the structured logger. Nil (the default) disables
// logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *searchConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics recording.
func WithMetrics(enabled bool) Option {
	return func(c *searchConfig) {
		c.metricsEnabled = enabled
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry trace spans for the run and each
// batch.
func WithTracing(enabled bool) Option {
	return func(c *searchConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithClock overrides the time source. Useful for deterministic tests
// of time-bounded runs.
func WithClock(now func() time.Time) Option {
	return func(c *searchConfig) {
		if now != nil {
			c.now = now
		}
	}
}
