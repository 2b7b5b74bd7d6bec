package primescan

import (
	"errors"
	"fmt"
)

// Sentinel errors for run configuration. All are surfaced before any
// batch executes.
var (
	// ErrNoStopCondition indicates neither a target count nor a time
	// budget was configured.
	ErrNoStopCondition = errors.New("no stop condition: set a target count or a time budget")

	// ErrConflictingModes indicates both a target count and a time
	// budget were configured.
	ErrConflictingModes = errors.New("target count and time budget are mutually exclusive")

	// ErrInvalidBatchSize indicates a non-positive batch size.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrInvalidStartCount indicates a negative explicit start count.
	ErrInvalidStartCount = errors.New("start count cannot be negative")

	// ErrInvalidRetries indicates a negative scan retry budget.
	ErrInvalidRetries = errors.New("scan retries cannot be negative")
)

// ConfigError wraps a configuration sentinel with the offending field.
type ConfigError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// WorkerError reports a failed partition of a parallel scan. The batch
// it belongs to is discarded wholesale; no partial results survive.
type WorkerError struct {
	// Worker is the index of the failed partition.
	Worker int
	// Err is the underlying failure (including recovered panics).
	Err error
}

// Error implements the error interface.
func (e *WorkerError) Error() string {
	return fmt.Sprintf("scan worker %d: %v", e.Worker, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *WorkerError) Unwrap() error {
	return e.Err
}

// ScanError reports a range scan that failed after exhausting its
// retry budget.
type ScanError struct {
	// Lo and Hi are the inclusive bounds of the failed range.
	Lo, Hi int64
	// Attempts is how many times the scan was tried.
	Attempts int
	// Err is the last failure.
	Err error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan [%d, %d] failed after %d attempts: %v", e.Lo, e.Hi, e.Attempts, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// CheckpointError wraps a checkpoint persistence failure. Save failures
// are warnings by default (the in-memory sequence stays valid); the
// WithCheckpointFailureFatal option promotes them to run errors.
type CheckpointError struct {
	// Op is the operation that failed ("save", "clear").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CheckpointError) Error() string {
	return fmt.Sprintf("checkpoint %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CheckpointError) Unwrap() error {
	return e.Err
}
