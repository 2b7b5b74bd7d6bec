package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}

// TestLogHelpers_NilLogger tests that every helper tolerates a nil
// logger. Logging is opt-in; nil is the disabled state.
func TestLogHelpers_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSearchStart(nil, "run-1", 100, time.Minute, 4)
		LogResume(nil, 50, 1.5)
		LogBatchComplete(nil, 100, 2.5, 541)
		LogCheckpoint(nil, 100)
		LogCheckpointError(nil, "save", errors.New("boom"))
		LogCheckpointCleared(nil)
		LogScanRetry(nil, 1, errors.New("boom"))
		LogSearchComplete(nil, "run-1", 100, 541, 3.5, "target")
		LogSearchError(nil, "run-1", errors.New("boom"), 3.5)
	})
}

// TestLogSearchStart tests the run start record.
func TestLogSearchStart(t *testing.T) {
	logger, buf := newTestLogger()

	LogSearchStart(logger, "run-abc", 5000, 0, 8)

	out := buf.String()
	assert.Contains(t, out, "search starting")
	assert.Contains(t, out, "run-abc")
	assert.Contains(t, out, `"target_count":5000`)
	assert.Contains(t, out, `"workers":8`)
}

// TestLogResume tests the checkpoint resume record.
func TestLogResume(t *testing.T) {
	logger, buf := newTestLogger()

	LogResume(logger, 27000, 58.3)

	out := buf.String()
	assert.Contains(t, out, "resuming from checkpoint")
	assert.Contains(t, out, `"count":27000`)
	assert.Contains(t, out, `"elapsed_seconds":58.3`)
}

// TestLogBatchComplete tests that batch records log at debug level.
func TestLogBatchComplete(t *testing.T) {
	logger, buf := newTestLogger()

	LogBatchComplete(logger, 1000, 2.1, 7919)

	out := buf.String()
	assert.Contains(t, out, `"level":"DEBUG"`)
	assert.Contains(t, out, "batch completed")
	assert.Contains(t, out, `"largest_prime":7919`)
}

// TestLogCheckpointError tests that checkpoint failures log as
// warnings.
func TestLogCheckpointError(t *testing.T) {
	logger, buf := newTestLogger()

	LogCheckpointError(logger, "save", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, "checkpoint failed")
	assert.Contains(t, out, `"operation":"save"`)
	assert.Contains(t, out, "disk full")
}

// TestLogSearchComplete tests the terminal record.
func TestLogSearchComplete(t *testing.T) {
	logger, buf := newTestLogger()

	LogSearchComplete(logger, "run-abc", 31337, 370261, 120.5, "time")

	out := buf.String()
	assert.Contains(t, out, "search completed")
	assert.Contains(t, out, `"stop_reason":"time"`)
	assert.Contains(t, out, `"count":31337`)
}

// TestLogSearchError tests the failure record.
func TestLogSearchError(t *testing.T) {
	logger, buf := newTestLogger()

	LogSearchError(logger, "run-abc", errors.New("scan exploded"), 5.5)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "search failed")
	assert.Contains(t, out, "scan exploded")
}
