package config

import (
	"errors"
	"fmt"
	"time"
)

// Configuration validation errors.
var (
	// ErrNoStopCondition indicates neither target_count nor time_budget
	// is set.
	ErrNoStopCondition = errors.New("config needs target_count or time_budget")

	// ErrConflictingModes indicates both target_count and time_budget
	// are set.
	ErrConflictingModes = errors.New("target_count and time_budget are mutually exclusive")
)

// Settings are the search parameters a config file can carry.
//
// Recognized keys: target_count, time_budget, batch_size, workers,
// parallel, checkpoint_path, scan_retries.
type Settings struct {
	// TargetCount makes the run count-bounded when > 0.
	TargetCount int

	// TimeBudget makes the run time-bounded when > 0.
	TimeBudget time.Duration

	// BatchSize is the per-batch count growth; zero means the engine
	// default.
	BatchSize int

	// Workers is the parallel worker count; zero means host
	// parallelism.
	Workers int

	// Parallel selects the parallel scanner.
	Parallel bool

	// CheckpointPath is where time-bounded runs persist progress.
	// Empty disables checkpointing.
	CheckpointPath string

	// ScanRetries is the per-batch retry budget; negative means the
	// engine default.
	ScanRetries int
}

// SettingsFrom extracts search settings from a Config.
func SettingsFrom(c Config) Settings {
	return Settings{
		TargetCount:    c.Int("target_count", 0),
		TimeBudget:     c.Duration("time_budget", 0),
		BatchSize:      c.Int("batch_size", 0),
		Workers:        c.Int("workers", 0),
		Parallel:       c.Bool("parallel", false),
		CheckpointPath: c.String("checkpoint_path", ""),
		ScanRetries:    c.Int("scan_retries", -1),
	}
}

// Validate rejects contradictory or senseless settings before any work
// starts.
func (s Settings) Validate() error {
	if s.TargetCount > 0 && s.TimeBudget > 0 {
		return ErrConflictingModes
	}
	if s.TargetCount <= 0 && s.TimeBudget <= 0 {
		return ErrNoStopCondition
	}
	if s.TargetCount < 0 {
		return fmt.Errorf("target_count cannot be negative: %d", s.TargetCount)
	}
	if s.TimeBudget < 0 {
		return fmt.Errorf("time_budget cannot be negative: %s", s.TimeBudget)
	}
	if s.BatchSize < 0 {
		return fmt.Errorf("batch_size cannot be negative: %d", s.BatchSize)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers cannot be negative: %d", s.Workers)
	}
	return nil
}
