// Package checkpoint persists search progress so interrupted runs can
// resume without redoing work.
package checkpoint

import "errors"

// Store holds at most one Progress record per run class.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save atomically replaces the stored progress. A concurrent Load
	// never observes a partially written record.
	Save(p Progress) error

	// Load returns the stored progress, or nil when none exists.
	// Missing or malformed data yields (nil, nil), never an error: a
	// corrupted checkpoint is equivalent to starting fresh.
	Load() (*Progress, error)

	// Clear removes the stored progress. Clearing an absent record is
	// not an error.
	Clear() error

	// Close releases any resources (files, connections).
	Close() error
}

// ErrStoreClosed indicates the store has been closed.
var ErrStoreClosed = errors.New("checkpoint store closed")
