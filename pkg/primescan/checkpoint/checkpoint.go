package checkpoint

import (
	"encoding/json"
	"errors"
	"time"
)

// Run class identities. Sequential and parallel searches keep separate
// checkpoints so their progress never mixes.
const (
	ClassSequential = "sequential"
	ClassParallel   = "parallel"
)

// ErrInvalidProgress indicates a stored record violates field
// invariants. Stores treat such records as absent.
var ErrInvalidProgress = errors.New("invalid progress record")

// Progress is the persisted snapshot of a search run.
//
// The JSON field names are the on-disk wire format; Count always equals
// the length of the in-memory prime sequence at the moment of
// persistence.
type Progress struct {
	// Count is the number of primes found so far.
	Count int `json:"count"`

	// ElapsedSeconds is accumulated wall-clock search time.
	ElapsedSeconds float64 `json:"elapsed_time"`

	// Timestamp is the save time in epoch seconds.
	Timestamp float64 `json:"timestamp"`

	// Workers is the worker count for parallel runs. Zero means the
	// run was sequential; the field is then omitted on the wire.
	Workers int `json:"num_processes,omitempty"`
}

// Validate checks field invariants.
func (p *Progress) Validate() error {
	if p.Count < 0 || p.ElapsedSeconds < 0 || p.Timestamp < 0 || p.Workers < 0 {
		return ErrInvalidProgress
	}
	return nil
}

// Marshal serializes the progress record to JSON.
func (p *Progress) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal parses and validates a stored progress record. Malformed or
// out-of-range content yields an error so callers can treat the record
// as absent.
func Unmarshal(data []byte) (*Progress, error) {
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Now returns the current time in the Timestamp encoding (epoch
// seconds).
func Now() float64 {
	return EpochSeconds(time.Now())
}

// EpochSeconds converts a time to the Timestamp encoding.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
