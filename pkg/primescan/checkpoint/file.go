package checkpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists progress as a single JSON file at an explicitly
// configured path. Saves write to a temp file in the same directory and
// rename over the target, so a reader never sees a torn write.
//
// The path is per-store configuration, not process-wide state;
// sequential and parallel run classes should use distinct paths.
type FileStore struct {
	path   string
	mu     sync.Mutex
	closed bool
}

// NewFileStore creates a store writing to path. The file is created on
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the checkpoint file path.
func (s *FileStore) Path() string {
	return s.path
}

// Save implements Store.
func (s *FileStore) Save(p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	data, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace checkpoint file: %w", err)
	}
	return nil
}

// Load implements Store. An absent, unreadable, or malformed file is
// treated as no checkpoint.
func (s *FileStore) Load() (*Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, nil
	}
	return p, nil
}

// Clear implements Store.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove checkpoint file: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
