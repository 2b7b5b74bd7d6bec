package checkpoint

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists progress to SQLite, one row per run class. It is
// suitable when several run classes share one durable database file.
type SQLiteStore struct {
	db     *sql.DB
	class  string
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (creating if needed) the database at path and
// binds the store to the given run class (ClassSequential,
// ClassParallel, or any caller-chosen identity). Use ":memory:" for
// testing.
func NewSQLiteStore(path, class string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS progress (
			class     TEXT PRIMARY KEY,
			count     INTEGER NOT NULL,
			elapsed   REAL NOT NULL,
			timestamp REAL NOT NULL,
			workers   INTEGER NOT NULL DEFAULT 0
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db, class: class}, nil
}

// Save implements Store. The upsert runs in a single statement, so a
// concurrent Load sees either the old or the new row, never a mix.
func (s *SQLiteStore) Save(p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO progress (class, count, elapsed, timestamp, workers)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(class) DO UPDATE SET
			count = excluded.count,
			elapsed = excluded.elapsed,
			timestamp = excluded.timestamp,
			workers = excluded.workers
	`, s.class, p.Count, p.ElapsedSeconds, p.Timestamp, p.Workers)

	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Load implements Store. A missing or invalid row is treated as no
// checkpoint.
func (s *SQLiteStore) Load() (*Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var p Progress
	err := s.db.QueryRow(`
		SELECT count, elapsed, timestamp, workers FROM progress
		WHERE class = ?
	`, s.class).Scan(&p.Count, &p.ElapsedSeconds, &p.Timestamp, &p.Workers)

	if err != nil {
		return nil, nil
	}
	if err := p.Validate(); err != nil {
		return nil, nil
	}
	return &p, nil
}

// Clear implements Store.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM progress WHERE class = ?`, s.class); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
