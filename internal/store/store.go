// Package store persists the tracker list as a single JSON blob in a
// local SQLite key-value table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"outlay/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrCorrupt wraps a stored blob that no longer parses. Interactive
// callers degrade to an empty list; scripting callers surface it.
var ErrCorrupt = errors.New("stored tracker data is corrupt")

const trackersKey = "trackers"

// Store is the device-local key-value store. One key holds the whole
// tracker list; every save replaces it.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadTrackers reads and decodes the stored list, then sorts it by
// proximity to now so current trackers surface first. A missing or empty
// value is an empty list, not an error.
func (s *Store) LoadTrackers() ([]model.Tracker, error) {
	var blob string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", trackersKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading trackers: %w", err)
	}
	if blob == "" {
		return nil, nil
	}

	list, err := DecodeTrackers([]byte(blob))
	if err != nil {
		return nil, err
	}

	model.SortByProximity(list, time.Now())
	return list, nil
}

// SaveTrackers serializes the full list and replaces the stored value in
// one transaction. The last completed save wins.
func (s *Store) SaveTrackers(list []model.Tracker) error {
	blob, err := EncodeTrackers(list)
	if err != nil {
		return fmt.Errorf("encoding trackers: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)`, trackersKey, string(blob), now)
	if err != nil {
		return fmt.Errorf("writing trackers: %w", err)
	}

	return tx.Commit()
}

// SavedAt reports when the tracker blob was last written, zero if never.
func (s *Store) SavedAt() (time.Time, error) {
	var raw string
	err := s.db.QueryRow("SELECT updated_at FROM kv WHERE key = ?", trackersKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, nil
	}
	return ts, nil
}
