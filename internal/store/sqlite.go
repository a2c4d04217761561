package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"importflow/internal/config"
	"importflow/internal/dossier"
)

// SQLite persists workflow state as JSON values in a key-value table. A
// file lock next to the database keeps the single-writer assumption honest
// when several CLI invocations overlap.
type SQLite struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the state database under the configured
// data directory and acquires the writer lock.
func Open(cfg *config.Config) (*SQLite, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "importflow.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire state lock: %w", err)
	}
	if !locked {
		return nil, errors.New("state database is locked by another importflow process")
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "importflow.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLite{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the writer lock.
func (s *SQLite) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", key, ErrNoState)
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// LoadDossiers reads the full dossier collection.
func (s *SQLite) LoadDossiers() ([]*dossier.Dossier, error) {
	return loadDossiers(s)
}

// SaveDossiers writes the full dossier collection.
func (s *SQLite) SaveDossiers(dossiers []*dossier.Dossier) error {
	return saveDossiers(s, dossiers)
}

// LoadRole reads the last-selected acting role.
func (s *SQLite) LoadRole() (dossier.Role, error) {
	return loadRole(s)
}

// SaveRole writes the acting role.
func (s *SQLite) SaveRole(role dossier.Role) error {
	return saveRole(s, role)
}
