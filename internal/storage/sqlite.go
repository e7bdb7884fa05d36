// Package storage provides SQLite-based persistence for best scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/binary-arcade/internal/score"
)

// DefaultPath is where the arcade keeps its database.
const DefaultPath = "~/.arcade/scores.db"

// Store manages the SQLite database connection for best scores.
type Store struct {
	db *sql.DB
}

var _ score.Store = (*Store)(nil)

// BestEntry is one stored best score.
type BestEntry struct {
	Key       string
	Value     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// migrate creates the schema if it doesn't exist. Values are stored as
// decimal text, the format the original browser storage used.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_scores (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadBest returns the stored best for key. A missing or unparsable value
// reads as 0.
func (s *Store) LoadBest(key string) (int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM best_scores WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best %q: %w", key, err)
	}
	return parseValue(raw), nil
}

// SaveBest upserts the best for key. The stored value never decreases.
func (s *Store) SaveBest(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
		 WHERE CAST(excluded.value AS INTEGER) > CAST(best_scores.value AS INTEGER)`,
		key, strconv.Itoa(value),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best %q: %w", key, err)
	}
	return nil
}

// AllBest returns every stored best ordered by key.
func (s *Store) AllBest() ([]BestEntry, error) {
	rows, err := s.db.Query(`SELECT key, value, updated_at FROM best_scores ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		var raw string
		var updatedAt any
		if err := rows.Scan(&e.Key, &raw, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Value = parseValue(raw)
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearBest deletes the best for key.
func (s *Store) ClearBest(key string) error {
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear best %q: %w", key, err)
	}
	return nil
}

func parseValue(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseTimestamp handles both time.Time and the string form the driver
// may return for DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
