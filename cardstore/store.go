// Package cardstore is a small key/value store for card poses, kept in
// SQLite so drag positions survive a restart.
package cardstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// CardState is the JSON payload stored per card.
type CardState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z int     `json:"z"`
}

// Key returns the storage key for a card id.
func Key(id string) string {
	return "paper-" + id
}

// Store manages card state persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the card database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("cardstore: empty path")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cardstore: create dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cardstore: open sqlite db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("cardstore: apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS card_state (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at TEXT NOT NULL
    )`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cardstore: migrate: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts state under key.
func (s *Store) Save(key string, state CardState) error {
	if s == nil || s.db == nil {
		return errors.New("cardstore: store is closed")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("cardstore: encode %s: %w", key, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO card_state (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("cardstore: save %s: %w", key, err)
	}
	return nil
}

// Load returns the state stored under key, if any.
func (s *Store) Load(key string) (CardState, bool, error) {
	if s == nil || s.db == nil {
		return CardState{}, false, errors.New("cardstore: store is closed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM card_state WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return CardState{}, false, nil
	}
	if err != nil {
		return CardState{}, false, fmt.Errorf("cardstore: load %s: %w", key, err)
	}
	var state CardState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return CardState{}, false, fmt.Errorf("cardstore: decode %s: %w", key, err)
	}
	return state, true, nil
}
