package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore keeps every slot as a JSON blob in a single slots table of a
// local SQLite database. Same single-device durability contract as
// FileStore, selected via STORE_BACKEND=sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the slots table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "./data/healthboard.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// The store is single-writer; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Load(slot string, v any) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
	}
	if err != nil {
		return fmt.Errorf("read slot %q: %w", slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return nil
}

func (s *SQLiteStore) Save(slot string, v any) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, slot, string(data)); err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(slot string) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	if _, err := s.db.Exec(`DELETE FROM slots WHERE key = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}
