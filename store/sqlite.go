package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite stores keys in a single table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database %q: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = datetime('now')
	`, key, value)
	if err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
