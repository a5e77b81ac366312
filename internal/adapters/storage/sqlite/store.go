package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
	"github.com/GSMProject-Team/bizzone.kz/internal/ports"
)

// Store keeps each document kind as a JSON payload row in a single sqlite
// table. One row per kind; Save upserts the whole payload, so a single kind
// is always read back complete.
type Store struct {
	db *sql.DB
}

var _ ports.DocumentStore = (*Store)(nil)

// Open creates or opens the database at path and ensures the state table
// exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// sqlite supports one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		kind TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context, kind domain.Kind) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE kind = ?`, string(kind)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s payload: %w", kind, err)
	}

	if !json.Valid(payload) {
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *Store) Save(ctx context.Context, kind domain.Kind, doc []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (kind, payload) VALUES (?, ?)
		 ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload`,
		string(kind), doc)
	if err != nil {
		return fmt.Errorf("upsert %s payload: %w", kind, err)
	}
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state`); err != nil {
		return fmt.Errorf("clear state table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
