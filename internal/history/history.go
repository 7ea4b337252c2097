// Package history keeps a local log of rendered queries for the CLI.
//
// Backed by a small SQLite database: one row per rendered query with a
// time-sortable UUIDv7 id. Purely a convenience for `aflux history`; the
// builder itself never touches it.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded query.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Source    string
	Query     string
}

// Store provides durable storage for the query history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at the given path.
// Idempotent: the schema is applied with IF NOT EXISTS.
//
// SQLite supports one writer at a time, so the pool is capped at a single
// connection; WAL mode keeps reads available during writes.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history db: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores one rendered query and returns its id.
func (s *Store) Record(ctx context.Context, source, query string) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	// Fixed-width fractional seconds keep lexical and chronological order
	// identical, so ORDER BY created_at works on the raw text.
	createdAt := time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (id, created_at, source, query) VALUES (?, ?, ?, ?)`,
		id, createdAt, source, query)
	if err != nil {
		return "", fmt.Errorf("record query: %w", err)
	}
	return id, nil
}

// Recent returns the n most recently recorded queries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("recent: n must be positive, got %d", n)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, query FROM queries ORDER BY created_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &createdAt, &e.Source, &e.Query); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
