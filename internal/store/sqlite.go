package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT PRIMARY KEY,
	body       BLOB NOT NULL
);`

// sqliteStore keeps every collection document in a single embedded
// database table, keyed by collection name. Still strictly
// whole-document: one row per collection, replaced in full on save.
type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures
// the documents table exists.
func NewSQLiteStore(path string) (DocumentStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	if _, err := db.Exec(documentsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Load(ctx context.Context, collection string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ?`, collection,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", collection, err)
	}
	return body, nil
}

func (s *sqliteStore) Save(ctx context.Context, collection string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, body) VALUES (?, ?)
		 ON CONFLICT(collection) DO UPDATE SET body = excluded.body`,
		collection, data,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", collection, err)
	}
	return nil
}
