package localstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dental_lab/internal/usecase/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS local_storage (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);`

// SQLiteStore keeps per-owner key/value blobs in a single sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating when needed) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite has a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ForOwner returns the storage view of one owner.
func (s *SQLiteStore) ForOwner(ownerID string) interfaces.ILocalStorage {
	return &sqliteNamespace{db: s.db, namespace: ownerID}
}

type sqliteNamespace struct {
	db        *sql.DB
	namespace string
}

var _ interfaces.ILocalStorage = (*sqliteNamespace)(nil)

func (n *sqliteNamespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := n.db.QueryRowContext(ctx,
		`SELECT value FROM local_storage WHERE namespace = ? AND key = ?`,
		n.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (n *sqliteNamespace) Set(ctx context.Context, key string, value []byte) error {
	_, err := n.db.ExecContext(ctx,
		`INSERT INTO local_storage (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		n.namespace, key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (n *sqliteNamespace) Remove(ctx context.Context, key string) error {
	_, err := n.db.ExecContext(ctx,
		`DELETE FROM local_storage WHERE namespace = ? AND key = ?`,
		n.namespace, key,
	)
	return err
}
