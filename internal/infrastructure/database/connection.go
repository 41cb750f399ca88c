// Package database opens the local SQLite file backing the progress store.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eslsoft/mandarin-master/internal/infrastructure/config"
)

// schema mirrors the browser build's localStorage: one value per well-known key.
const schema = `
CREATE TABLE IF NOT EXISTS storage (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// NewConnection opens (creating if needed) the database at the configured path.
func NewConnection(cfg *config.Config) (*sqlx.DB, error) {
	dir := filepath.Dir(cfg.Storage.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	return db, nil
}
