// Package repository implements the persistence ports over the SQLite
// key-value storage table.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/mandarin-master/internal/entity"
	"github.com/eslsoft/mandarin-master/internal/repository"
)

// Storage keys carried over from the browser build's localStorage.
const (
	progressKey     = "mandarin-master-progress"
	perfectDrawsKey = "mm-perfect-draws"
)

type storageRepository struct {
	db     *sqlx.DB
	logger *logrus.Logger
}

// NewStorageRepository returns both persistence ports backed by one database.
func NewStorageRepository(db *sqlx.DB, logger *logrus.Logger) (repository.ProgressRepository, repository.DrawRepository) {
	if logger == nil {
		logger = logrus.New()
	}
	r := &storageRepository{db: db, logger: logger}
	return r, r
}

func (r *storageRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM storage WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *storageRepository) put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Load reads the persisted record, merging it onto defaults so fields
// introduced in later versions silently default instead of crashing.
// A corrupt blob degrades to defaults with a logged warning.
func (r *storageRepository) Load(ctx context.Context) (*entity.Progress, error) {
	raw, err := r.get(ctx, progressKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	p := entity.NewProgress()
	if err := json.Unmarshal(raw, p); err != nil {
		r.logger.WithError(err).Warn("stored progress is corrupt, starting from defaults")
		return nil, nil
	}
	return p, nil
}

func (r *storageRepository) Save(ctx context.Context, progress *entity.Progress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return r.put(ctx, progressKey, data)
}

func (r *storageRepository) LoadPerfectDraws(ctx context.Context) ([]string, error) {
	raw, err := r.get(ctx, perfectDrawsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []string{}, nil
	}
	var draws []string
	if err := json.Unmarshal(raw, &draws); err != nil {
		r.logger.WithError(err).Warn("stored perfect draws are corrupt, resetting")
		return []string{}, nil
	}
	return draws, nil
}

func (r *storageRepository) SavePerfectDraws(ctx context.Context, hanzi []string) error {
	data, err := json.Marshal(hanzi)
	if err != nil {
		return fmt.Errorf("marshal perfect draws: %w", err)
	}
	return r.put(ctx, perfectDrawsKey, data)
}
