// Package repository defines the persistence ports the usecases depend on.
package repository

import (
	"context"

	"github.com/eslsoft/mandarin-master/internal/entity"
)

// ProgressRepository persists the single progression record. Load returns
// (nil, nil) when no record has been saved yet; the caller supplies defaults.
type ProgressRepository interface {
	Load(ctx context.Context) (*entity.Progress, error)
	Save(ctx context.Context, progress *entity.Progress) error
}

// DrawRepository persists the set of characters the player has drawn with
// zero stroke mistakes, keyed by hanzi (the stroke widget reports hanzi,
// not vocabulary ids).
type DrawRepository interface {
	LoadPerfectDraws(ctx context.Context) ([]string, error)
	SavePerfectDraws(ctx context.Context, hanzi []string) error
}
