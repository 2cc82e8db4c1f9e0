package repository

import (
	"context"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// Stash defines the interface for the persisted desired set
type Stash interface {
	GetStash(ctx context.Context) ([]domain.StashEntry, error)
	// ReplaceStash swaps the whole saved set for entries in one transaction
	ReplaceStash(ctx context.Context, entries []domain.StashEntry) error
}
