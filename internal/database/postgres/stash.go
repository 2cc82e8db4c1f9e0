package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/repository"
)

// StashRepository implements repository.Stash
type StashRepository struct {
	db *pgxpool.Pool
}

// NewStashRepository creates a new stash repository
func NewStashRepository(db *pgxpool.Pool) *StashRepository {
	return &StashRepository{db: db}
}

var _ repository.Stash = (*StashRepository)(nil)

// GetStash returns the saved set rarest first, then by name
func (r *StashRepository) GetStash(ctx context.Context) ([]domain.StashEntry, error) {
	query := `
		SELECT s.item_id, s.stacks, i.name, c.name, COALESCE(rr.rank, 0)
		FROM stash_items s
		JOIN items i ON i.item_id = s.item_id
		JOIN categories c ON c.category_id = i.category_id
		LEFT JOIN rarities rr ON rr.rarity_id = i.rarity_id
		ORDER BY COALESCE(rr.rank, 0) DESC, i.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStash, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StashEntry, error) {
		var e domain.StashEntry
		err := row.Scan(&e.ItemID, &e.Stacks, &e.Name, &e.Category, &e.RarityRank)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStash, err)
	}
	return entries, nil
}

// ReplaceStash clears the saved set and writes entries in one transaction.
// Entries naming an unknown item fail the whole save with domain.ErrItemNotFound.
func (r *StashRepository) ReplaceStash(ctx context.Context, entries []domain.StashEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM stash_items`); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearStash, err)
	}

	if len(entries) > 0 {
		rows := make([][]any, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []any{e.ItemID, e.Stacks})
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"stash_items"},
			[]string{"item_id", "stacks"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, "stash entry")
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertStash, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
