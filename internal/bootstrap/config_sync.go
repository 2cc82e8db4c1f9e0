package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/scheduler"
	"github.com/osse101/ArcLab_Go/internal/storage"
)

// Importer syncs a catalog document into the database
type Importer interface {
	Import(ctx context.Context, src storage.Source, force bool) (*catalog.ImportResult, error)
}

// OpenCatalogSource resolves a file path or s3:// location. An empty
// location yields a nil source and no error.
func OpenCatalogSource(ctx context.Context, location, region string) (storage.Source, error) {
	if location == "" {
		return nil, nil
	}
	src, err := storage.Open(ctx, location, region)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedOpenCatalog, location, err)
	}
	return src, nil
}

// SyncCatalog imports src at startup. The stored document hash makes an
// unchanged document a no-op. A nil src is skipped.
func SyncCatalog(ctx context.Context, importer Importer, src storage.Source) error {
	if src == nil {
		slog.Info(LogMsgCatalogSourceUnset)
		return nil
	}

	slog.Info(LogMsgSyncingCatalog, "source", src.Name())
	res, err := importer.Import(ctx, src, false)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if res.Unchanged {
		slog.Info(LogMsgCatalogUnchanged, "hash", res.Hash)
		return nil
	}
	slog.Info(LogMsgCatalogSynced,
		"inserted", res.ItemsInserted,
		"updated", res.ItemsUpdated,
		"recipes", res.RecipesReplaced,
		"categories_created", res.CategoriesCreated)
	return nil
}

// CatalogSyncJob re-imports a catalog source on a schedule
func CatalogSyncJob(importer Importer, src storage.Source) scheduler.Job {
	return scheduler.JobFunc(func(ctx context.Context) error {
		return SyncCatalog(ctx, importer, src)
	})
}
