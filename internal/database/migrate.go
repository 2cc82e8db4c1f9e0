package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the embedded goose migration files
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, migrationsDir)
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

// Migrate brings the schema up to the latest embedded migration
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, Migrations())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	if len(results) == 0 {
		log.Info(LogMsgMigrationsUpToDate)
		return nil
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}
