package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ArcLab_Go/internal/database/postgres"
	"github.com/osse101/ArcLab_Go/internal/repository"
)

// Repositories holds the Postgres-backed repositories
type Repositories struct {
	Catalog repository.Catalog
	Stash   repository.Stash
}

// InitializeRepositories creates every repository on one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog: postgres.NewCatalogRepository(dbPool),
		Stash:   postgres.NewStashRepository(dbPool),
	}
}
