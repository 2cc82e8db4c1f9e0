package bootstrap

import (
	"time"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/concurrency"
	"github.com/osse101/ArcLab_Go/internal/planner"
	"github.com/osse101/ArcLab_Go/internal/stash"
)

// Services holds the application services built on the repositories
type Services struct {
	Catalog catalog.Service
	Planner planner.Service
	Stash   stash.Service
	Loader  *catalog.Loader
}

// InitializeServices wires the services. Catalog writes, imports and stash
// saves share one lock manager so writers never interleave per key.
func InitializeServices(repos *Repositories, catalogCacheTTL time.Duration) *Services {
	locks := concurrency.NewLockManager()

	catalogSvc := catalog.NewService(repos.Catalog, locks, catalogCacheTTL)
	plannerSvc := planner.NewService(catalogSvc)

	return &Services{
		Catalog: catalogSvc,
		Planner: plannerSvc,
		Stash:   stash.NewService(repos.Stash, plannerSvc, locks),
		Loader:  catalog.NewLoader(repos.Catalog, catalogSvc, locks),
	}
}
