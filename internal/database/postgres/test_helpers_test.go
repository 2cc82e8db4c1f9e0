package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ArcLab_Go/internal/database"
	"github.com/osse101/ArcLab_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupDatabase starts a postgres container and migrates it. Failures leave
// testPool nil so integration tests skip.
func setupDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, connStr, database.PoolOptions{MaxConns: 10})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return terminate
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return terminate
}

// requirePool skips integration tests without a database and truncates the
// catalog tables so every test starts from the seeded lookups only
func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	_, err := testPool.Exec(context.Background(),
		`TRUNCATE stash_items, recipes, items, sync_metadata RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	_, err = testPool.Exec(context.Background(), `DELETE FROM categories WHERE category_id > 8`)
	require.NoError(t, err)
	return testPool
}

// insertItem writes one item through a committed transaction
func insertItem(t *testing.T, repo *CatalogRepository, name string, stackSize, categoryID int) int {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	id, err := tx.InsertItem(ctx, domain.ItemInput{Name: name, StackSize: stackSize, CategoryID: categoryID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	return id
}

// setRecipe replaces an item's recipe through a committed transaction
func setRecipe(t *testing.T, repo *CatalogRepository, itemID int, materials ...domain.RecipeMaterial) {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.ReplaceRecipe(ctx, itemID, materials))
	require.NoError(t, tx.Commit(ctx))
}
