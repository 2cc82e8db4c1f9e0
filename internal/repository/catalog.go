package repository

import (
	"context"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// Catalog defines the interface for item, category and recipe persistence
type Catalog interface {
	// Item operations
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListCraftableItems(ctx context.Context) ([]domain.Item, error)
	ListItemsByCategory(ctx context.Context, categoryID int) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
	SetItemImage(ctx context.Context, id int, imagePath *string) error

	// Lookup tables
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListRarities(ctx context.Context) ([]domain.Rarity, error)

	// Recipe operations
	GetRecipe(ctx context.Context, itemID int) ([]domain.RecipeEntry, error)
	ListAllRecipes(ctx context.Context) ([]domain.RecipeEntry, error)
	ItemsUsingMaterial(ctx context.Context, materialID int) ([]domain.ItemUsage, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)

	// BeginTx starts a transaction for multi-statement catalog writes
	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx defines the writes that must commit together
type CatalogTx interface {
	Tx
	InsertItem(ctx context.Context, in domain.ItemInput) (int, error)
	UpdateItem(ctx context.Context, id int, in domain.ItemInput) error
	// UpsertItemByName inserts or updates the item with in.Name and reports whether it was created
	UpsertItemByName(ctx context.Context, in domain.ItemInput) (int, bool, error)
	InsertCategory(ctx context.Context, name string) (int, error)
	// ReplaceRecipe deletes the item's recipe and inserts materials in its place
	ReplaceRecipe(ctx context.Context, itemID int, materials []domain.RecipeMaterial) error
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
