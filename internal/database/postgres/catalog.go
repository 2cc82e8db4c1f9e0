package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/repository"
)

const itemColumns = `
	i.item_id, i.name, i.stack_size, i.category_id, c.name,
	i.rarity_id, r.name, r.rank, i.image_path, i.created_at,
	EXISTS (SELECT 1 FROM recipes rc WHERE rc.item_id = i.item_id)`

const itemJoins = `
	FROM items i
	JOIN categories c ON c.category_id = i.category_id
	LEFT JOIN rarities r ON r.rarity_id = i.rarity_id`

const recipeSelect = `
	SELECT rc.item_id, rc.material_id, rc.quantity, m.name, c.name, m.stack_size
	FROM recipes rc
	JOIN items m ON m.item_id = rc.material_id
	JOIN categories c ON c.category_id = m.category_id`

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ repository.Catalog = (*CatalogRepository)(nil)

func scanItem(row scanner) (domain.Item, error) {
	var (
		item       domain.Item
		rarityID   *int
		rarityName *string
		rarityRank *int
	)
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.StackSize,
		&item.CategoryID,
		&item.Category,
		&rarityID,
		&rarityName,
		&rarityRank,
		&item.ImagePath,
		&item.CreatedAt,
		&item.Craftable,
	)
	if err != nil {
		return domain.Item{}, err
	}
	if rarityID != nil && rarityName != nil && rarityRank != nil {
		item.Rarity = &domain.Rarity{ID: *rarityID, Name: *rarityName, Rank: *rarityRank}
	}
	return item, nil
}

func itemRow(row pgx.CollectableRow) (domain.Item, error) {
	return scanItem(row)
}

func (r *CatalogRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	items, err := pgx.CollectRows(rows, itemRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanItem, err)
	}
	return items, nil
}

func (r *CatalogRepository) getItem(ctx context.Context, where string, arg any) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, "SELECT"+itemColumns+itemJoins+" WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return &item, nil
}

// ListItems returns every item ordered by category then name
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	return r.queryItems(ctx, "SELECT"+itemColumns+itemJoins+" ORDER BY c.name, i.name")
}

// GetItemByID returns nil when no item has the id
func (r *CatalogRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	return r.getItem(ctx, "i.item_id = $1", id)
}

// GetItemByName returns nil when no item has the name
func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return r.getItem(ctx, "i.name = $1", name)
}

// ListCraftableItems returns items that have at least one recipe entry
func (r *CatalogRepository) ListCraftableItems(ctx context.Context) ([]domain.Item, error) {
	query := "SELECT" + itemColumns + itemJoins + `
		WHERE EXISTS (SELECT 1 FROM recipes x WHERE x.item_id = i.item_id)
		ORDER BY c.name, i.name`
	return r.queryItems(ctx, query)
}

// ListItemsByCategory returns the items of one category ordered by name
func (r *CatalogRepository) ListItemsByCategory(ctx context.Context, categoryID int) ([]domain.Item, error) {
	return r.queryItems(ctx, "SELECT"+itemColumns+itemJoins+" WHERE i.category_id = $1 ORDER BY i.name", categoryID)
}

// DeleteItem removes an item with its recipe and stash row. Items still used
// as a material by another recipe are refused with domain.ErrItemInUse.
func (r *CatalogRepository) DeleteItem(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return domain.ErrItemInUse
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// SetItemImage replaces the image path. A nil path clears it.
func (r *CatalogRepository) SetItemImage(ctx context.Context, id int, imagePath *string) error {
	tag, err := r.db.Exec(ctx, `UPDATE items SET image_path = $2 WHERE item_id = $1`, id, imagePath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateImage, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ListCategories returns all categories ordered by id
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT category_id, name FROM categories ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	return categories, nil
}

// ListRarities returns all rarities from most common to rarest
func (r *CatalogRepository) ListRarities(ctx context.Context) ([]domain.Rarity, error) {
	rows, err := r.db.Query(ctx, `SELECT rarity_id, name, rank FROM rarities ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRarities, err)
	}
	rarities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Rarity, error) {
		var rr domain.Rarity
		err := row.Scan(&rr.ID, &rr.Name, &rr.Rank)
		return rr, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRarities, err)
	}
	return rarities, nil
}

func recipeRow(row pgx.CollectableRow) (domain.RecipeEntry, error) {
	var e domain.RecipeEntry
	err := row.Scan(&e.ItemID, &e.MaterialID, &e.Quantity, &e.MaterialName, &e.MaterialCategory, &e.MaterialStackSize)
	return e, err
}

// GetRecipe returns the recipe of one item ordered by material name. An item
// without a recipe yields an empty slice.
func (r *CatalogRepository) GetRecipe(ctx context.Context, itemID int) ([]domain.RecipeEntry, error) {
	rows, err := r.db.Query(ctx, recipeSelect+" WHERE rc.item_id = $1 ORDER BY m.name", itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	entries, err := pgx.CollectRows(rows, recipeRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	return entries, nil
}

// ListAllRecipes returns every recipe entry grouped by item
func (r *CatalogRepository) ListAllRecipes(ctx context.Context) ([]domain.RecipeEntry, error) {
	rows, err := r.db.Query(ctx, recipeSelect+" ORDER BY rc.item_id, m.name")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	entries, err := pgx.CollectRows(rows, recipeRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	return entries, nil
}

// ItemsUsingMaterial lists the items whose recipe consumes materialID
func (r *CatalogRepository) ItemsUsingMaterial(ctx context.Context, materialID int) ([]domain.ItemUsage, error) {
	query := `
		SELECT i.item_id, i.name, c.name, i.stack_size, rc.quantity
		FROM recipes rc
		JOIN items i ON i.item_id = rc.item_id
		JOIN categories c ON c.category_id = i.category_id
		WHERE rc.material_id = $1
		ORDER BY c.name, i.name
	`
	rows, err := r.db.Query(ctx, query, materialID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListUsages, err)
	}
	usages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ItemUsage, error) {
		var u domain.ItemUsage
		err := row.Scan(&u.ItemID, &u.Name, &u.Category, &u.StackSize, &u.Quantity)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListUsages, err)
	}
	return usages, nil
}

// GetSyncMetadata returns nil when the document was never imported
func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	query := `
		SELECT config_name, last_sync_time, file_hash
		FROM sync_metadata
		WHERE config_name = $1
	`
	var meta domain.SyncMetadata
	err := r.db.QueryRow(ctx, query, configName).Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// BeginTx starts a catalog write transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &catalogTx{tx: tx}, nil
}

// catalogTx runs catalog writes inside one pgx transaction
type catalogTx struct {
	tx pgx.Tx
}

func (t *catalogTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *catalogTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// itemWriteError maps constraint violations on items to domain errors
func itemWriteError(msg string, err error) error {
	switch pgErrorCode(err) {
	case PgErrorCodeUniqueViolation:
		return domain.ErrDuplicateItem
	case PgErrorCodeForeignKeyViolation:
		return domain.ErrCategoryUnknown
	case PgErrorCodeCheckViolation:
		return domain.ErrInvalidStack
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (t *catalogTx) InsertItem(ctx context.Context, in domain.ItemInput) (int, error) {
	query := `
		INSERT INTO items (name, stack_size, category_id, rarity_id, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING item_id
	`
	var id int
	err := t.tx.QueryRow(ctx, query, in.Name, in.StackSize, in.CategoryID, in.RarityID, in.ImagePath).Scan(&id)
	if err != nil {
		return 0, itemWriteError(ErrMsgFailedToInsertItem, err)
	}
	return id, nil
}

func (t *catalogTx) UpdateItem(ctx context.Context, id int, in domain.ItemInput) error {
	query := `
		UPDATE items
		SET name = $2, stack_size = $3, category_id = $4, rarity_id = $5, image_path = $6
		WHERE item_id = $1
	`
	tag, err := t.tx.Exec(ctx, query, id, in.Name, in.StackSize, in.CategoryID, in.RarityID, in.ImagePath)
	if err != nil {
		return itemWriteError(ErrMsgFailedToUpdateItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// UpsertItemByName keeps the stored image when in carries none
func (t *catalogTx) UpsertItemByName(ctx context.Context, in domain.ItemInput) (int, bool, error) {
	query := `
		INSERT INTO items (name, stack_size, category_id, rarity_id, image_path)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET stack_size = EXCLUDED.stack_size,
		    category_id = EXCLUDED.category_id,
		    rarity_id = EXCLUDED.rarity_id,
		    image_path = COALESCE(EXCLUDED.image_path, items.image_path)
		RETURNING item_id, (xmax = 0)
	`
	var (
		id      int
		created bool
	)
	err := t.tx.QueryRow(ctx, query, in.Name, in.StackSize, in.CategoryID, in.RarityID, in.ImagePath).Scan(&id, &created)
	if err != nil {
		return 0, false, itemWriteError(ErrMsgFailedToUpsertItem, err)
	}
	return id, created, nil
}

func (t *catalogTx) InsertCategory(ctx context.Context, name string) (int, error) {
	var id int
	err := t.tx.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING category_id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertCategory, err)
	}
	return id, nil
}

// ReplaceRecipe swaps the item's recipe for materials. An empty list leaves
// the item with no recipe.
func (t *catalogTx) ReplaceRecipe(ctx context.Context, itemID int, materials []domain.RecipeMaterial) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM recipes WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	if len(materials) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range materials {
		batch.Queue(`INSERT INTO recipes (item_id, material_id, quantity) VALUES ($1, $2, $3)`,
			itemID, m.MaterialID, m.Quantity)
	}
	results := t.tx.SendBatch(ctx, batch)
	defer results.Close()

	for range materials {
		if _, err := results.Exec(); err != nil {
			switch pgErrorCode(err) {
			case PgErrorCodeForeignKeyViolation:
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, "recipe material")
			case PgErrorCodeUniqueViolation, PgErrorCodeCheckViolation:
				return fmt.Errorf("%w: %v", domain.ErrInvalidRecipe, err)
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
		}
	}
	return nil
}

func (t *catalogTx) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	query := `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash
	`
	if _, err := t.tx.Exec(ctx, query, metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMeta, err)
	}
	return nil
}
