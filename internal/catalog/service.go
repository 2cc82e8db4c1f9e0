package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/ArcLab_Go/internal/concurrency"
	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/metrics"
	"github.com/osse101/ArcLab_Go/internal/repository"
	"github.com/osse101/ArcLab_Go/internal/validation"
)

// Service defines the interface for catalog operations
type Service interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListRarities(ctx context.Context) ([]domain.Rarity, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	GetRecipe(ctx context.Context, itemID int) ([]domain.RecipeEntry, error)
	ListCraftableItems(ctx context.Context) ([]domain.Item, error)
	ListCraftingMaterials(ctx context.Context) ([]domain.Item, error)
	ItemsUsingMaterial(ctx context.Context, materialID int) ([]domain.ItemUsage, error)

	// CreateItem inserts an item and, when recipe is non-empty, its recipe
	CreateItem(ctx context.Context, in domain.ItemInput, recipe []domain.RecipeMaterial) (*domain.Item, error)
	// UpdateItem edits an item. A nil recipe leaves the saved recipe alone;
	// a non-nil one replaces it.
	UpdateItem(ctx context.Context, id int, in domain.ItemInput, recipe []domain.RecipeMaterial) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
	SetItemImage(ctx context.Context, id int, imagePath *string) error
	SaveRecipe(ctx context.Context, itemID int, materials []domain.RecipeMaterial) error

	// Snapshot returns a consistent in-memory view of the whole catalog
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Invalidate drops the cached snapshot
	Invalidate()
}

type service struct {
	repo        repository.Catalog
	lockManager *concurrency.LockManager
	cache       *snapshotCache
	loads       singleflight.Group
	validate    *validator.Validate
}

// NewService creates a new catalog service. A non-positive cacheTTL uses
// DefaultCacheTTL.
func NewService(repo repository.Catalog, lockManager *concurrency.LockManager, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:        repo,
		lockManager: lockManager,
		cache:       newSnapshotCache(cacheTTL),
		validate:    validation.NewStructValidator(),
	}
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) ListRarities(ctx context.Context) ([]domain.Rarity, error) {
	return s.repo.ListRarities(ctx)
}

// GetItem returns the item or domain.ErrItemNotFound
func (s *service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	return item, nil
}

func (s *service) GetRecipe(ctx context.Context, itemID int) ([]domain.RecipeEntry, error) {
	recipe, err := s.repo.GetRecipe(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRecipeFailed, err)
	}
	return recipe, nil
}

func (s *service) ListCraftableItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListCraftableItems(ctx)
}

// ListCraftingMaterials returns the items offered as recipe materials
func (s *service) ListCraftingMaterials(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItemsByCategory(ctx, domain.CategoryCraftingMaterial)
}

func (s *service) ItemsUsingMaterial(ctx context.Context, materialID int) ([]domain.ItemUsage, error) {
	return s.repo.ItemsUsingMaterial(ctx, materialID)
}

func (s *service) CreateItem(ctx context.Context, in domain.ItemInput, recipe []domain.RecipeMaterial) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	unlock := s.lockManager.Lock(fmt.Sprintf(lockKeyItemNameFmt, in.Name))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	id, err := tx.InsertItem(ctx, in)
	if err != nil {
		return nil, err
	}

	if len(recipe) > 0 {
		materials, err := cleanRecipe(ctx, id, recipe)
		if err != nil {
			return nil, err
		}
		if err := tx.ReplaceRecipe(ctx, id, materials); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	s.written(opCreateItem)

	log.Info(LogMsgItemCreated, "item_id", id, "name", in.Name)
	return s.GetItem(ctx, id)
}

func (s *service) UpdateItem(ctx context.Context, id int, in domain.ItemInput, recipe []domain.RecipeMaterial) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	// a rename contends with a create of the same name
	unlock := s.lockManager.Lock(fmt.Sprintf(lockKeyItemFmt, id), fmt.Sprintf(lockKeyItemNameFmt, in.Name))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpdateItem(ctx, id, in); err != nil {
		return nil, err
	}

	if recipe != nil {
		materials, err := cleanRecipe(ctx, id, recipe)
		if err != nil {
			return nil, err
		}
		if err := tx.ReplaceRecipe(ctx, id, materials); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	s.written(opUpdateItem)

	log.Info(LogMsgItemUpdated, "item_id", id)
	return s.GetItem(ctx, id)
}

// DeleteItem removes an item and its recipe. An item still used as a
// material fails with domain.ErrItemInUse.
func (s *service) DeleteItem(ctx context.Context, id int) error {
	unlock := s.lockManager.Lock(fmt.Sprintf(lockKeyItemFmt, id))
	defer unlock()

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.written(opDeleteItem)

	logger.FromContext(ctx).Info(LogMsgItemDeleted, "item_id", id)
	return nil
}

func (s *service) SetItemImage(ctx context.Context, id int, imagePath *string) error {
	unlock := s.lockManager.Lock(fmt.Sprintf(lockKeyItemFmt, id))
	defer unlock()

	if err := s.repo.SetItemImage(ctx, id, imagePath); err != nil {
		return err
	}
	s.written(opSetImage)
	return nil
}

// SaveRecipe replaces an item's recipe in one transaction. Entries without
// a material or with a non-positive quantity are dropped; an entry naming
// the item itself fails with domain.ErrInvalidRecipe.
func (s *service) SaveRecipe(ctx context.Context, itemID int, materials []domain.RecipeMaterial) error {
	cleaned, err := cleanRecipe(ctx, itemID, materials)
	if err != nil {
		return err
	}

	unlock := s.lockManager.Lock(fmt.Sprintf(lockKeyItemFmt, itemID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.ReplaceRecipe(ctx, itemID, cleaned); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	s.written(opSaveRecipe)

	logger.FromContext(ctx).Info(LogMsgRecipeSaved, "item_id", itemID, "materials", len(cleaned))
	return nil
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		metrics.CatalogSnapshotLookups.WithLabelValues(metrics.ResultHit).Inc()
		return snap, nil
	}
	metrics.CatalogSnapshotLookups.WithLabelValues(metrics.ResultMiss).Inc()

	// Concurrent misses share one load. It must outlive the caller that
	// started it, so it runs detached from that caller's cancellation.
	ch := s.loads.DoChan(snapshotCacheKey, func() (interface{}, error) {
		return s.loadSnapshot(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

func (s *service) loadSnapshot(ctx context.Context) (*Snapshot, error) {
	gen := s.cache.Generation()

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSnapshotFailed, err)
	}
	recipes, err := s.repo.ListAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSnapshotFailed, err)
	}

	snap := NewSnapshot(items, recipes)
	log := logger.FromContext(ctx)
	if s.cache.Set(snap, gen) {
		log.Debug(LogMsgSnapshotLoaded, "items", snap.Len(), "recipe_entries", len(recipes))
	} else {
		log.Debug(LogMsgSnapshotStale)
	}
	return snap, nil
}

func (s *service) Invalidate() {
	s.cache.Invalidate()
}

func (s *service) validateInput(in domain.ItemInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// written records a successful write and drops the cached snapshot
func (s *service) written(op string) {
	s.cache.Invalidate()
	metrics.CatalogWrites.WithLabelValues(op).Inc()
}

// cleanRecipe drops unusable entries and rejects self-references. Duplicate
// materials are merged by summing their quantities.
func cleanRecipe(ctx context.Context, itemID int, materials []domain.RecipeMaterial) ([]domain.RecipeMaterial, error) {
	log := logger.FromContext(ctx)

	out := make([]domain.RecipeMaterial, 0, len(materials))
	index := make(map[int]int, len(materials))
	for _, m := range materials {
		if m.MaterialID <= 0 || m.Quantity <= 0 {
			log.Debug(LogMsgRecipeEntryDropped, "item_id", itemID, "material_id", m.MaterialID, "quantity", m.Quantity)
			continue
		}
		if m.MaterialID == itemID {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRecipe, domain.ErrMsgSelfRecipe)
		}
		if i, ok := index[m.MaterialID]; ok {
			out[i].Quantity += m.Quantity
			if out[i].Quantity > domain.MaxRecipeQuantity {
				return nil, fmt.Errorf(ErrFmtRecipeQuantityTooLarge, domain.ErrInvalidRecipe, m.MaterialID, domain.MaxRecipeQuantity)
			}
			continue
		}
		if m.Quantity > domain.MaxRecipeQuantity {
			return nil, fmt.Errorf(ErrFmtRecipeQuantityTooLarge, domain.ErrInvalidRecipe, m.MaterialID, domain.MaxRecipeQuantity)
		}
		index[m.MaterialID] = len(out)
		out = append(out, m)
	}
	return out, nil
}
