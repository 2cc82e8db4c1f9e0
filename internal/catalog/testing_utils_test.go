package catalog

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/repository"
)

// memState is the persisted content of the fake repository
type memState struct {
	items      map[int]domain.Item
	categories map[int]string
	recipes    map[int][]domain.RecipeMaterial
	syncMeta   map[string]domain.SyncMetadata
	nextItem   int
	nextCat    int
}

func (s *memState) clone() *memState {
	c := &memState{
		items:      maps.Clone(s.items),
		categories: maps.Clone(s.categories),
		recipes:    make(map[int][]domain.RecipeMaterial, len(s.recipes)),
		syncMeta:   maps.Clone(s.syncMeta),
		nextItem:   s.nextItem,
		nextCat:    s.nextCat,
	}
	for id, r := range s.recipes {
		c.recipes[id] = slices.Clone(r)
	}
	return c
}

// MockRepository is an in-memory repository.Catalog. Transactions work on a
// copy of the state that replaces it on commit.
type MockRepository struct {
	mu    sync.Mutex
	state *memState

	listItemsCalls int
	// listItemsHook runs at the start of ListItems when set
	listItemsHook func(ctx context.Context)

	beginTxErr error
	commitErr  error
}

func NewMockRepository() *MockRepository {
	categories := make(map[int]string, len(domain.CategoryNames))
	for id, name := range domain.CategoryNames {
		categories[id] = name
	}
	return &MockRepository{
		state: &memState{
			items:      make(map[int]domain.Item),
			categories: categories,
			recipes:    make(map[int][]domain.RecipeMaterial),
			syncMeta:   make(map[string]domain.SyncMetadata),
			nextItem:   1,
			nextCat:    len(categories) + 1,
		},
	}
}

// seedItem stores an item directly and returns its id
func (m *MockRepository) seedItem(name string, stackSize, categoryID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.state.nextItem
	m.state.nextItem++
	m.state.items[id] = domain.Item{ID: id, Name: name, StackSize: stackSize, CategoryID: categoryID}
	return id
}

func (m *MockRepository) seedRecipe(itemID int, materials ...domain.RecipeMaterial) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.recipes[itemID] = materials
}

func (m *MockRepository) decorate(s *memState, item domain.Item) domain.Item {
	item.Category = s.categories[item.CategoryID]
	item.Craftable = len(s.recipes[item.ID]) > 0
	return item
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	if m.listItemsHook != nil {
		m.listItemsHook(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listItemsCalls++
	out := make([]domain.Item, 0, len(m.state.items))
	for _, id := range slices.Sorted(maps.Keys(m.state.items)) {
		out = append(out, m.decorate(m.state, m.state.items[id]))
	}
	return out, nil
}

func (m *MockRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.state.items[id]
	if !ok {
		return nil, nil
	}
	item = m.decorate(m.state, item)
	return &item, nil
}

func (m *MockRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.state.items {
		if item.Name == name {
			item = m.decorate(m.state, item)
			return &item, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) ListCraftableItems(ctx context.Context) ([]domain.Item, error) {
	items, _ := m.ListItems(ctx)
	var out []domain.Item
	for _, item := range items {
		if item.Craftable {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockRepository) ListItemsByCategory(ctx context.Context, categoryID int) ([]domain.Item, error) {
	items, _ := m.ListItems(ctx)
	var out []domain.Item
	for _, item := range items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockRepository) DeleteItem(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	for _, recipe := range m.state.recipes {
		for _, mat := range recipe {
			if mat.MaterialID == id {
				return domain.ErrItemInUse
			}
		}
	}
	delete(m.state.items, id)
	delete(m.state.recipes, id)
	return nil
}

func (m *MockRepository) SetItemImage(ctx context.Context, id int, imagePath *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.state.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.ImagePath = imagePath
	m.state.items[id] = item
	return nil
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Category, 0, len(m.state.categories))
	for _, id := range slices.Sorted(maps.Keys(m.state.categories)) {
		out = append(out, domain.Category{ID: id, Name: m.state.categories[id]})
	}
	return out, nil
}

func (m *MockRepository) ListRarities(ctx context.Context) ([]domain.Rarity, error) {
	out := make([]domain.Rarity, 0, len(domain.RarityNames))
	for _, rank := range slices.Sorted(maps.Keys(domain.RarityNames)) {
		out = append(out, domain.Rarity{ID: rank, Name: domain.RarityNames[rank], Rank: rank})
	}
	return out, nil
}

func (m *MockRepository) GetRecipe(ctx context.Context, itemID int) ([]domain.RecipeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries(itemID), nil
}

func (m *MockRepository) entries(itemID int) []domain.RecipeEntry {
	var out []domain.RecipeEntry
	for _, mat := range m.state.recipes[itemID] {
		material := m.state.items[mat.MaterialID]
		out = append(out, domain.RecipeEntry{
			ItemID:            itemID,
			MaterialID:        mat.MaterialID,
			Quantity:          mat.Quantity,
			MaterialName:      material.Name,
			MaterialCategory:  m.state.categories[material.CategoryID],
			MaterialStackSize: material.StackSize,
		})
	}
	return out
}

func (m *MockRepository) ListAllRecipes(ctx context.Context) ([]domain.RecipeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.RecipeEntry
	for _, id := range slices.Sorted(maps.Keys(m.state.recipes)) {
		out = append(out, m.entries(id)...)
	}
	return out, nil
}

func (m *MockRepository) ItemsUsingMaterial(ctx context.Context, materialID int) ([]domain.ItemUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ItemUsage
	for _, id := range slices.Sorted(maps.Keys(m.state.recipes)) {
		for _, mat := range m.state.recipes[id] {
			if mat.MaterialID != materialID {
				continue
			}
			item := m.state.items[id]
			out = append(out, domain.ItemUsage{
				ItemID:    id,
				Name:      item.Name,
				Category:  m.state.categories[item.CategoryID],
				StackSize: item.StackSize,
				Quantity:  mat.Quantity,
			})
		}
	}
	return out, nil
}

func (m *MockRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.state.syncMeta[configName]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	if m.beginTxErr != nil {
		return nil, m.beginTxErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return &mockTx{repo: m, state: m.state.clone()}, nil
}

type mockTx struct {
	repo   *MockRepository
	state  *memState
	closed bool
}

func (t *mockTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New("tx closed")
	}
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.state = t.state
	t.closed = true
	return nil
}

func (t *mockTx) Rollback(ctx context.Context) error {
	t.closed = true
	return nil
}

func (t *mockTx) nameTaken(name string, exceptID int) bool {
	for id, item := range t.state.items {
		if id != exceptID && item.Name == name {
			return true
		}
	}
	return false
}

func (t *mockTx) put(id int, in domain.ItemInput) {
	item := domain.Item{ID: id, Name: in.Name, StackSize: in.StackSize, CategoryID: in.CategoryID, ImagePath: in.ImagePath}
	if in.RarityID != nil {
		item.Rarity = &domain.Rarity{ID: *in.RarityID, Name: domain.RarityNames[*in.RarityID], Rank: *in.RarityID}
	}
	t.state.items[id] = item
}

func (t *mockTx) InsertItem(ctx context.Context, in domain.ItemInput) (int, error) {
	if t.nameTaken(in.Name, 0) {
		return 0, domain.ErrDuplicateItem
	}
	if _, ok := t.state.categories[in.CategoryID]; !ok {
		return 0, domain.ErrCategoryUnknown
	}
	id := t.state.nextItem
	t.state.nextItem++
	t.put(id, in)
	return id, nil
}

func (t *mockTx) UpdateItem(ctx context.Context, id int, in domain.ItemInput) error {
	if _, ok := t.state.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	if t.nameTaken(in.Name, id) {
		return domain.ErrDuplicateItem
	}
	t.put(id, in)
	return nil
}

func (t *mockTx) UpsertItemByName(ctx context.Context, in domain.ItemInput) (int, bool, error) {
	for id, item := range t.state.items {
		if item.Name == in.Name {
			if in.ImagePath == nil {
				in.ImagePath = item.ImagePath
			}
			t.put(id, in)
			return id, false, nil
		}
	}
	id, err := t.InsertItem(ctx, in)
	return id, true, err
}

func (t *mockTx) InsertCategory(ctx context.Context, name string) (int, error) {
	for _, existing := range t.state.categories {
		if strings.EqualFold(existing, name) {
			return 0, errors.New("duplicate category")
		}
	}
	id := t.state.nextCat
	t.state.nextCat++
	t.state.categories[id] = name
	return id, nil
}

func (t *mockTx) ReplaceRecipe(ctx context.Context, itemID int, materials []domain.RecipeMaterial) error {
	if _, ok := t.state.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	for _, mat := range materials {
		if _, ok := t.state.items[mat.MaterialID]; !ok {
			return domain.ErrInvalidRecipe
		}
	}
	if len(materials) == 0 {
		delete(t.state.recipes, itemID)
		return nil
	}
	t.state.recipes[itemID] = slices.Clone(materials)
	return nil
}

func (t *mockTx) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	t.state.syncMeta[metadata.ConfigName] = *metadata
	return nil
}
