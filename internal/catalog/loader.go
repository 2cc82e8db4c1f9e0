package catalog

import (
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/ArcLab_Go/internal/concurrency"
	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/metrics"
	"github.com/osse101/ArcLab_Go/internal/repository"
	"github.com/osse101/ArcLab_Go/internal/storage"
	"github.com/osse101/ArcLab_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ImportResult summarizes one catalog import
type ImportResult struct {
	Document          string
	Hash              string
	Unchanged         bool
	ItemsInserted     int
	ItemsUpdated      int
	RecipesReplaced   int
	CategoriesCreated int
}

// Loader imports catalog documents into the database
type Loader struct {
	repo            repository.Catalog
	catalog         Service
	lockManager     *concurrency.LockManager
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader. The catalog service's snapshot is invalidated
// after every successful import.
func NewLoader(repo repository.Catalog, catalog Service, lockManager *concurrency.LockManager) *Loader {
	return &Loader{
		repo:            repo,
		catalog:         catalog,
		lockManager:     lockManager,
		schemaValidator: NewSchemaValidator(),
	}
}

// NewSchemaValidator returns a validator that knows the embedded catalog schema
func NewSchemaValidator() validation.SchemaValidator {
	return validation.NewSchemaValidator(schemaFS)
}

// ParseDocument checks data against the catalog schema and decodes it
func ParseDocument(v validation.SchemaValidator, name string, data []byte) (*Document, error) {
	if err := v.ValidateBytes(data, SchemaFile); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, name, errors.Join(ErrInvalidDocument, err))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseDocumentFailed, err)
	}
	return &doc, nil
}

// Load reads and decodes a document without touching the database
func (l *Loader) Load(ctx context.Context, src storage.Source) (*Document, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDocumentFailed, err)
	}
	return ParseDocument(l.schemaValidator, documentName(src), data)
}

// Import reads a document from src, validates it against itself and the
// current catalog, and applies it in one transaction: categories it lists
// are created, items are upserted by name and every listed recipe is
// replaced. A document whose hash matches the last import is skipped
// unless force is set.
func (l *Loader) Import(ctx context.Context, src storage.Source, force bool) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	unlock := l.lockManager.Lock(lockKeyImport)
	defer unlock()

	name := documentName(src)
	data, err := src.Load(ctx)
	if err != nil {
		metrics.CatalogImports.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf(ErrMsgReadDocumentFailed, err)
	}

	sum := sha256.Sum256(data)
	result := &ImportResult{Document: name, Hash: hex.EncodeToString(sum[:])}

	if !force {
		meta, err := l.repo.GetSyncMetadata(ctx, name)
		if err != nil {
			metrics.CatalogImports.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("failed to get sync metadata: %w", err)
		}
		if meta != nil && meta.FileHash == result.Hash {
			log.Info(LogMsgDocumentUnchanged, "document", name)
			metrics.CatalogImports.WithLabelValues(metrics.OutcomeUnchanged).Inc()
			result.Unchanged = true
			return result, nil
		}
	}

	doc, err := ParseDocument(l.schemaValidator, name, data)
	if err != nil {
		log.Warn(LogMsgImportValidationErr, "document", name, "error", err)
		metrics.CatalogImports.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	state, err := l.loadState(ctx)
	if err != nil {
		metrics.CatalogImports.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}

	if err := doc.Validate(state.reference()); err != nil {
		log.Warn(LogMsgImportValidationErr, "document", name, "error", err)
		metrics.CatalogImports.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	if err := l.apply(ctx, doc, state, result); err != nil {
		metrics.CatalogImports.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}

	l.catalog.Invalidate()
	metrics.CatalogImports.WithLabelValues(metrics.OutcomeImported).Inc()
	metrics.CatalogWrites.WithLabelValues(opImport).Inc()

	log.Info(LogMsgImportCompleted,
		"document", name,
		"version", doc.Version,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"recipes", result.RecipesReplaced,
		"categories", result.CategoriesCreated)

	return result, nil
}

// catalogState is the part of the current catalog an import resolves against
type catalogState struct {
	itemIDs     map[string]int
	categoryIDs map[string]int
	rarityIDs   map[string]int
	categories  []string
	rarities    []string
}

func (l *Loader) loadState(ctx context.Context) (*catalogState, error) {
	items, err := l.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	categories, err := l.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	rarities, err := l.repo.ListRarities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rarities: %w", err)
	}

	state := &catalogState{
		itemIDs:     make(map[string]int, len(items)),
		categoryIDs: make(map[string]int, len(categories)),
		rarityIDs:   make(map[string]int, len(rarities)),
	}
	for _, item := range items {
		state.itemIDs[item.Name] = item.ID
	}
	for _, c := range categories {
		state.categoryIDs[strings.ToLower(c.Name)] = c.ID
		state.categories = append(state.categories, c.Name)
	}
	for _, r := range rarities {
		state.rarityIDs[strings.ToLower(r.Name)] = r.ID
		state.rarities = append(state.rarities, r.Name)
	}
	return state, nil
}

func (s *catalogState) reference() Reference {
	names := make([]string, 0, len(s.itemIDs))
	for name := range s.itemIDs {
		names = append(names, name)
	}
	return Reference{ItemNames: names, Categories: s.categories, Rarities: s.rarities}
}

func (l *Loader) apply(ctx context.Context, doc *Document, state *catalogState, result *ImportResult) error {
	tx, err := l.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	for _, name := range doc.Categories {
		key := strings.ToLower(name)
		if _, ok := state.categoryIDs[key]; ok {
			continue
		}
		id, err := tx.InsertCategory(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to insert category '%s': %w", name, err)
		}
		state.categoryIDs[key] = id
		result.CategoriesCreated++
	}

	for _, def := range doc.Items {
		in := domain.ItemInput{
			Name:       def.Name,
			StackSize:  def.StackSize,
			CategoryID: state.categoryIDs[strings.ToLower(def.Category)],
		}
		if def.Rarity != "" {
			rarityID := state.rarityIDs[strings.ToLower(def.Rarity)]
			in.RarityID = &rarityID
		}
		if def.ImagePath != "" {
			path := def.ImagePath
			in.ImagePath = &path
		}

		id, created, err := tx.UpsertItemByName(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to upsert item '%s': %w", def.Name, err)
		}
		state.itemIDs[def.Name] = id
		if created {
			result.ItemsInserted++
		} else {
			result.ItemsUpdated++
		}
	}

	for _, def := range doc.Items {
		if def.Recipe == nil {
			continue
		}
		materials := make([]domain.RecipeMaterial, 0, len(def.Recipe))
		for _, m := range def.Recipe {
			materials = append(materials, domain.RecipeMaterial{
				MaterialID: state.itemIDs[m.Material],
				Quantity:   m.Quantity,
			})
		}
		if err := tx.ReplaceRecipe(ctx, state.itemIDs[def.Name], materials); err != nil {
			return fmt.Errorf("failed to replace recipe for '%s': %w", def.Name, err)
		}
		result.RecipesReplaced++
	}

	if err := tx.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   result.Document,
		LastSyncTime: time.Now(),
		FileHash:     result.Hash,
	}); err != nil {
		return fmt.Errorf("failed to update sync metadata: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return nil
}

func documentName(src storage.Source) string {
	if name := src.Name(); name != "" {
		return name
	}
	return DefaultDocumentName
}
