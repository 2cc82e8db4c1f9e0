package catalog

import "time"

// DefaultCacheTTL bounds how long a snapshot is served without a reload
const DefaultCacheTTL = 5 * time.Minute

// Lock keys for the lock manager
const (
	lockKeyItemFmt     = "catalog:item:%d"
	lockKeyItemNameFmt = "catalog:name:%s"
	lockKeyImport      = "catalog:import"
)

// Write operation labels for metrics
const (
	opCreateItem = "create_item"
	opUpdateItem = "update_item"
	opDeleteItem = "delete_item"
	opSetImage   = "set_image"
	opSaveRecipe = "save_recipe"
	opImport     = "import"
)

// Catalog document
const (
	// SchemaFile is the embedded JSON schema for catalog documents
	SchemaFile = "schemas/catalog.schema.json"
	// DefaultDocumentName is the sync metadata key used when a source has no name
	DefaultDocumentName = "catalog.json"
)

// Error messages
const (
	ErrMsgGetItemFailed       = "failed to get item: %w"
	ErrMsgListItemsFailed     = "failed to list items: %w"
	ErrMsgGetRecipeFailed     = "failed to get recipe: %w"
	ErrMsgBeginTxFailed       = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed      = "failed to commit transaction: %w"
	ErrMsgLoadSnapshotFailed  = "failed to load catalog snapshot: %w"
	ErrMsgReadDocumentFailed  = "failed to read catalog document: %w"
	ErrMsgParseDocumentFailed = "failed to parse catalog document: %w"
	ErrMsgSchemaFailedFmt     = "schema validation failed for %s: %w"
)

// ErrFmtRecipeQuantityTooLarge is wrapped around domain.ErrInvalidRecipe
const ErrFmtRecipeQuantityTooLarge = "%w: material %d quantity exceeds %d"

// Document validation error formats. Each is wrapped around ErrInvalidDocument.
const (
	ErrFmtNoItems           = "%w: no items defined"
	ErrFmtEmptyName         = "%w: item at index %d has an empty name"
	ErrFmtDuplicateName     = "%w: duplicate item name '%s'"
	ErrFmtBadStackSize      = "%w: item '%s' has non-positive stack_size"
	ErrFmtUnknownCategory   = "%w: item '%s' has unknown category '%s'%s"
	ErrFmtUnknownRarity     = "%w: item '%s' has unknown rarity '%s'%s"
	ErrFmtUnknownMaterial   = "%w: item '%s' recipe[%d] references unknown material '%s'%s"
	ErrFmtBadQuantity       = "%w: item '%s' recipe[%d] has non-positive quantity"
	ErrFmtLargeQuantity     = "%w: item '%s' recipe[%d] quantity exceeds %d"
	ErrFmtSelfMaterial      = "%w: item '%s' lists itself as a material"
	ErrFmtDuplicateMaterial = "%w: item '%s' lists material '%s' more than once"
	suggestionFmt           = " (did you mean '%s'?)"
)

// Log messages
const (
	LogMsgSnapshotLoaded      = "Catalog snapshot loaded"
	LogMsgSnapshotStale       = "Catalog changed while loading snapshot, not caching"
	LogMsgItemCreated         = "Item created"
	LogMsgItemUpdated         = "Item updated"
	LogMsgItemDeleted         = "Item deleted"
	LogMsgRecipeSaved         = "Recipe saved"
	LogMsgRecipeEntryDropped  = "Recipe entry dropped"
	LogMsgDocumentUnchanged   = "Catalog document unchanged, skipping import"
	LogMsgImportCompleted     = "Catalog import completed"
	LogMsgImportValidationErr = "Catalog document failed validation"
)
