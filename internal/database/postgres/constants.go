package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a row is still referenced or references nothing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised by CHECK constraints such as positive stack sizes
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToListItems       = "failed to list items"
	ErrMsgFailedToGetItem         = "failed to get item"
	ErrMsgFailedToScanItem        = "failed to scan item"
	ErrMsgFailedToDeleteItem      = "failed to delete item"
	ErrMsgFailedToUpdateImage     = "failed to update item image"
	ErrMsgFailedToInsertItem      = "failed to insert item"
	ErrMsgFailedToUpdateItem      = "failed to update item"
	ErrMsgFailedToUpsertItem      = "failed to upsert item"
	ErrMsgFailedToListCategories  = "failed to list categories"
	ErrMsgFailedToInsertCategory  = "failed to insert category"
	ErrMsgFailedToListRarities    = "failed to list rarities"
	ErrMsgFailedToGetRecipe       = "failed to get recipe"
	ErrMsgFailedToListRecipes     = "failed to list recipes"
	ErrMsgFailedToDeleteRecipe    = "failed to delete recipe"
	ErrMsgFailedToInsertRecipe    = "failed to insert recipe entry"
	ErrMsgFailedToListUsages      = "failed to list items using material"
	ErrMsgFailedToGetSyncMetadata = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMeta  = "failed to upsert sync metadata"
)

// Error Messages - Stash Operations
const (
	ErrMsgFailedToGetStash    = "failed to get stash"
	ErrMsgFailedToClearStash  = "failed to clear stash"
	ErrMsgFailedToInsertStash = "failed to insert stash entry"
)
