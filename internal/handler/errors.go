package handler

// Client-facing error messages. Internal error detail is logged, never returned.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidItemID     = "Invalid item ID"

	// Catalog
	ErrMsgListItemsFailed      = "Failed to list items"
	ErrMsgListCategoriesFailed = "Failed to list categories"
	ErrMsgListRaritiesFailed   = "Failed to list rarities"
	ErrMsgGetItemFailed        = "Failed to get item"
	ErrMsgCreateItemFailed     = "Failed to create item"
	ErrMsgUpdateItemFailed     = "Failed to update item"
	ErrMsgDeleteItemFailed     = "Failed to delete item"
	ErrMsgSetImageFailed       = "Failed to update item image"
	ErrMsgSaveRecipeFailed     = "Failed to save recipe"

	// Planning
	ErrMsgPlanLoadoutFailed = "Failed to plan loadout"
	ErrMsgLoadStashFailed   = "Failed to load stash"
	ErrMsgSaveStashFailed   = "Failed to save stash"

	// Admin
	ErrMsgNoCatalogSource = "No catalog source configured"
	ErrMsgImportFailed    = "Failed to import catalog"
	ErrMsgInvalidForce    = "Invalid force parameter"
)

// Success messages returned in JSON bodies
const (
	MsgItemDeleted      = "Item deleted"
	MsgImageUpdated     = "Image updated"
	MsgRecipeSaved      = "Recipe saved"
	MsgCatalogImported  = "Catalog imported"
	MsgCatalogUnchanged = "Catalog unchanged"
	MsgCacheInvalidated = "Catalog cache invalidated"
)
