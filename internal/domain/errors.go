package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgDuplicateItem   = "item name already exists"
	ErrMsgItemInUse       = "item is used by other recipes"
	ErrMsgInvalidStack    = "stack size must be positive"
	ErrMsgCategoryUnknown = "unknown category"

	// Recipe errors
	ErrMsgInvalidRecipe = "invalid recipe"
	ErrMsgSelfRecipe    = "item cannot be its own material"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItem   = errors.New(ErrMsgDuplicateItem)
	ErrItemInUse       = errors.New(ErrMsgItemInUse)
	ErrInvalidStack    = errors.New(ErrMsgInvalidStack)
	ErrCategoryUnknown = errors.New(ErrMsgCategoryUnknown)

	// Recipe errors
	ErrInvalidRecipe = errors.New(ErrMsgInvalidRecipe)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
