package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON encodes payload into a pooled buffer, then writes status and body
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages for domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgDuplicateItemError    = "An item with that name already exists"
	ErrMsgItemInUseError        = "Item is used as a material by other recipes"
	ErrMsgInvalidStackError     = "Stack size must be positive"
	ErrMsgCategoryUnknownError  = "Unknown category or rarity"
	ErrMsgInvalidRecipeError    = "Invalid recipe"
	ErrMsgInvalidInputError     = "Invalid input"
	ErrMsgInvalidDocumentPrefix = "Invalid catalog document"
)

// mapServiceErrorToUserMessage converts a service error into a status code
// and a message safe to show to callers. Catalog document errors carry their
// detail since it points at the offending entry.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDuplicateItem):
		return http.StatusConflict, ErrMsgDuplicateItemError
	case errors.Is(err, domain.ErrItemInUse):
		return http.StatusConflict, ErrMsgItemInUseError
	case errors.Is(err, domain.ErrInvalidStack):
		return http.StatusBadRequest, ErrMsgInvalidStackError
	case errors.Is(err, domain.ErrCategoryUnknown):
		return http.StatusBadRequest, ErrMsgCategoryUnknownError
	case errors.Is(err, domain.ErrInvalidRecipe):
		return http.StatusBadRequest, recipeMessage(err)
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, catalog.ErrInvalidDocument):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// recipeMessage keeps the self-reference detail, the one recipe error a
// caller can act on directly.
func recipeMessage(err error) string {
	if strings.Contains(err.Error(), domain.ErrMsgSelfRecipe) {
		return ErrMsgInvalidRecipeError + ": " + domain.ErrMsgSelfRecipe
	}
	return ErrMsgInvalidRecipeError
}

// respondServiceError logs err against the request and writes the mapped
// status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op, "error", err)
	} else {
		log.Warn(op, "error", err, "status", status)
	}
	respondError(w, status, msg)
}
