package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On failure the response has already been written and the caller should
// return.
//
//	var req ItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalBoolParam parses a boolean query parameter. ok is false when
// the value is present but not a boolean; the response has then been written.
func GetOptionalBoolParam(r *http.Request, w http.ResponseWriter, paramName string, message string) (value bool, ok bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return false, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, message)
		return false, false
	}
	return value, true
}

// itemIDParam reads the {id} route parameter as a positive item id
func itemIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return 0, false
	}
	return id, true
}
