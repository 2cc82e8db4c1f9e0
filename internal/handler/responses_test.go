package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"wrapped not found", fmt.Errorf("lookup: %w", fmt.Errorf("%w: 12", domain.ErrItemNotFound)), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"duplicate", domain.ErrDuplicateItem, http.StatusConflict, ErrMsgDuplicateItemError},
		{"in use", domain.ErrItemInUse, http.StatusConflict, ErrMsgItemInUseError},
		{"bad stack", domain.ErrInvalidStack, http.StatusBadRequest, ErrMsgInvalidStackError},
		{"unknown category", domain.ErrCategoryUnknown, http.StatusBadRequest, ErrMsgCategoryUnknownError},
		{"invalid input", fmt.Errorf("%w: Key: 'ItemInput.Name'", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidInputError},
		{"invalid recipe", domain.ErrInvalidRecipe, http.StatusBadRequest, ErrMsgInvalidRecipeError},
		{"self recipe", fmt.Errorf("%w: %s", domain.ErrInvalidRecipe, domain.ErrMsgSelfRecipe), http.StatusBadRequest, ErrMsgInvalidRecipeError + ": " + domain.ErrMsgSelfRecipe},
		{"invalid document", fmt.Errorf("%w: no items", catalog.ErrInvalidDocument), http.StatusBadRequest, "invalid catalog document: no items"},
		{"unexpected", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	respondError(w, http.StatusTeapot, "short and stout")

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"short and stout"}`, w.Body.String())
}
