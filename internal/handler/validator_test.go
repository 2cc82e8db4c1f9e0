package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("not a validation error", func(t *testing.T) {
		got := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, got)
	})

	t.Run("item input", func(t *testing.T) {
		err := GetValidator().ValidateStruct(ItemRequest{
			ItemInput: domain.ItemInput{Name: "Tab\tName", StackSize: 0, CategoryID: 0},
		})
		require.Error(t, err)

		got := FormatValidationError(err)
		assert.Equal(t, "Contains invalid characters", got["name"])
		assert.Equal(t, "Must be at least 1", got["stacksize"])
		assert.Equal(t, "This field is required", got["categoryid"])
	})

	t.Run("oversized recipe", func(t *testing.T) {
		err := GetValidator().ValidateStruct(RecipeRequest{Materials: make([]domain.RecipeMaterial, 51)})
		require.Error(t, err)
		assert.Equal(t, "Must be at most 50", FormatValidationError(err)["materials"])
	})
}
