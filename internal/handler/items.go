package handler

import (
	"net/http"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/planner"
)

// ItemRequest creates or updates an item. On update an absent recipe keeps
// the saved one and an empty list clears it.
type ItemRequest struct {
	domain.ItemInput
	Recipe []domain.RecipeMaterial `json:"recipe,omitempty" validate:"max=50,dive"`
}

// ItemDetailResponse is everything the item page shows
type ItemDetailResponse struct {
	Item       *domain.Item             `json:"item"`
	Recipe     []domain.RecipeEntry     `json:"recipe"`
	Efficiency *domain.EfficiencyResult `json:"efficiency,omitempty"`
	UsedIn     []domain.ItemUsage       `json:"used_in"`
}

// ImageRequest sets or clears an item's image path
type ImageRequest struct {
	ImagePath *string `json:"image_path" validate:"omitempty,max=255"`
}

// RecipeRequest replaces an item's recipe
type RecipeRequest struct {
	Materials []domain.RecipeMaterial `json:"materials" validate:"max=50,dive"`
}

// HandleListItems lists every item
// @Summary List items
// @Description All items ordered by category then name
// @Tags items
// @Produce json
// @Success 200 {array} domain.Item
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(items))
	}
}

// HandleCreateItem creates an item with an optional recipe
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item and recipe"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items [post]
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		item, err := svc.CreateItem(r.Context(), req.ItemInput, req.Recipe)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item created", "item_id", item.ID, "name", item.Name)
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleGetItem returns an item with its recipe, the craft vs. materials
// analysis and the recipes that consume it.
// @Summary Item detail
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func HandleGetItem(catalogSvc catalog.Service, plannerSvc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}
		ctx := r.Context()

		item, err := catalogSvc.GetItem(ctx, id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		recipe, err := catalogSvc.GetRecipe(ctx, id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		efficiency, err := plannerSvc.Evaluate(ctx, id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		usedIn, err := catalogSvc.ItemsUsingMaterial(ctx, id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ItemDetailResponse{
			Item:       item,
			Recipe:     nonNil(recipe),
			Efficiency: efficiency,
			UsedIn:     nonNil(usedIn),
		})
	}
}

// HandleUpdateItem edits an item and optionally replaces its recipe
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item and recipe"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items/{id} [put]
func HandleUpdateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		item, err := svc.UpdateItem(r.Context(), id, req.ItemInput, req.Recipe)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleDeleteItem deletes an item that no recipe uses as a material
// @Summary Delete item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func HandleDeleteItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteItem(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgDeleteItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item deleted", "item_id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}

// HandleSetItemImage sets or clears the image path of an item
// @Summary Set item image
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body ImageRequest true "Image path, null to clear"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/image [put]
func HandleSetItemImage(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		var req ImageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set item image"); err != nil {
			return
		}

		if err := svc.SetItemImage(r.Context(), id, req.ImagePath); err != nil {
			respondServiceError(w, r, ErrMsgSetImageFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgImageUpdated})
	}
}

// HandleSaveRecipe replaces the recipe of an item
// @Summary Save recipe
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body RecipeRequest true "Materials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/recipe [put]
func HandleSaveRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save recipe"); err != nil {
			return
		}

		if err := svc.SaveRecipe(r.Context(), id, req.Materials); err != nil {
			respondServiceError(w, r, ErrMsgSaveRecipeFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipeSaved})
	}
}

// HandleListCategories lists item categories
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/v1/categories [get]
func HandleListCategories(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListCategoriesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(categories))
	}
}

// HandleListRarities lists rarity tiers, most common first
// @Summary List rarities
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Rarity
// @Router /api/v1/rarities [get]
func HandleListRarities(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rarities, err := svc.ListRarities(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListRaritiesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(rarities))
	}
}

// HandleListMaterials lists items in the crafting material category
// @Summary List crafting materials
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/materials [get]
func HandleListMaterials(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListCraftingMaterials(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(items))
	}
}

// HandleListCraftable lists items that have a recipe
// @Summary List craftable items
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/craftable [get]
func HandleListCraftable(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListCraftableItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(items))
	}
}

// nonNil turns a nil slice into an empty one so it encodes as []
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
