package handler

import (
	"net/http"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/stash"
)

// StashRow asks for whole stacks of an item
type StashRow struct {
	ItemID int `json:"item_id"`
	Stacks int `json:"stacks" validate:"max=10000"`
}

// StashRequest replaces the saved stash. Rows with no item or a
// non-positive stack count are dropped before saving; more than
// domain.MaxStackAmount stacks is rejected.
type StashRequest struct {
	Items []StashRow `json:"items" validate:"max=500,dive"`
}

// HandleGetStash returns the saved stash and its plan
// @Summary Get stash
// @Tags stash
// @Produce json
// @Success 200 {object} stash.View
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/stash [get]
func HandleGetStash(svc stash.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.LoadAndPlan(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadStashFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, normalizeView(view))
	}
}

// HandleSaveStash replaces the saved stash and plans it in whole stacks
// @Summary Save stash
// @Tags stash
// @Accept json
// @Produce json
// @Param request body StashRequest true "Desired stacks"
// @Success 200 {object} stash.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stash [post]
func HandleSaveStash(svc stash.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StashRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save stash"); err != nil {
			return
		}

		entries := make([]domain.StashEntry, 0, len(req.Items))
		for _, row := range req.Items {
			entries = append(entries, domain.StashEntry{ItemID: row.ItemID, Stacks: row.Stacks})
		}

		view, err := svc.SaveAndPlan(r.Context(), entries)
		if err != nil {
			respondServiceError(w, r, ErrMsgSaveStashFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, normalizeView(view))
	}
}

func normalizeView(view *stash.View) *stash.View {
	out := *view
	out.Entries = nonNil(out.Entries)

	var plan domain.Plan
	if view.Plan != nil {
		plan = *view.Plan
	}
	plan.Lines = nonNil(plan.Lines)
	out.Plan = &plan
	return &out
}
