package handler

import (
	"net/http"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/planner"
)

// LoadoutRow asks for a number of individual units of an item
type LoadoutRow struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity" validate:"max=1000000"`
}

// LoadoutRequest is the loadout form. Rows with no item or a non-positive
// quantity are skipped by the planner, not rejected. A quantity above
// domain.MaxUnitAmount is rejected.
type LoadoutRequest struct {
	Items []LoadoutRow `json:"items" validate:"max=500,dive"`
}

// HandlePlanLoadout plans which items and materials to carry for a loadout
// @Summary Plan loadout
// @Description Per requested item, carry it crafted or as materials, whichever takes fewer slots
// @Tags planner
// @Accept json
// @Produce json
// @Param request body LoadoutRequest true "Desired units"
// @Success 200 {object} domain.Plan
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/loadout [post]
func HandlePlanLoadout(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoadoutRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plan loadout"); err != nil {
			return
		}

		requests := make([]domain.DesiredRequest, 0, len(req.Items))
		for _, row := range req.Items {
			requests = append(requests, domain.DesiredRequest{ItemID: row.ItemID, Amount: row.Quantity})
		}

		plan, err := svc.PlanLoadout(r.Context(), requests)
		if err != nil {
			respondServiceError(w, r, ErrMsgPlanLoadoutFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Loadout planned", "rows", len(requests), "slots", plan.TotalSlots)
		respondJSON(w, http.StatusOK, plan)
	}
}
