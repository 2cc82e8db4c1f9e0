package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/mocks"
)

func TestHandlePlanLoadout(t *testing.T) {
	InitValidator()

	plan := &domain.Plan{
		Lines: []domain.PlanLine{{
			Item:            testRope,
			RawQuantity:     6,
			Stacks:          1,
			RoundedQuantity: 10,
			Reasons:         []string{"for Grappling Hook"},
		}},
		TotalSlots: 1,
	}

	t.Run("Rows are passed through as unit requests", func(t *testing.T) {
		svc := mocks.NewMockPlannerService(t)
		svc.On("PlanLoadout", mock.Anything, []domain.DesiredRequest{
			{ItemID: 2, Amount: 2},
			{ItemID: 0, Amount: 5},
			{ItemID: 3, Amount: -1},
		}).Return(plan, nil)

		body := `{"items":[{"item_id":2,"quantity":2},{"item_id":0,"quantity":5},{"item_id":3,"quantity":-1}]}`
		w := httptest.NewRecorder()
		HandlePlanLoadout(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/loadout", body))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.Plan](t, w)
		assert.Equal(t, 1, got.TotalSlots)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, []string{"for Grappling Hook"}, got.Lines[0].Reasons)
	})

	t.Run("Empty form", func(t *testing.T) {
		svc := mocks.NewMockPlannerService(t)
		svc.On("PlanLoadout", mock.Anything, []domain.DesiredRequest{}).Return(&domain.Plan{Lines: []domain.PlanLine{}}, nil)

		w := httptest.NewRecorder()
		HandlePlanLoadout(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/loadout", `{}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"lines":[],"total_slots":0}`, w.Body.String())
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := mocks.NewMockPlannerService(t)

		w := httptest.NewRecorder()
		HandlePlanLoadout(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/loadout", `{"items":"rope"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Quantity bound", func(t *testing.T) {
		svc := mocks.NewMockPlannerService(t)

		body := fmt.Sprintf(`{"items":[{"item_id":2,"quantity":%d}]}`, domain.MaxUnitAmount+1)
		w := httptest.NewRecorder()
		HandlePlanLoadout(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/loadout", body))

		require.Equal(t, http.StatusBadRequest, w.Code)
		got := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, fmt.Sprintf("Must be at most %d", domain.MaxUnitAmount), got.Fields["quantity"])
	})

	t.Run("Catalog unavailable", func(t *testing.T) {
		svc := mocks.NewMockPlannerService(t)
		svc.On("PlanLoadout", mock.Anything, mock.Anything).Return(nil, errors.New("failed to load catalog: timeout"))

		w := httptest.NewRecorder()
		HandlePlanLoadout(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/loadout", `{"items":[{"item_id":1,"quantity":1}]}`))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}
