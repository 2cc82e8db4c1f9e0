package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/stash"
	"github.com/osse101/ArcLab_Go/mocks"
)

func TestHandleGetStash(t *testing.T) {
	t.Run("Saved set with plan", func(t *testing.T) {
		svc := mocks.NewMockStashService(t)
		view := &stash.View{
			Entries: []domain.StashEntry{{ItemID: 2, Stacks: 1, Name: "Grappling Hook"}},
			Plan: &domain.Plan{
				Lines:      []domain.PlanLine{{Item: testRope, RawQuantity: 3, Stacks: 1, RoundedQuantity: 10, Reasons: []string{"for 1 stack Grappling Hook"}}},
				TotalSlots: 1,
			},
		}
		svc.On("LoadAndPlan", mock.Anything).Return(view, nil)

		w := httptest.NewRecorder()
		HandleGetStash(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stash", nil))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[stash.View](t, w)
		assert.Equal(t, view.Entries, got.Entries)
		require.NotNil(t, got.Plan)
		assert.Equal(t, 1, got.Plan.TotalSlots)
	})

	t.Run("Nothing saved", func(t *testing.T) {
		svc := mocks.NewMockStashService(t)
		svc.On("LoadAndPlan", mock.Anything).Return(&stash.View{Plan: &domain.Plan{}}, nil)

		w := httptest.NewRecorder()
		HandleGetStash(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stash", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"entries":[],"plan":{"lines":[],"total_slots":0}}`, w.Body.String())
	})
}

func TestHandleSaveStash(t *testing.T) {
	InitValidator()

	t.Run("Rows become stash entries", func(t *testing.T) {
		svc := mocks.NewMockStashService(t)
		svc.On("SaveAndPlan", mock.Anything, []domain.StashEntry{
			{ItemID: 2, Stacks: 3},
			{ItemID: 4, Stacks: 0},
		}).Return(&stash.View{
			Entries: []domain.StashEntry{{ItemID: 2, Stacks: 3}},
			Plan:    &domain.Plan{TotalSlots: 1},
		}, nil)

		body := `{"items":[{"item_id":2,"stacks":3},{"item_id":4,"stacks":0}]}`
		w := httptest.NewRecorder()
		HandleSaveStash(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/stash", body))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[stash.View](t, w)
		assert.Len(t, got.Entries, 1)
		assert.NotNil(t, got.Plan.Lines)
	})

	t.Run("Unknown item", func(t *testing.T) {
		svc := mocks.NewMockStashService(t)
		svc.On("SaveAndPlan", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to save stash: %w", domain.ErrItemNotFound))

		w := httptest.NewRecorder()
		HandleSaveStash(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/stash", `{"items":[{"item_id":404,"stacks":1}]}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := mocks.NewMockStashService(t)

		w := httptest.NewRecorder()
		HandleSaveStash(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/stash", `[`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Stack count bound", func(t *testing.T) {
		svc := mocks.NewMockStashService(t)
		svc.On("SaveAndPlan", mock.Anything, []domain.StashEntry{{ItemID: 2, Stacks: domain.MaxStackAmount}}).
			Return(&stash.View{Plan: &domain.Plan{}}, nil)

		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"items":[{"item_id":2,"stacks":%d}]}`, domain.MaxStackAmount)
		HandleSaveStash(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/stash", body))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		body = fmt.Sprintf(`{"items":[{"item_id":2,"stacks":%d}]}`, domain.MaxStackAmount+1)
		HandleSaveStash(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/stash", body))
		require.Equal(t, http.StatusBadRequest, w.Code)
		got := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, fmt.Sprintf("Must be at most %d", domain.MaxStackAmount), got.Fields["stacks"])
	})
}
