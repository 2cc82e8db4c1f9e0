package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/storage"
	"github.com/osse101/ArcLab_Go/mocks"
)

func TestAdminCatalogHandler_HandleImport(t *testing.T) {
	src := storage.NewFileSource("testdata/catalog.json")

	tests := []struct {
		name           string
		source         storage.Source
		query          string
		setupMock      func(*mocks.MockCatalogImporter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Imported",
			source: src,
			setupMock: func(m *mocks.MockCatalogImporter) {
				m.On("Import", mock.Anything, src, false).Return(&catalog.ImportResult{
					Document:      "catalog.json",
					Hash:          "abc123",
					ItemsInserted: 3,
					ItemsUpdated:  1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"items_inserted":3`,
		},
		{
			name:   "Unchanged document",
			source: src,
			setupMock: func(m *mocks.MockCatalogImporter) {
				m.On("Import", mock.Anything, src, false).Return(&catalog.ImportResult{Hash: "abc123", Unchanged: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgCatalogUnchanged,
		},
		{
			name:   "Forced",
			source: src,
			query:  "?force=true",
			setupMock: func(m *mocks.MockCatalogImporter) {
				m.On("Import", mock.Anything, src, true).Return(&catalog.ImportResult{Hash: "abc123"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgCatalogImported,
		},
		{
			name:           "Bad force value",
			source:         src,
			query:          "?force=maybe",
			setupMock:      func(m *mocks.MockCatalogImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidForce,
		},
		{
			name:           "No source configured",
			source:         nil,
			setupMock:      func(m *mocks.MockCatalogImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNoCatalogSource,
		},
		{
			name:   "Invalid document",
			source: src,
			setupMock: func(m *mocks.MockCatalogImporter) {
				m.On("Import", mock.Anything, src, false).
					Return(nil, fmt.Errorf("%w: item \"Hook\": unknown material \"Rop\" (did you mean \"Rope\"?)", catalog.ErrInvalidDocument))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `did you mean`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importer := mocks.NewMockCatalogImporter(t)
			catalogSvc := mocks.NewMockCatalogService(t)
			tt.setupMock(importer)

			h := NewAdminCatalogHandler(importer, catalogSvc, tt.source)
			w := httptest.NewRecorder()
			h.HandleImport(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/import"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAdminCatalogHandler_HandleInvalidateCache(t *testing.T) {
	catalogSvc := mocks.NewMockCatalogService(t)
	catalogSvc.On("Invalidate").Return().Once()

	h := NewAdminCatalogHandler(mocks.NewMockCatalogImporter(t), catalogSvc, nil)
	w := httptest.NewRecorder()
	h.HandleInvalidateCache(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/invalidate", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"`+MsgCacheInvalidated+`"}`, w.Body.String())
}
