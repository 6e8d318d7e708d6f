package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchUC struct {
	result *domain.QueryResult
	err    error
}

func (s *stubSearchUC) Execute(ctx context.Context, c domain.SearchCriteria) (*domain.QueryResult, error) {
	return s.result, s.err
}

type stubAddCompareUC struct {
	outcome *domain.AddOutcome
	err     error
}

func (s *stubAddCompareUC) Execute(ctx context.Context, carID int) (*domain.AddOutcome, error) {
	return s.outcome, s.err
}

type stubRestoreUC struct {
	snapshot *domain.ViewSnapshot
	err      error
}

func (s *stubRestoreUC) Execute(ctx context.Context, entryKey string) (*domain.ViewSnapshot, error) {
	return s.snapshot, s.err
}

func newTestRouter(inventory *InventoryHandler, compare *CompareHandler, viewState *ViewStateHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		if inventory != nil {
			r.Get("/inventory", inventory.SearchInventory)
		}
		if compare != nil {
			r.Post("/compare", compare.AddToCompare)
		}
		if viewState != nil {
			r.Post("/view-state/{entryKey}/restore", viewState.RestoreViewState)
		}
	})
	return r
}

func TestSearchInventoryResponseShape(t *testing.T) {
	price := 100000.0
	search := &stubSearchUC{result: &domain.QueryResult{
		PageItems: []domain.Car{
			{ID: 1, Name: "G63", Make: "mercedes-benz", Year: 2022, PriceUSD: &price, Status: domain.StatusAvailable},
			{ID: 2, Name: "Sold One", Make: "bmw", Year: 2020, PriceUSD: &price, Status: domain.StatusSold},
		},
		TotalPages:   2,
		TotalMatched: 14,
	}}
	router := newTestRouter(NewInventoryHandler(search, nil, nil, nil), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?currency=AED&page=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PaginatedInventoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 14, resp.TotalMatched)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Data, 2)

	// Цена форматируется в валюте запроса, проданный подписан "Sold".
	assert.Equal(t, "AED 367,000", resp.Data[0].PriceDisplay)
	assert.Equal(t, "Sold", resp.Data[1].PriceDisplay)
}

func TestSearchInventoryCatalogDown(t *testing.T) {
	search := &stubSearchUC{err: domain.ErrCatalogUnavailable}
	router := newTestRouter(NewInventoryHandler(search, nil, nil, nil), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAddToCompareStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate", domain.ErrAlreadyCompared, http.StatusConflict},
		{"full", domain.ErrCompareFull, http.StatusUnprocessableEntity},
		{"unknown car", domain.ErrCarNotFound, http.StatusNotFound},
		{"catalog down", domain.ErrCatalogUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add := &stubAddCompareUC{err: tt.err}
			router := newTestRouter(nil, NewCompareHandler(add, nil, nil), nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", strings.NewReader(`{"car_id": 1}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAddToCompareSuccess(t *testing.T) {
	add := &stubAddCompareUC{outcome: &domain.AddOutcome{ReachedCompareThreshold: true}}
	router := newTestRouter(nil, NewCompareHandler(add, nil, nil), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", strings.NewReader(`{"car_id": 2}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddCompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.CompareReady)
}

func TestAddToCompareBadBody(t *testing.T) {
	router := newTestRouter(nil, NewCompareHandler(&stubAddCompareUC{}, nil, nil), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", strings.NewReader(`{"car_id": "one"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestoreViewStateNotFound(t *testing.T) {
	restore := &stubRestoreUC{err: domain.ErrSnapshotNotFound}
	router := newTestRouter(nil, nil, NewViewStateHandler(nil, restore, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/view-state/entry-1/restore", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRestoreViewStateReturnsSnapshot(t *testing.T) {
	restore := &stubRestoreUC{snapshot: &domain.ViewSnapshot{
		Page:         3,
		Status:       domain.StatusFilterAvailable,
		Currency:     domain.CurrencyAED,
		ScrollOffset: 980,
		Params:       map[string]string{"make": "bmw"},
	}}
	router := newTestRouter(nil, nil, NewViewStateHandler(nil, restore, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/view-state/entry-1/restore", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ViewSnapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, "AED", resp.Currency)
	assert.Equal(t, "bmw", resp.Params["make"])
}
