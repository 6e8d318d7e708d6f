package rest

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// Ключи query-string, из которых собираются критерии поиска.
var criteriaParamKeys = []string{
	"keyword", "make", "model", "body_type", "year",
	"price", "mileage", "sort", "status", "currency", "page",
}

// InventoryHandler обрабатывает запросы к выдаче каталога.
type InventoryHandler struct {
	searchUC        usecases_port.SearchInventoryUseCasePort
	detailsUC       usecases_port.GetCarDetailsUseCasePort
	recentUC        usecases_port.GetRecentCarsUseCasePort
	filterOptionsUC usecases_port.GetFilterOptionsUseCasePort
}

// NewInventoryHandler - конструктор.
func NewInventoryHandler(
	searchUC usecases_port.SearchInventoryUseCasePort,
	detailsUC usecases_port.GetCarDetailsUseCasePort,
	recentUC usecases_port.GetRecentCarsUseCasePort,
	filterOptionsUC usecases_port.GetFilterOptionsUseCasePort,
) *InventoryHandler {
	return &InventoryHandler{
		searchUC:        searchUC,
		detailsUC:       detailsUC,
		recentUC:        recentUC,
		filterOptionsUC: filterOptionsUC,
	}
}

// SearchInventory обрабатывает GET /api/v1/inventory
func (h *InventoryHandler) SearchInventory(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchInventory"})

	// Собираем плоскую карту параметров; некорректные значения
	// деградируют внутри ParseCriteria, ошибок парсинга не бывает.
	params := make(map[string]string, len(criteriaParamKeys))
	query := r.URL.Query()
	for _, key := range criteriaParamKeys {
		if v := query.Get(key); v != "" {
			params[key] = v
		}
	}
	criteria := domain.ParseCriteria(params)

	logger.Info("Processing inventory search request", port.Fields{
		"page":   criteria.Page,
		"status": string(criteria.Status),
	})

	result, err := h.searchUC.Execute(r.Context(), criteria)
	if err != nil {
		logger.Error("Search inventory use case failed", err, nil)
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			WriteJSONError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search inventory")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedInventoryResponse{
		Data:         toCardResponses(result.PageItems, criteria.Currency),
		Page:         criteria.Page,
		TotalPages:   result.TotalPages,
		TotalMatched: result.TotalMatched,
	})
}

// GetRecentCars обрабатывает GET /api/v1/inventory/recent
func (h *InventoryHandler) GetRecentCars(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRecentCars"})

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	cars, err := h.recentUC.Execute(r.Context(), limit)
	if err != nil {
		logger.Error("Get recent cars use case failed", err, nil)
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			WriteJSONError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve recent cars")
		return
	}

	RespondWithJSON(w, http.StatusOK, toCardResponses(cars, domain.CurrencyUSD))
}

// GetCarDetails обрабатывает GET /api/v1/inventory/{carID}
func (h *InventoryHandler) GetCarDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCarDetails"})

	carID, err := strconv.Atoi(chi.URLParam(r, "carID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid car ID format")
		return
	}

	currency := domain.CurrencyUSD
	switch domain.Currency(r.URL.Query().Get("currency")) {
	case domain.CurrencyAED:
		currency = domain.CurrencyAED
	case domain.CurrencyEUR:
		currency = domain.CurrencyEUR
	}

	car, err := h.detailsUC.Execute(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCarNotFound):
			WriteJSONError(w, http.StatusNotFound, "Car not found")
		case errors.Is(err, domain.ErrCatalogUnavailable):
			logger.Error("Get car details use case failed", err, port.Fields{"car_id": carID})
			WriteJSONError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
		default:
			logger.Error("Get car details use case failed", err, port.Fields{"car_id": carID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve car details")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, toDetailsResponse(*car, currency))
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *InventoryHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilterOptions"})

	options, err := h.filterOptionsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get filter options use case failed", err, nil)
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			WriteJSONError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		Makes:     options.Makes,
		BodyTypes: options.BodyTypes,
		Years:     options.Years,
		Count:     options.Count,
	})
}
