package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// CompareHandler обрабатывает запросы к набору сравнения.
type CompareHandler struct {
	addUC    usecases_port.AddToCompareUseCasePort
	removeUC usecases_port.RemoveFromCompareUseCasePort
	getUC    usecases_port.GetCompareSetUseCasePort
}

// NewCompareHandler - конструктор.
func NewCompareHandler(
	addUC usecases_port.AddToCompareUseCasePort,
	removeUC usecases_port.RemoveFromCompareUseCasePort,
	getUC usecases_port.GetCompareSetUseCasePort,
) *CompareHandler {
	return &CompareHandler{
		addUC:    addUC,
		removeUC: removeUC,
		getUC:    getUC,
	}
}

// AddToCompare обрабатывает POST /api/v1/compare
func (h *CompareHandler) AddToCompare(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddToCompare"})

	var req AddCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CarID <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "car_id must be a positive integer")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"car_id": req.CarID})
	handlerLogger.Info("Processing request to add car to compare set", nil)

	outcome, err := h.addUC.Execute(r.Context(), req.CarID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCompared):
			WriteJSONError(w, http.StatusConflict, "Car is already in the compare set")
		case errors.Is(err, domain.ErrCompareFull):
			WriteJSONError(w, http.StatusUnprocessableEntity, "Compare set is full")
		case errors.Is(err, domain.ErrCarNotFound):
			WriteJSONError(w, http.StatusNotFound, "Car not found")
		case errors.Is(err, domain.ErrCatalogUnavailable):
			handlerLogger.Error("Add to compare use case failed", err, nil)
			WriteJSONError(w, http.StatusBadGateway, "Catalog is temporarily unavailable")
		default:
			handlerLogger.Error("Add to compare use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to add car to compare set")
		}
		return
	}

	RespondWithJSON(w, http.StatusCreated, AddCompareResponse{
		CompareReady: outcome.ReachedCompareThreshold,
	})
}

// RemoveFromCompare обрабатывает DELETE /api/v1/compare/{carID}
func (h *CompareHandler) RemoveFromCompare(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFromCompare"})

	carID, err := strconv.Atoi(chi.URLParam(r, "carID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid car ID format")
		return
	}

	if err := h.removeUC.Execute(r.Context(), carID); err != nil {
		logger.Error("Remove from compare use case failed", err, port.Fields{"car_id": carID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove car from compare set")
		return
	}

	// Удаление отсутствующей записи — тоже успех.
	w.WriteHeader(http.StatusNoContent)
}

// GetCompareSet обрабатывает GET /api/v1/compare
func (h *CompareHandler) GetCompareSet(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCompareSet"})

	currency := domain.CurrencyUSD
	switch domain.Currency(r.URL.Query().Get("currency")) {
	case domain.CurrencyAED:
		currency = domain.CurrencyAED
	case domain.CurrencyEUR:
		currency = domain.CurrencyEUR
	}

	set, err := h.getUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get compare set use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve compare set")
		return
	}

	RespondWithJSON(w, http.StatusOK, CompareSetResponse{
		Data:         toCardResponses(set.Cars, currency),
		Size:         set.Size(),
		Capacity:     domain.CompareCapacity,
		CompareReady: set.CompareReady(),
	})
}
