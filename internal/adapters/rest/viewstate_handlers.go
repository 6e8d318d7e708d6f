package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// ViewStateHandler обрабатывает сохранение и восстановление состояния
// страницы каталога по ключу навигационной записи.
type ViewStateHandler struct {
	saveUC     usecases_port.SaveViewStateUseCasePort
	restoreUC  usecases_port.RestoreViewStateUseCasePort
	completeUC usecases_port.CompleteRestoreUseCasePort
}

// NewViewStateHandler - конструктор.
func NewViewStateHandler(
	saveUC usecases_port.SaveViewStateUseCasePort,
	restoreUC usecases_port.RestoreViewStateUseCasePort,
	completeUC usecases_port.CompleteRestoreUseCasePort,
) *ViewStateHandler {
	return &ViewStateHandler{
		saveUC:     saveUC,
		restoreUC:  restoreUC,
		completeUC: completeUC,
	}
}

// SaveViewState обрабатывает PUT /api/v1/view-state/{entryKey}
func (h *ViewStateHandler) SaveViewState(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SaveViewState"})

	entryKey := chi.URLParam(r, "entryKey")
	if entryKey == "" {
		WriteJSONError(w, http.StatusBadRequest, "Entry key is missing")
		return
	}

	var req ViewSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot := domain.ViewSnapshot{
		Page:         req.Page,
		Status:       domain.StatusFilter(req.Status),
		Currency:     domain.Currency(req.Currency),
		ScrollOffset: req.ScrollOffset,
		Params:       req.Params,
	}

	if err := h.saveUC.Execute(r.Context(), entryKey, snapshot); err != nil {
		logger.Error("Save view state use case failed", err, port.Fields{"entry_key": entryKey})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save view state")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RestoreViewState обрабатывает POST /api/v1/view-state/{entryKey}/restore
func (h *ViewStateHandler) RestoreViewState(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RestoreViewState"})

	entryKey := chi.URLParam(r, "entryKey")
	if entryKey == "" {
		WriteJSONError(w, http.StatusBadRequest, "Entry key is missing")
		return
	}

	snapshot, err := h.restoreUC.Execute(r.Context(), entryKey)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			// Снимок либо не сохранялся, либо уже был потреблен.
			WriteJSONError(w, http.StatusNotFound, "No snapshot to restore")
			return
		}
		logger.Error("Restore view state use case failed", err, port.Fields{"entry_key": entryKey})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to restore view state")
		return
	}

	RespondWithJSON(w, http.StatusOK, ViewSnapshotResponse{
		Page:         snapshot.Page,
		Status:       string(snapshot.Status),
		Currency:     string(snapshot.Currency),
		ScrollOffset: snapshot.ScrollOffset,
		Params:       snapshot.Params,
	})
}

// CompleteRestore обрабатывает POST /api/v1/view-state/{entryKey}/complete
func (h *ViewStateHandler) CompleteRestore(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CompleteRestore"})

	entryKey := chi.URLParam(r, "entryKey")
	if entryKey == "" {
		WriteJSONError(w, http.StatusBadRequest, "Entry key is missing")
		return
	}

	if err := h.completeUC.Execute(r.Context(), entryKey); err != nil {
		logger.Error("Complete restore use case failed", err, port.Fields{"entry_key": entryKey})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to complete restore")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
