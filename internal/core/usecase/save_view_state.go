package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// SaveViewStateUseCase записывает снимок состояния просмотра для записи
// истории навигации. Пока запись находится в фазе восстановления, запись
// снимков подавляется — иначе восстановление немедленно перетерло бы
// только что потребленный снимок.
type SaveViewStateUseCase struct {
	repo port.ViewStateRepositoryPort
}

func NewSaveViewStateUseCase(repo port.ViewStateRepositoryPort) *SaveViewStateUseCase {
	return &SaveViewStateUseCase{repo: repo}
}

func (uc *SaveViewStateUseCase) Execute(ctx context.Context, entryKey string, snapshot domain.ViewSnapshot) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SaveViewState",
		"entry_key": entryKey,
	})

	state, err := uc.repo.Load(ctx, entryKey)
	if err != nil {
		ucLogger.Error("Failed to load view state", err, nil)
		return err
	}

	if state.Restoring {
		ucLogger.Debug("Snapshot write suppressed: restore in progress", nil)
		return nil
	}

	state.RecordSnapshot(snapshot)

	if err := uc.repo.Save(ctx, entryKey, state); err != nil {
		ucLogger.Error("Failed to persist view state", err, nil)
		return err
	}

	ucLogger.Debug("Snapshot recorded", port.Fields{
		"page":     snapshot.Page,
		"status":   snapshot.Status,
		"currency": snapshot.Currency,
	})
	return nil
}
