package usecase

import (
	"context"
	"errors"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// RestoreViewStateUseCase потребляет отложенный снимок при возврате на
// страницу. Снимок выдается не более одного раза: повторный возврат без
// промежуточного изменения состояния получит ErrSnapshotNotFound и
// отрисуется с нуля.
type RestoreViewStateUseCase struct {
	repo port.ViewStateRepositoryPort
}

func NewRestoreViewStateUseCase(repo port.ViewStateRepositoryPort) *RestoreViewStateUseCase {
	return &RestoreViewStateUseCase{repo: repo}
}

func (uc *RestoreViewStateUseCase) Execute(ctx context.Context, entryKey string) (*domain.ViewSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "RestoreViewState",
		"entry_key": entryKey,
	})

	state, err := uc.repo.Load(ctx, entryKey)
	if err != nil {
		ucLogger.Error("Failed to load view state", err, nil)
		return nil, err
	}

	snapshot, err := state.BeginRestore()
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			ucLogger.Debug("No pending snapshot for entry", nil)
		}
		return nil, err
	}

	// Потребление снимка и переход в Restoring фиксируются до того,
	// как снимок уйдет вызывающему.
	if err := uc.repo.Save(ctx, entryKey, state); err != nil {
		ucLogger.Error("Failed to persist view state", err, nil)
		return nil, err
	}

	ucLogger.Info("Snapshot consumed", port.Fields{
		"page":     snapshot.Page,
		"status":   snapshot.Status,
		"currency": snapshot.Currency,
	})
	return &snapshot, nil
}
