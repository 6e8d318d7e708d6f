package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/port"
)

// CompleteRestoreUseCase завершает цикл восстановления: запись истории
// возвращается в Idle, снимки снова пишутся. Вызывается фронтендом после
// применения восстановленного состояния (включая отложенную прокрутку).
type CompleteRestoreUseCase struct {
	repo port.ViewStateRepositoryPort
}

func NewCompleteRestoreUseCase(repo port.ViewStateRepositoryPort) *CompleteRestoreUseCase {
	return &CompleteRestoreUseCase{repo: repo}
}

func (uc *CompleteRestoreUseCase) Execute(ctx context.Context, entryKey string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "CompleteRestore",
		"entry_key": entryKey,
	})

	state, err := uc.repo.Load(ctx, entryKey)
	if err != nil {
		ucLogger.Error("Failed to load view state", err, nil)
		return err
	}

	if !state.Restoring {
		ucLogger.Debug("Entry is not restoring, nothing to complete", nil)
		return nil
	}

	state.CompleteRestore()

	if err := uc.repo.Save(ctx, entryKey, state); err != nil {
		ucLogger.Error("Failed to persist view state", err, nil)
		return err
	}

	ucLogger.Debug("Restore cycle completed", nil)
	return nil
}
