package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/port"
)

// RemoveFromCompareUseCase удаляет автомобиль из набора сравнения.
// Отсутствие записи — не ошибка.
type RemoveFromCompareUseCase struct {
	repo port.CompareRepositoryPort
}

func NewRemoveFromCompareUseCase(repo port.CompareRepositoryPort) *RemoveFromCompareUseCase {
	return &RemoveFromCompareUseCase{repo: repo}
}

func (uc *RemoveFromCompareUseCase) Execute(ctx context.Context, carID int) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RemoveFromCompare",
		"car_id":   carID,
	})

	set, err := uc.repo.Load(ctx)
	if err != nil {
		ucLogger.Error("Failed to load compare set", err, nil)
		return err
	}

	before := set.Size()
	set.Remove(carID)
	if set.Size() == before {
		ucLogger.Warn("Attempted to remove a car that was not in the set", nil)
		return nil
	}

	if err := uc.repo.Save(ctx, set); err != nil {
		ucLogger.Error("Failed to persist compare set", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"size": set.Size()})
	return nil
}
