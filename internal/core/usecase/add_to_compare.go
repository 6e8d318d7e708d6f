package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// AddToCompareUseCase добавляет снимок автомобиля в набор сравнения.
// Снимок берется из каталога на момент добавления — дальнейшие правки
// каталога сохраненную запись не меняют. Набор персистится синхронно,
// до возврата из Execute.
type AddToCompareUseCase struct {
	catalog port.CatalogSourcePort
	repo    port.CompareRepositoryPort
}

func NewAddToCompareUseCase(catalog port.CatalogSourcePort, repo port.CompareRepositoryPort) *AddToCompareUseCase {
	return &AddToCompareUseCase{catalog: catalog, repo: repo}
}

func (uc *AddToCompareUseCase) Execute(ctx context.Context, carID int) (*domain.AddOutcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AddToCompare",
		"car_id":   carID,
	})

	ucLogger.Debug("Use case started", nil)

	cars, err := uc.catalog.FetchCatalog(ctx)
	if err != nil {
		ucLogger.Error("Catalog source returned an error", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var snapshot *domain.Car
	for i := range cars {
		if cars[i].ID == carID {
			snapshot = &cars[i]
			break
		}
	}
	if snapshot == nil {
		ucLogger.Warn("Car not found in catalog", nil)
		return nil, domain.ErrCarNotFound
	}

	set, err := uc.repo.Load(ctx)
	if err != nil {
		ucLogger.Error("Failed to load compare set", err, nil)
		return nil, err
	}

	outcome, err := set.Add(*snapshot)
	if err != nil {
		// ErrAlreadyCompared и ErrCompareFull — штатные отказы, состояние
		// набора не изменилось.
		ucLogger.Warn("Add rejected", port.Fields{"reason": err.Error(), "size": set.Size()})
		return nil, err
	}

	if err := uc.repo.Save(ctx, set); err != nil {
		ucLogger.Error("Failed to persist compare set", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"size":              set.Size(),
		"compare_threshold": outcome.ReachedCompareThreshold,
	})
	return &outcome, nil
}
