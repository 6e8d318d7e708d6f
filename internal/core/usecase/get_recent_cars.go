package usecase

import (
	"context"
	"fmt"
	"sort"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

const defaultRecentLimit = 8

// GetRecentCarsUseCase — «новые поступления»: голова каталога
// в обратном хронологическом порядке по дате публикации.
type GetRecentCarsUseCase struct {
	catalog port.CatalogSourcePort
}

func NewGetRecentCarsUseCase(catalog port.CatalogSourcePort) *GetRecentCarsUseCase {
	return &GetRecentCarsUseCase{catalog: catalog}
}

func (uc *GetRecentCarsUseCase) Execute(ctx context.Context, limit int) ([]domain.Car, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetRecentCars",
		"limit":    limit,
	})

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	cars, err := uc.catalog.FetchCatalog(ctx)
	if err != nil {
		ucLogger.Error("Catalog source returned an error", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	// Источник обязан отдавать новые первыми, но на порядок внешних данных
	// не полагаемся.
	recent := make([]domain.Car, len(cars))
	copy(recent, cars)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"returned": len(recent)})
	return recent, nil
}
