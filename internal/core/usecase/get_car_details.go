package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetCarDetailsUseCase возвращает полную карточку автомобиля по ID.
type GetCarDetailsUseCase struct {
	catalog port.CatalogSourcePort
}

func NewGetCarDetailsUseCase(catalog port.CatalogSourcePort) *GetCarDetailsUseCase {
	return &GetCarDetailsUseCase{catalog: catalog}
}

func (uc *GetCarDetailsUseCase) Execute(ctx context.Context, carID int) (*domain.Car, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetCarDetails",
		"car_id":   carID,
	})

	cars, err := uc.catalog.FetchCatalog(ctx)
	if err != nil {
		ucLogger.Error("Catalog source returned an error", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	for i := range cars {
		if cars[i].ID == carID {
			ucLogger.Debug("Car found", nil)
			return &cars[i], nil
		}
	}

	ucLogger.Warn("Car not found in catalog", nil)
	return nil, domain.ErrCarNotFound
}
