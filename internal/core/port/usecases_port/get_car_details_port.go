package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetCarDetailsUseCasePort interface {
	Execute(ctx context.Context, carID int) (*domain.Car, error)
}
