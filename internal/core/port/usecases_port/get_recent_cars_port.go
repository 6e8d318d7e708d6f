package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetRecentCarsUseCasePort interface {
	Execute(ctx context.Context, limit int) ([]domain.Car, error)
}
