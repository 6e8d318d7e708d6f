package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type AddToCompareUseCasePort interface {
	Execute(ctx context.Context, carID int) (*domain.AddOutcome, error)
}

type RemoveFromCompareUseCasePort interface {
	Execute(ctx context.Context, carID int) error
}

type GetCompareSetUseCasePort interface {
	Execute(ctx context.Context) (*domain.CompareSet, error)
}
