package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetFilterOptionsUseCasePort interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}
