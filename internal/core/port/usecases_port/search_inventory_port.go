package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type SearchInventoryUseCasePort interface {
	Execute(ctx context.Context, criteria domain.SearchCriteria) (*domain.QueryResult, error)
}
