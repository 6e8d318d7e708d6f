package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// SearchInventoryUseCase — корень композиции движка каталога:
// загрузка сырого каталога из источника и чистый прогон
// фильтрация → сортировка → пагинация.
type SearchInventoryUseCase struct {
	catalog port.CatalogSourcePort
}

func NewSearchInventoryUseCase(catalog port.CatalogSourcePort) *SearchInventoryUseCase {
	return &SearchInventoryUseCase{catalog: catalog}
}

func (uc *SearchInventoryUseCase) Execute(ctx context.Context, criteria domain.SearchCriteria) (*domain.QueryResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchInventory",
		"params":   criteria.Params(),
	})

	ucLogger.Debug("Use case started", nil)

	cars, err := uc.catalog.FetchCatalog(ctx)
	if err != nil {
		ucLogger.Error("Catalog source returned an error", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	result := domain.RunQuery(cars, criteria)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_matched": result.TotalMatched,
		"total_pages":   result.TotalPages,
		"items_on_page": len(result.PageItems),
	})

	return &result, nil
}
