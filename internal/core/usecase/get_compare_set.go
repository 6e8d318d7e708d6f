package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetCompareSetUseCase возвращает сохраненный набор сравнения.
// Каталог при этом не загружается: в наборе лежат полные снимки,
// страница сравнения может отрисоваться без похода за данными.
type GetCompareSetUseCase struct {
	repo port.CompareRepositoryPort
}

func NewGetCompareSetUseCase(repo port.CompareRepositoryPort) *GetCompareSetUseCase {
	return &GetCompareSetUseCase{repo: repo}
}

func (uc *GetCompareSetUseCase) Execute(ctx context.Context) (*domain.CompareSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetCompareSet"})

	set, err := uc.repo.Load(ctx)
	if err != nil {
		ucLogger.Error("Failed to load compare set", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"size": set.Size()})
	return &set, nil
}
