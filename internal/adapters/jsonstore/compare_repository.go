package jsonstore_adapter

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// Фиксированное пространство имен набора сравнения.
const compareSetFilename = "compare_set.json"

// CompareRepository — файловая реализация CompareRepositoryPort.
// Хранит JSON-массив полных снимков автомобилей, а не только ID.
type CompareRepository struct {
	store *Store
}

func NewCompareRepository(dataDir string) (*CompareRepository, error) {
	store, err := NewStore(dataDir, compareSetFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to create compare set store: %w", err)
	}
	return &CompareRepository{store: store}, nil
}

func (r *CompareRepository) Load(ctx context.Context) (domain.CompareSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	var set domain.CompareSet
	if err := r.store.Load(&set); err != nil {
		logger.Error("Failed to load compare set from file", err, port.Fields{
			"component": "jsonstore.CompareRepository",
		})
		return domain.CompareSet{}, fmt.Errorf("failed to load compare set: %w", err)
	}
	return set, nil
}

func (r *CompareRepository) Save(ctx context.Context, set domain.CompareSet) error {
	logger := contextkeys.LoggerFromContext(ctx)

	if err := r.store.Save(set); err != nil {
		logger.Error("Failed to persist compare set to file", err, port.Fields{
			"component": "jsonstore.CompareRepository",
			"size":      set.Size(),
		})
		return fmt.Errorf("failed to save compare set: %w", err)
	}
	return nil
}
