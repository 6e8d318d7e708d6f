package jsonstore_adapter

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

const viewStateFilename = "view_state.json"

// ViewStateRepository — файловая реализация ViewStateRepositoryPort.
// Все навигационные записи лежат в одном документе: карта
// entryKey -> ViewState.
type ViewStateRepository struct {
	store *Store
}

func NewViewStateRepository(dataDir string) (*ViewStateRepository, error) {
	store, err := NewStore(dataDir, viewStateFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to create view state store: %w", err)
	}
	return &ViewStateRepository{store: store}, nil
}

func (r *ViewStateRepository) Load(ctx context.Context, entryKey string) (domain.ViewState, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	states := make(map[string]domain.ViewState)
	if err := r.store.Load(&states); err != nil {
		logger.Error("Failed to load view states from file", err, port.Fields{
			"component": "jsonstore.ViewStateRepository",
			"entry_key": entryKey,
		})
		return domain.ViewState{}, fmt.Errorf("failed to load view state: %w", err)
	}

	// Неизвестный ключ — пустое состояние Idle, не ошибка.
	return states[entryKey], nil
}

func (r *ViewStateRepository) Save(ctx context.Context, entryKey string, state domain.ViewState) error {
	logger := contextkeys.LoggerFromContext(ctx)

	states := make(map[string]domain.ViewState)
	if err := r.store.Load(&states); err != nil {
		return fmt.Errorf("failed to load view states before save: %w", err)
	}

	states[entryKey] = state

	if err := r.store.Save(states); err != nil {
		logger.Error("Failed to persist view states to file", err, port.Fields{
			"component": "jsonstore.ViewStateRepository",
			"entry_key": entryKey,
		})
		return fmt.Errorf("failed to save view state: %w", err)
	}
	return nil
}
