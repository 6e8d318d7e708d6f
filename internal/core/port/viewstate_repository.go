package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ViewStateRepositoryPort — контракт для хранилища снимков состояния
// просмотра, по одному на запись истории навигации (entryKey).
type ViewStateRepositoryPort interface {
	// Load возвращает состояние записи; для неизвестного ключа —
	// пустое состояние Idle без снимка, не ошибку.
	Load(ctx context.Context, entryKey string) (domain.ViewState, error)
	Save(ctx context.Context, entryKey string, state domain.ViewState) error
}
