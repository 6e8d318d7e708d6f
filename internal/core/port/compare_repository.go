package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// CompareRepositoryPort — контракт для хранилища набора сравнения.
// Save обязан завершиться до возврата из мутирующей операции: между
// возвратом и читаемостью сохраненного значения не должно быть окна
// согласованности.
type CompareRepositoryPort interface {
	Load(ctx context.Context) (domain.CompareSet, error)
	Save(ctx context.Context, set domain.CompareSet) error
}
