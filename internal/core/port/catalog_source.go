package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// CatalogSourcePort — контракт для источника «сырого» каталога.
// Движок сам не ретраит и не кеширует загрузку: и то и другое — забота
// адаптера или явного декоратора вокруг него.
type CatalogSourcePort interface {
	// FetchCatalog возвращает полный список объявлений, новые первыми.
	FetchCatalog(ctx context.Context) ([]domain.Car, error)
}
