package catalog_api_client

import (
	"context"
	"sync"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// CachingCatalogSource — декоратор над CatalogSourcePort с TTL-кэшем.
// Одновременные запросы при холодном кэше уходят в upstream параллельно;
// побеждает ответ, чей запрос был начат последним (latest-wins), чтобы
// более поздний снимок каталога никогда не затирался более ранним.
type CachingCatalogSource struct {
	upstream port.CatalogSourcePort
	ttl      time.Duration

	mu          sync.Mutex
	cached      []domain.Car
	fetchedAt   time.Time
	fetchSeq    uint64 // номер последнего начатого запроса
	appliedSeq  uint64 // номер запроса, чей результат лежит в кэше
}

func NewCachingCatalogSource(upstream port.CatalogSourcePort, ttl time.Duration) *CachingCatalogSource {
	return &CachingCatalogSource{
		upstream: upstream,
		ttl:      ttl,
	}
}

// FetchCatalog реализует порт CatalogSourcePort.
func (s *CachingCatalogSource) FetchCatalog(ctx context.Context) ([]domain.Car, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		cars := s.cached
		s.mu.Unlock()
		logger.Debug("Catalog served from cache", port.Fields{
			"component":  "CachingCatalogSource",
			"cars_count": len(cars),
		})
		return cars, nil
	}
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	cars, err := s.upstream.FetchCatalog(ctx)
	if err != nil {
		// Ошибку не кэшируем: следующий вызов снова попробует upstream.
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		// Пока этот запрос выполнялся, кэш уже обновил более поздний.
		// Отдаем свежий кэш, а устаревший результат отбрасываем.
		logger.Debug("Discarding stale catalog fetch result", port.Fields{
			"component":   "CachingCatalogSource",
			"fetch_seq":   seq,
			"applied_seq": s.appliedSeq,
		})
		return s.cached, nil
	}
	s.cached = cars
	s.fetchedAt = time.Now()
	s.appliedSeq = seq
	return cars, nil
}

// Invalidate сбрасывает кэш; следующий вызов пойдет в upstream.
func (s *CachingCatalogSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.fetchedAt = time.Time{}
}
