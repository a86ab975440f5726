package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/internal/ports"
	"github.com/mkurbatov/amazon-search-cache/pkg/metrics"
)

// Проверка, что SearchService удовлетворяет интерфейсу SearchService.
var _ ports.SearchService = (*SearchService)(nil)

const (
	// DefaultCacheTTL — окно свежести записи кэша.
	DefaultCacheTTL = 24 * time.Hour

	// defaultWriteTimeout — предел ожидания фоновой записи в кэш.
	defaultWriteTimeout = 5 * time.Second
)

// SearchService — прикладная логика «кэш или провайдер» (без знаний о транспорте).
type SearchService struct {
	cache        ports.ProductCache    // прямой доступ к кэшу выдачи
	provider     ports.ProductSearcher // прямой доступ к внешнему поиску
	log          ports.Logger          // прямой доступ к логгеру
	ttl          time.Duration         // окно свежести записи
	writeTimeout time.Duration         // таймаут фоновой записи
	now          func() time.Time      // источник времени (подменяется в тестах)
}

// NewSearchService — DI-конструктор. ttl <= 0 означает дефолтные 24 часа.
func NewSearchService(
	cache ports.ProductCache,
	provider ports.ProductSearcher,
	log ports.Logger,
	ttl time.Duration,
) *SearchService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SearchService{
		cache:        cache,
		provider:     provider,
		log:          log,
		ttl:          ttl,
		writeTimeout: defaultWriteTimeout,
		now:          time.Now,
	}
}

// Search — разрешить запрос: свежая запись кэша либо свежий вызов провайдера.
// Шаги:
//  1. ключ кэша детерминирован парой (normalized, itemCount);
//  2. ошибка чтения кэша деградирует до промаха — недоступность кэша
//     не должна ронять поиск;
//  3. запись пригодна только пока её возраст строго меньше TTL;
//  4. при промахе/устаревании — вызов провайдера; его сбой фатален для
//     операции, отката на устаревшую запись нет;
//  5. успешная выдача пишется в кэш в фоне (fire-and-forget): результат
//     записи логируется и считается метрикой, но на ответ не влияет.
func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResult, error) {
	if q.Normalized == "" || q.ItemCount <= 0 {
		// Валидация — обязанность вызывающего слоя; сюда такое прийти не должно.
		return domain.SearchResult{}, fmt.Errorf("search query is not validated: %+v", q)
	}

	key := q.CacheKey()

	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "cache.Get failed key=%s err=%v, forcing provider fetch", key, err)
		metrics.CacheOps.WithLabelValues("read_error").Inc()
		entry = nil
	}

	switch {
	case entry == nil:
		metrics.CacheOps.WithLabelValues("miss").Inc()
		s.log.Infof(ctx, "cache miss key=%s", key)
	case !s.isFresh(entry):
		metrics.CacheOps.WithLabelValues("stale").Inc()
		s.log.Infof(ctx, "cache stale key=%s updated_at=%s", key, entry.UpdatedAt)
	default:
		metrics.CacheOps.WithLabelValues("hit").Inc()
		metrics.SearchRequests.WithLabelValues(string(domain.SourceCache)).Inc()
		s.log.Infof(ctx, "cache hit key=%s items=%d", key, len(entry.Products))
		return domain.SearchResult{Products: entry.Products, Source: domain.SourceCache}, nil
	}

	start := s.now()
	products, err := s.provider.Search(ctx, q.Raw, q.ItemCount)
	if err != nil {
		metrics.ProviderCalls.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "provider.Search failed keyword=%q count=%d err=%v", q.Raw, q.ItemCount, err)
		return domain.SearchResult{}, fmt.Errorf("provider search keyword=%q: %w", q.Raw, err)
	}
	metrics.ProviderCalls.WithLabelValues("ok").Inc()
	metrics.ProviderDuration.Observe(time.Since(start).Seconds())
	s.log.Infof(ctx, "provider fetch keyword=%q items=%d took=%s", q.Raw, len(products), time.Since(start))

	s.storeAsync(ctx, &domain.CacheEntry{
		Keyword:           q.Raw,
		NormalizedKeyword: q.Normalized,
		ItemCount:         q.ItemCount,
		UpdatedAt:         s.now().UTC(),
		Products:          products,
	})

	metrics.SearchRequests.WithLabelValues(string(domain.SourceProvider)).Inc()
	return domain.SearchResult{Products: products, Source: domain.SourceProvider}, nil
}

// DropCacheEntry — удалить одну запись кэша (сервисный путь вне production).
func (s *SearchService) DropCacheEntry(ctx context.Context, q domain.SearchQuery) error {
	key := q.CacheKey()
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Errorf(ctx, "cache.Delete failed key=%s err=%v", key, err)
		return fmt.Errorf("delete cache entry %s: %w", key, err)
	}
	s.log.Infof(ctx, "cache entry deleted key=%s", key)
	return nil
}

// CheckCache — доступность хранилища кэша для health-check.
func (s *SearchService) CheckCache(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// isFresh — запись пригодна, пока её возраст строго меньше TTL.
// Запись ровно возраста TTL уже устарела; нулевой updatedAt — тоже.
func (s *SearchService) isFresh(entry *domain.CacheEntry) bool {
	if entry.UpdatedAt.IsZero() {
		return false
	}
	return s.now().Sub(entry.UpdatedAt) < s.ttl
}

// storeAsync — fire-and-forget запись в кэш. Контекст отвязываем от
// запроса: ответ уже мог уйти клиенту, отмена запроса не должна
// обрывать запись. Ошибка записи никогда не доходит до вызывающего.
func (s *SearchService) storeAsync(ctx context.Context, entry *domain.CacheEntry) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	go func() {
		defer cancel()
		if err := s.cache.Set(wctx, entry); err != nil {
			metrics.CacheWrites.WithLabelValues("error").Inc()
			s.log.Warnf(wctx, "cache.Set failed key=%s err=%v", entry.Key(), err)
			return
		}
		metrics.CacheWrites.WithLabelValues("ok").Inc()
	}()
}
