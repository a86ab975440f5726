package ports

import (
	"context"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
)

// SearchService — прикладной сервис поиска, каким его видит HTTP-слой.
type SearchService interface {
	// Search — разрешить запрос через кэш или провайдера.
	Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResult, error)

	// DropCacheEntry — удалить одну запись кэша по ключу запроса.
	DropCacheEntry(ctx context.Context, q domain.SearchQuery) error

	// CheckCache — доступность хранилища кэша (health-check).
	CheckCache(ctx context.Context) error
}
