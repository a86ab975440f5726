package ports

import (
	"context"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
)

// ProductSearcher — интерфейс внешнего поискового провайдера.
type ProductSearcher interface {
	// Search — поиск товаров по ключевым словам.
	// Ошибки оборачиваются в domain.ErrProviderUnavailable.
	Search(ctx context.Context, keywords string, itemCount int) ([]domain.Product, error)
}
