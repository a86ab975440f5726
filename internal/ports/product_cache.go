package ports

import (
	"context"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
)

// ProductCache — интерфейс кэша поисковой выдачи (одна запись на ключ).
// Реализация — внешнее хранилище, разделяемое всеми инстансами сервиса.
type ProductCache interface {
	// Get — вернуть запись по ключу; (nil, nil) если записи нет.
	Get(ctx context.Context, key string) (*domain.CacheEntry, error)

	// Set — целиком записать/перезаписать запись по её ключу.
	// updatedAt проставляет хранилище в момент записи.
	Set(ctx context.Context, entry *domain.CacheEntry) error

	// Delete — удалить запись по ключу (сервисный путь, не production).
	Delete(ctx context.Context, key string) error

	// Ping — проверка доступности хранилища (health-check).
	Ping(ctx context.Context) error
}
