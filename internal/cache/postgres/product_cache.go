package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/internal/ports"
)

// Проверка, что ProductCache удовлетворяет интерфейсу ProductCache.
var _ ports.ProductCache = (*ProductCache)(nil)

// ProductCache — реализация кэша выдачи на Postgres (pgxpool).
// Одна строка на ключ кэша; выдача хранится документом в jsonb,
// updated_at проставляет БД в момент записи.
type ProductCache struct {
	pool *pgxpool.Pool
}

// NewProductCache — конструктор ProductCache.
func NewProductCache(pool *pgxpool.Pool) *ProductCache { return &ProductCache{pool: pool} }

// Get — вернуть запись по ключу; (nil, nil) если записи нет.
func (c *ProductCache) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	var (
		entry    domain.CacheEntry
		products []byte
		updated  time.Time
	)

	err := c.pool.QueryRow(ctx, `
		SELECT keyword, normalized_keyword, item_count, products, updated_at
		FROM search_cache
		WHERE cache_key = $1
	`, key).Scan(&entry.Keyword, &entry.NormalizedKeyword, &entry.ItemCount, &products, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select cache entry: %w", err)
	}

	if err := json.Unmarshal(products, &entry.Products); err != nil {
		return nil, fmt.Errorf("decode cached products: %w", err)
	}
	entry.UpdatedAt = updated

	return &entry, nil
}

// Set — целиком записать/перезаписать запись по её ключу.
// Идемпотентный upsert: конкурентные записи одного ключа безопасны,
// побеждает последняя. updated_at ставит now() базы.
func (c *ProductCache) Set(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil || entry.NormalizedKeyword == "" {
		return errors.New("cache entry is empty or has no keyword")
	}

	products, err := json.Marshal(entry.Products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	if _, err := c.pool.Exec(ctx, `
		INSERT INTO search_cache (cache_key, keyword, normalized_keyword, item_count, products, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (cache_key) DO UPDATE SET
			keyword = EXCLUDED.keyword,
			normalized_keyword = EXCLUDED.normalized_keyword,
			item_count = EXCLUDED.item_count,
			products = EXCLUDED.products,
			updated_at = now()
	`, entry.Key(), entry.Keyword, entry.NormalizedKeyword, entry.ItemCount, products); err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}

	return nil
}

// Delete — удалить запись по ключу. Отсутствие записи не считается ошибкой.
func (c *ProductCache) Delete(ctx context.Context, key string) error {
	if _, err := c.pool.Exec(ctx, `DELETE FROM search_cache WHERE cache_key = $1`, key); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// Ping — проверка доступности хранилища.
func (c *ProductCache) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}
