//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	pgcache "github.com/mkurbatov/amazon-search-cache/internal/cache/postgres"
	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/internal/testutil"
)

func floatPtr(v float64) *float64 { return &v }

func makeEntry(keyword string, itemCount int) *domain.CacheEntry {
	normalized := domain.NormalizeKeyword(keyword)
	return &domain.CacheEntry{
		Keyword:           keyword,
		NormalizedKeyword: normalized,
		ItemCount:         itemCount,
		Products: []domain.Product{
			{
				ASIN:            "B0TESTASIN1",
				URL:             "https://www.amazon.com/dp/B0TESTASIN1",
				Title:           "Test Product One",
				Image:           "https://m.media-amazon.com/images/I/one.jpg",
				Price:           floatPtr(19.99),
				PriceFormatted:  "$19.99",
				Currency:        "USD",
				IsPrimeEligible: true,
				Availability:    "In Stock",
				Brand:           "TestBrand",
			},
			{
				ASIN:  "B0TESTASIN2",
				Title: "Test Product Two",
			},
		},
	}
}

// 1) Запись и чтение: полный roundtrip через jsonb
func TestProductCache_SetAndGet_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	cache := pgcache.NewProductCache(pool)

	entry := makeEntry("  iPhone 15  ", 10)
	require.NoError(t, cache.Set(ctx, entry))

	got, err := cache.Get(ctx, entry.Key())
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Equal(t, entry.Keyword, got.Keyword)
	require.Equal(t, "iphone 15", got.NormalizedKeyword)
	require.Equal(t, 10, got.ItemCount)
	require.False(t, got.UpdatedAt.IsZero(), "updated_at должен проставляться базой")
	require.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)

	require.Len(t, got.Products, 2)
	require.Equal(t, "B0TESTASIN1", got.Products[0].ASIN)
	require.Equal(t, "Test Product One", got.Products[0].Title)
	require.NotNil(t, got.Products[0].Price)
	require.Equal(t, 19.99, *got.Products[0].Price)
	require.True(t, got.Products[0].IsPrimeEligible)
	require.Equal(t, "B0TESTASIN2", got.Products[1].ASIN)
	require.Nil(t, got.Products[1].Price)
}

// 2) Отсутствующий ключ — (nil, nil), а не ошибка
func TestProductCache_Get_AbsentKey_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	cache := pgcache.NewProductCache(pool)

	got, err := cache.Get(ctx, "no_such_key_42")
	require.NoError(t, err)
	require.Nil(t, got)
}

// 3) Повторный Set того же ключа — upsert: выдача заменяется, updated_at двигается вперёд
func TestProductCache_Set_UpsertRefreshesEntry_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	cache := pgcache.NewProductCache(pool)

	entry := makeEntry("notebook", 5)
	require.NoError(t, cache.Set(ctx, entry))

	first, err := cache.Get(ctx, entry.Key())
	require.NoError(t, err)
	require.NotNil(t, first)

	// Ставим старую метку вручную — имитируем запись суточной давности
	_, err = pool.Exec(ctx,
		`UPDATE search_cache SET updated_at = now() - interval '25 hours' WHERE cache_key = $1`,
		entry.Key())
	require.NoError(t, err)

	// Перезаписываем тот же ключ свежей выдачей из одного товара
	entry.Products = []domain.Product{{ASIN: "B0REFRESHED", Title: "Refreshed"}}
	require.NoError(t, cache.Set(ctx, entry))

	second, err := cache.Get(ctx, entry.Key())
	require.NoError(t, err)
	require.NotNil(t, second)

	require.Len(t, second.Products, 1)
	require.Equal(t, "B0REFRESHED", second.Products[0].ASIN)
	require.True(t, second.UpdatedAt.After(time.Now().Add(-time.Hour)),
		"updated_at должен обновиться при перезаписи")
}

// 4) Разные itemCount одного запроса — независимые ключи
func TestProductCache_DistinctItemCounts_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	cache := pgcache.NewProductCache(pool)

	small := makeEntry("laptop", 5)
	big := makeEntry("laptop", 20)
	big.Products = big.Products[:1]

	require.NoError(t, cache.Set(ctx, small))
	require.NoError(t, cache.Set(ctx, big))
	require.NotEqual(t, small.Key(), big.Key())

	gotSmall, err := cache.Get(ctx, small.Key())
	require.NoError(t, err)
	require.NotNil(t, gotSmall)
	require.Len(t, gotSmall.Products, 2)

	gotBig, err := cache.Get(ctx, big.Key())
	require.NoError(t, err)
	require.NotNil(t, gotBig)
	require.Len(t, gotBig.Products, 1)
}

// 5) Delete — удаляет запись; повторный Delete несуществующего ключа не ошибка
func TestProductCache_Delete_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	cache := pgcache.NewProductCache(pool)

	entry := makeEntry("headphones", 10)
	require.NoError(t, cache.Set(ctx, entry))

	require.NoError(t, cache.Delete(ctx, entry.Key()))

	got, err := cache.Get(ctx, entry.Key())
	require.NoError(t, err)
	require.Nil(t, got)

	// идемпотентность
	require.NoError(t, cache.Delete(ctx, entry.Key()))
}

// 6) Set — ошибки валидации входа (nil / пустой нормализованный запрос) + Ping
func TestProductCache_SetValidationAndPing_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	cache := pgcache.NewProductCache(pool)

	require.Error(t, cache.Set(ctx, nil))

	empty := makeEntry("tv", 10)
	empty.NormalizedKeyword = ""
	require.Error(t, cache.Set(ctx, empty))

	require.NoError(t, cache.Ping(ctx))
}
