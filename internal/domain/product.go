package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product — нормализованная карточка товара из выдачи поиска.
// Поля, отсутствующие в ответе провайдера, остаются нулевыми/nil,
// но из JSON никогда не выпадают (форма ответа стабильна).
type Product struct {
	ASIN            string   `json:"asin"`
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	Image           string   `json:"image"`
	Price           *float64 `json:"price"`
	PriceFormatted  string   `json:"priceFormatted"`
	Currency        string   `json:"currency"`
	SavingBasis     *float64 `json:"savingBasis"`
	IsPrimeEligible bool     `json:"isPrimeEligible"`
	Availability    string   `json:"availability"`
	Brand           string   `json:"brand"`
	Manufacturer    string   `json:"manufacturer"`
	Model           string   `json:"model"`
}

// CacheEntry — единица хранения в кэше: полная выдача по одному ключу.
// Запись всегда перезаписывается целиком, частичных обновлений нет.
type CacheEntry struct {
	Keyword           string    `json:"keyword"`
	NormalizedKeyword string    `json:"normalizedKeyword"`
	ItemCount         int       `json:"itemCount"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Products          []Product `json:"products"`
}

// Key — ключ кэша записи (см. CacheKey).
func (e *CacheEntry) Key() string {
	return CacheKey(e.NormalizedKeyword, e.ItemCount)
}

// SearchQuery — провалидированный поисковый запрос.
type SearchQuery struct {
	Raw        string // как прислал клиент (после trim)
	Normalized string // нижний регистр + trim, основа ключа кэша
	ItemCount  int    // уже нормализован к [1, 50]
}

// CacheKey — детерминированный ключ кэша: один и тот же
// (normalized, itemCount) всегда даёт один и тот же ключ,
// разные itemCount — разные записи.
func CacheKey(normalized string, itemCount int) string {
	return fmt.Sprintf("%s_%d", normalized, itemCount)
}

// CacheKey — ключ кэша для запроса.
func (q SearchQuery) CacheKey() string {
	return CacheKey(q.Normalized, q.ItemCount)
}

// NormalizeKeyword — каноничная форма поисковой строки.
// Идемпотентна: повторная нормализация ничего не меняет.
func NormalizeKeyword(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Source — источник ответа: кэш или внешний провайдер.
type Source string

const (
	SourceCache    Source = "cache"
	SourceProvider Source = "provider"
)

// SearchResult — результат разрешения запроса.
type SearchResult struct {
	Products []Product
	Source   Source
}
