package validate

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
)

const (
	// DefaultItemCount — сколько товаров возвращаем, если клиент не попросил иначе.
	DefaultItemCount = 10
	// MaxItemCount — потолок выдачи; значения выше молча ограничиваются.
	MaxItemCount = 50
)

// ErrMissingQuery — базовая (sentinel error) ошибка валидации запроса.
var ErrMissingQuery = errors.New("query parameter is required")

// ParseSearchQuery — валидация query-параметров поиска.
// Асимметрия намеренная: query обязателен (жёсткая ошибка),
// itemCount — настроечная «ручка» (любой мусор тихо приводится к дефолту).
func ParseSearchQuery(rawQuery, rawItemCount string) (domain.SearchQuery, error) {
	raw := strings.TrimSpace(rawQuery)
	if raw == "" {
		return domain.SearchQuery{}, ErrMissingQuery
	}

	return domain.SearchQuery{
		Raw:        raw,
		Normalized: domain.NormalizeKeyword(raw),
		ItemCount:  NormalizeItemCount(rawItemCount),
	}, nil
}

// NormalizeItemCount — приведение itemCount к рабочему диапазону.
// Отсутствие, не-число или значение < 1 → DefaultItemCount;
// значение > MaxItemCount → MaxItemCount. Это политика, а не ошибка.
func NormalizeItemCount(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return DefaultItemCount
	}
	if v > MaxItemCount {
		return MaxItemCount
	}
	return v
}
