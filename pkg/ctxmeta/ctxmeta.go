// Пакет ctxmeta — сквозные метаданные запроса в context.Context.
// HTTP-middleware кладёт request_id, логгер запросов его читает;
// сами они друг о друге не знают.
package ctxmeta

import "context"

// ctxKey — свой тип ключа, чтобы значения из чужих пакетов
// (в том числе строковые ключи) сюда не просачивались.
type ctxKey int

const (
	// KeyRequestID — ключ request_id в контексте.
	KeyRequestID ctxKey = iota
)

// WithRequestID — вернуть контекст с request_id.
// Пустой идентификатор не сохраняем; nil-контекст возвращаем как есть.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — request_id из контекста.
// Пустое сохранённое значение равносильно отсутствию.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(KeyRequestID).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
