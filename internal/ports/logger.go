package ports

import "context"

// Logger — минимальный контракт логгера для всех слоёв сервиса.
// Контекст передаётся ради request_id/trace_id в сообщениях.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
