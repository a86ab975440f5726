//go:build otel && !gopls

package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Сборка с тегом `otel`: trace_id/span_id берём из активного спана.
// Невалидный span context означает, что трейсинга в запросе нет.

func TraceIDFromContext(ctx context.Context) (string, bool) {
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		return sc.TraceID().String(), true
	}
	return "", false
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		return sc.SpanID().String(), true
	}
	return "", false
}
