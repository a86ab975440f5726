package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/mkurbatov/amazon-search-cache/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("got id=%q ok=%v, want req-123/true", got, ok)
	}

	// родительский контекст не затрагивается
	if _, ok := ctxmeta.RequestIDFromContext(parent); ok {
		t.Fatalf("parent context must stay clean")
	}
}

func TestRequestID_AbsentOrEmpty(t *testing.T) {
	cases := []struct {
		name string
		ctx  context.Context
	}{
		{name: "nil context", ctx: nil},
		{name: "background", ctx: context.Background()},
		{name: "empty id ignored by WithRequestID", ctx: ctxmeta.WithRequestID(context.Background(), "")},
		{name: "empty stored value", ctx: context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if id, ok := ctxmeta.RequestIDFromContext(tc.ctx); ok || id != "" {
				t.Fatalf("want absent, got id=%q ok=%v", id, ok)
			}
		})
	}
}

func TestRequestID_ForeignKeyIgnored(t *testing.T) {
	// Значение по чужому ключу не должно подхватываться.
	ctx := context.WithValue(context.Background(), "request_id", "req-xyz") //nolint:staticcheck
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok || id != "" {
		t.Fatalf("foreign key must not be recognized, got id=%q ok=%v", id, ok)
	}
}
