package validate_test

import (
	"errors"
	"testing"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/pkg/validate"
)

func TestParseSearchQuery(t *testing.T) {
	t.Run("valid query with item count", func(t *testing.T) {
		q, err := validate.ParseSearchQuery("iPhone 15", "5")
		if err != nil {
			t.Fatalf("expected valid query, got: %v", err)
		}
		if q.Raw != "iPhone 15" {
			t.Errorf("raw: got %q", q.Raw)
		}
		if q.Normalized != "iphone 15" {
			t.Errorf("normalized: got %q", q.Normalized)
		}
		if q.ItemCount != 5 {
			t.Errorf("itemCount: got %d, want 5", q.ItemCount)
		}
	})

	t.Run("leading and trailing spaces are trimmed", func(t *testing.T) {
		q, err := validate.ParseSearchQuery("  Notebook  ", "")
		if err != nil {
			t.Fatalf("expected valid query, got: %v", err)
		}
		if q.Raw != "Notebook" {
			t.Errorf("raw: got %q, want %q", q.Raw, "Notebook")
		}
		if q.Normalized != "notebook" {
			t.Errorf("normalized: got %q, want %q", q.Normalized, "notebook")
		}
	})

	t.Run("padded and lowercase variants map to the same cache key", func(t *testing.T) {
		a, err := validate.ParseSearchQuery("  Notebook  ", "10")
		if err != nil {
			t.Fatalf("parse padded: %v", err)
		}
		b, err := validate.ParseSearchQuery("notebook", "10")
		if err != nil {
			t.Fatalf("parse plain: %v", err)
		}
		if a.CacheKey() != b.CacheKey() {
			t.Errorf("cache keys differ: %q vs %q", a.CacheKey(), b.CacheKey())
		}
	})

	t.Run("same query with different item counts gets distinct keys", func(t *testing.T) {
		a, _ := validate.ParseSearchQuery("notebook", "5")
		b, _ := validate.ParseSearchQuery("notebook", "20")
		if a.CacheKey() == b.CacheKey() {
			t.Errorf("expected distinct cache keys, both %q", a.CacheKey())
		}
	})

	type badQuery struct {
		name     string
		rawQuery string
	}

	for _, tc := range []badQuery{
		{name: "missing query", rawQuery: ""},
		{name: "blank query", rawQuery: "   "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate.ParseSearchQuery(tc.rawQuery, "10")
			if !errors.Is(err, validate.ErrMissingQuery) {
				t.Fatalf("expected ErrMissingQuery, got: %v", err)
			}
		})
	}
}

func TestNormalizeItemCount(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{name: "absent", raw: "", want: validate.DefaultItemCount},
		{name: "not a number", raw: "abc", want: validate.DefaultItemCount},
		{name: "fractional", raw: "7.5", want: validate.DefaultItemCount},
		{name: "zero", raw: "0", want: validate.DefaultItemCount},
		{name: "negative", raw: "-5", want: validate.DefaultItemCount},
		{name: "in range", raw: "37", want: 37},
		{name: "lower bound", raw: "1", want: 1},
		{name: "upper bound", raw: "50", want: 50},
		{name: "above ceiling is clamped", raw: "500", want: validate.MaxItemCount},
		{name: "spaces around number", raw: " 12 ", want: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validate.NormalizeItemCount(tc.raw); got != tc.want {
				t.Errorf("NormalizeItemCount(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCacheKeyFormat(t *testing.T) {
	q, err := validate.ParseSearchQuery("Wireless Mouse", "15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := q.CacheKey(), "wireless mouse_15"; got != want {
		t.Errorf("cache key: got %q, want %q", got, want)
	}
	if got := domain.CacheKey("wireless mouse", 15); got != q.CacheKey() {
		t.Errorf("domain.CacheKey mismatch: %q vs %q", got, q.CacheKey())
	}
}
