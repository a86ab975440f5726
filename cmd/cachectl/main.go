package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkurbatov/amazon-search-cache/config"
	cachepg "github.com/mkurbatov/amazon-search-cache/internal/cache/postgres"
	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/pkg/validate"
)

// CLI для обслуживания кэша: посмотреть или удалить запись по запросу.
func main() {
	query := flag.String("query", "", "search query (required)")
	itemCount := flag.String("count", "", "item count (optional, defaults like the API)")
	dsn := flag.String("dsn", "", "postgres DSN; empty = SEARCH_POSTGRES_DSN")
	del := flag.Bool("delete", false, "delete the entry instead of printing it")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	q, err := validate.ParseSearchQuery(*query, *itemCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachectl: %v\n", err)
		os.Exit(2)
	}

	connStr := *dsn
	if connStr == "" {
		cfg, cfgErr := config.Load()
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "cachectl: config: %v\n", cfgErr)
			os.Exit(1)
		}
		connStr = cfg.Postgres.DSN
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := cachepg.NewPool(ctx, connStr, 2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachectl: connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	cache := cachepg.NewProductCache(pool)
	key := q.CacheKey()

	if *del {
		if err := cache.Delete(ctx, key); err != nil {
			fmt.Fprintf(os.Stderr, "cachectl: delete %s: %v\n", key, err)
			os.Exit(1)
		}
		fmt.Printf("deleted %s\n", key)
		return
	}

	entry, err := cache.Get(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachectl: get %s: %v\n", key, err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Printf("no entry for %s\n", key)
		return
	}
	printEntry(entry)
}

func printEntry(entry *domain.CacheEntry) {
	out, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachectl: encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
