//go:build integration

package testutil

import (
	"fmt"
	"path/filepath"
	"runtime"

	_ "github.com/jackc/pgx/v5/stdlib" // драйвер "pgx" для database/sql
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose — накатить все миграции на базу из dsn.
// Каталог migrations/ ищем от корня репозитория, чтобы тесты
// работали из любого пакета.
func ApplyMigrationsGoose(dsn string) error {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return fmt.Errorf("cannot locate migrations dir")
	}
	dir := filepath.Join(filepath.Dir(self), "..", "..", "migrations")

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
