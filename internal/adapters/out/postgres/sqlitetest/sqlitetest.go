// Package sqlitetest opens throwaway in-memory SQLite databases carrying the
// production schema, for repository and lifecycle tests that need real SQL
// without a container.
package sqlitetest

import (
	"testing"

	"shoppingcart/internal/adapters/out/postgres"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory database closed when t finishes.
//
// The pool holds a single connection, so every statement sees the same
// database. A test must not read through the main connection while a unit of
// work holds an open transaction: that read would wait for the connection.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
