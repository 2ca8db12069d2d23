// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberhub/internal/store"
	"memberhub/pkg/database"
	"memberhub/pkg/logging"
)

// SQLiteDSN returns a DSN for a private shared-cache in-memory database with
// foreign keys enforced.
func SQLiteDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// QuietLogger discards everything below error level.
func QuietLogger() logging.Logger {
	logger := logging.NewLogger()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logging.ErrorLevel)
	return logger
}

// NewDB opens a fresh in-memory SQLite database through gorm.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := database.DefaultConfig()
	cfg.Driver = database.DriverSQLite
	cfg.URL = SQLiteDSN()
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1

	sqlDB, err := database.Connect(context.Background(), cfg, QuietLogger())
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := database.OpenORM(sqlDB, cfg.Driver, QuietLogger())
	if err != nil {
		t.Fatalf("open orm: %v", err)
	}
	return db
}

// NewStore returns a migrated store with the default member types seeded.
func NewStore(t testing.TB) *store.GormStore {
	t.Helper()

	s := store.New(NewDB(t))
	ctx := context.Background()
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := s.SeedMemberTypes(ctx); err != nil {
		t.Fatalf("seed member types: %v", err)
	}
	return s
}
