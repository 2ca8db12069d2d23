package main

import (
	"context"
	"database/sql"
	"fmt"

	"memberhub/internal/store"
	"memberhub/pkg/config"
	"memberhub/pkg/database"
	"memberhub/pkg/logging"
)

// openStore connects to the configured database and wraps it in a store.
// The caller owns the returned pool.
func openStore(ctx context.Context, cfg config.Service, logger logging.Logger) (*sql.DB, *store.GormStore, error) {
	dbCfg := database.Config{
		Driver:          cfg.DatabaseDriver,
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	sqlDB, err := database.Connect(ctx, dbCfg, logger)
	if err != nil {
		return nil, nil, err
	}

	orm, err := database.OpenORM(sqlDB, dbCfg.Driver, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return sqlDB, store.New(orm), nil
}

// migrateStore creates the tables and inserts the member tiers.
func migrateStore(ctx context.Context, st *store.GormStore, logger logging.Logger) error {
	if err := st.Migrate(ctx); err != nil {
		return err
	}
	inserted, err := st.SeedMemberTypes(ctx)
	if err != nil {
		return fmt.Errorf("seed member types: %w", err)
	}
	logger.WithField("member_types_inserted", inserted).Info("Database schema is up to date")
	return nil
}
