package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"memberhub/internal/graph"
	"memberhub/internal/handlers"
	"memberhub/internal/store"
	"memberhub/pkg/config"
	"memberhub/pkg/logging"
	"memberhub/pkg/monitoring"
	"memberhub/pkg/server"
	"memberhub/pkg/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the GraphQL API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), newLogger())
		},
	}
}

func runServe(ctx context.Context, logger logging.Logger) error {
	cfg := config.LoadService()
	logger.WithFields(logging.Fields{
		"version": version.Version,
		"commit":  version.GetShortCommit(),
		"driver":  cfg.DatabaseDriver,
	}).Info("Starting memberhub")

	sqlDB, st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	if cfg.AutoMigrate {
		if err := migrateStore(ctx, st, logger); err != nil {
			return err
		}
	}

	metricsCollector := monitoring.NewMetricsCollector(serviceName, version.Version, version.GitCommit)
	app, err := newRouter(cfg, logger, sqlDB, st, metricsCollector)
	if err != nil {
		return err
	}

	serverConfig := server.DefaultConfig(serviceName, cfg.Port)
	return server.Start(ctx, serverConfig, app, logger)
}

// newRouter wires health, metrics, the GraphQL endpoint and, when enabled,
// the playground onto the service router.
func newRouter(cfg config.Service, logger logging.Logger, sqlDB *sql.DB, st store.Store, mc *monitoring.MetricsCollector) (*gin.Engine, error) {
	healthChecker := monitoring.NewHealthChecker(serviceName, version.Version)
	healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(sqlDB))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_DRIVER": cfg.DatabaseDriver,
		"DATABASE_URL":    cfg.DatabaseURL,
	}))

	schema, err := graph.NewSchema(graph.Options{
		Logger:                logger,
		MaxParallelism:        cfg.GraphQLMaxParallelism,
		AllowSelfSubscription: cfg.AllowSelfSubscription,
	})
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	if mc != nil && sqlDB != nil {
		mc.RegisterCustomMetric("db_stats", collectors.NewDBStatsCollector(sqlDB, serviceName))
	}

	app := server.SetupServiceRouter(logger, serviceName, healthChecker, mc)

	gqlHandler := handlers.NewGraphQLHandler(schema, st, cfg.GraphQLMaxDepth, logger, handlers.NewGraphQLMetrics(mc))
	gqlHandler.Register(app)

	if cfg.PlaygroundEnabled {
		app.GET("/graphql/playground", gin.WrapH(playground.Handler("memberhub", "/graphql")))
		logger.Info("GraphQL playground enabled at /graphql/playground")
	}
	logger.WithField("checks", healthChecker.Names()).Info("Health checks registered")
	if cfg.GraphQLMaxDepth > 0 {
		logger.WithField("max_depth", cfg.GraphQLMaxDepth).Info("GraphQL depth limit enabled")
	}

	return app, nil
}
