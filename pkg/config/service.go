package config

import "time"

// Service holds the runtime settings of the memberhub service.
type Service struct {
	Port string

	DatabaseDriver  string
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool

	GraphQLMaxDepth       int
	GraphQLMaxParallelism int
	PlaygroundEnabled     bool

	// AllowSelfSubscription lets a user subscribe to their own posts.
	AllowSelfSubscription bool
}

// LoadService reads the service settings from the environment.
func LoadService() Service {
	return Service{
		Port: GetEnv("PORT", "18090"),

		DatabaseDriver:  GetEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:     GetEnv("DATABASE_URL", ""),
		MaxOpenConns:    GetEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: GetEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		AutoMigrate:     GetEnvBool("DB_AUTO_MIGRATE", false),

		GraphQLMaxDepth:       GetEnvInt("GRAPHQL_MAX_DEPTH", 10),
		GraphQLMaxParallelism: GetEnvInt("GRAPHQL_MAX_PARALLELISM", 10),
		PlaygroundEnabled:     GetEnvBool("GRAPHQL_PLAYGROUND_ENABLED", GetEnv("GIN_MODE", "debug") != "release"),

		AllowSelfSubscription: GetEnvBool("ALLOW_SELF_SUBSCRIPTION", true),
	}
}
