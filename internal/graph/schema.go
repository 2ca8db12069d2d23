// Package graph declares the GraphQL schema and binds every field to the
// record store through request-scoped sessions.
package graph

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"

	"memberhub/pkg/logging"
)

//go:embed schema.graphql
var schemaSDL string

// SDL returns the schema definition served by this package.
func SDL() string { return schemaSDL }

// Options configures the executable schema.
type Options struct {
	Logger logging.FieldLogger
	// MaxParallelism bounds concurrent field resolution per request. Zero keeps the executor default.
	MaxParallelism        int
	AllowSelfSubscription bool
}

// Schema is the executable schema. It is safe for concurrent use.
type Schema struct {
	schema *graphql.Schema
}

// NewSchema parses the embedded SDL and binds it to the resolvers.
func NewSchema(opts Options) (*Schema, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	root := &Resolver{
		logger:                opts.Logger,
		allowSelfSubscription: opts.AllowSelfSubscription,
	}

	schemaOpts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{logger: opts.Logger}),
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}

	schema, err := graphql.ParseSchema(schemaSDL, root, schemaOpts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return &Schema{schema: schema}, nil
}

// Exec runs one GraphQL operation against session. The response envelope
// carries data, errors or both, exactly as the executor produced them.
func (s *Schema) Exec(ctx context.Context, session *Session, query, operationName string, variables map[string]interface{}) *graphql.Response {
	return s.schema.Exec(withSession(ctx, session), query, operationName, variables)
}

type panicLogger struct {
	logger logging.FieldLogger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.WithField("panic", fmt.Sprintf("%v", value)).Error("GraphQL resolver panic")
}
