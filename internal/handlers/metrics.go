package handlers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"memberhub/pkg/monitoring"
)

type GraphQLMetrics struct {
	Operations  *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	LoaderBatch *prometheus.HistogramVec
}

// NewGraphQLMetrics registers the GraphQL metrics on mc. A nil collector yields nil metrics, which are safe to use.
func NewGraphQLMetrics(mc *monitoring.MetricsCollector) *GraphQLMetrics {
	if mc == nil {
		return nil
	}
	return &GraphQLMetrics{
		Operations: mc.NewCounter("graphql_operations_total", "GraphQL operations by operation type and outcome", []string{"operation", "status"}),
		Duration:   mc.NewHistogram("graphql_operation_duration_seconds", "GraphQL operation latency", []string{"operation"}, nil),
		LoaderBatch: mc.NewHistogram("graphql_loader_batch_keys", "Keys per relation loader batch",
			[]string{"loader"}, prometheus.ExponentialBuckets(1, 2, 8)),
	}
}

func (m *GraphQLMetrics) IncOperation(operation, status string) {
	if m == nil || m.Operations == nil {
		return
	}

	m.Operations.WithLabelValues(operation, status).Inc()
}

func (m *GraphQLMetrics) ObserveDuration(operation string, d time.Duration) {
	if m == nil || m.Duration == nil {
		return
	}

	m.Duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *GraphQLMetrics) ObserveBatch(loader string, keys int) {
	if m == nil || m.LoaderBatch == nil {
		return
	}

	m.LoaderBatch.WithLabelValues(loader).Observe(float64(keys))
}
