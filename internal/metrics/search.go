package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wikisearch",
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		},
		[]string{"mode", "status"}, // mode: page/ranked/highlight, status: ok/error/unavailable
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchQueriesTotal)
	searchMetricsRegistered = true
}
