package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors are registered on the default registry so the whole process
// shares one set of series.
var (
	// QueryDuration observes collection store operation latency.
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "academy_db_query_duration_seconds",
		Help:    "Duration of collection store operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	// RequestDuration observes HTTP request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "academy_http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	// Mutations counts record saves and deletes per collection.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_record_mutations_total",
		Help: "Record mutations applied, by collection and action.",
	}, []string{"collection", "action"})

	// IntegrityRefusals counts deletions refused by the coach guard.
	IntegrityRefusals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_integrity_refusals_total",
		Help: "Deletions refused because the record is still referenced.",
	})
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
