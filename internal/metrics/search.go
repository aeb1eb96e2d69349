package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every exported metric.
const Namespace = "sahayata"

// Catalog engine Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_requests_total",
			Help:      "Total number of chat searches",
		},
		[]string{"language", "outcome"}, // "match" / "no_match" / "error"
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_results",
			Help:      "Number of ranked matches per search",
			Buckets:   []float64{0, 1, 3, 5, 10, 25, 50, 100},
		},
		[]string{"language"},
	)

	EligibilityChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "eligibility_checks_total",
			Help:      "Total eligibility checks by resolution phase",
		},
		[]string{"phase"}, // "universal" / "strict" / "relaxed" / "error"
	)

	CatalogErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "catalog_errors_total",
			Help:      "Catalog read failures by operation",
		},
		[]string{"operation"},
	)
)

var domainOnce sync.Once

// RegisterDomainMetrics registers the catalog engine metrics with the default
// registry. Safe to call more than once.
func RegisterDomainMetrics() {
	domainOnce.Do(func() {
		prometheus.MustRegister(SearchRequestsTotal, SearchResults, EligibilityChecksTotal, CatalogErrorsTotal)
	})
}
