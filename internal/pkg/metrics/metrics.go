// Package metrics exposes the prometheus instrumentation for the
// analytics engine and its HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CalculationsTotal counts metric snapshots computed, by period kind.
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worklens_calculations_total",
		Help: "Number of metrics snapshots computed.",
	}, []string{"period"})

	// TrendsTotal counts trend series built.
	TrendsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worklens_trends_total",
		Help: "Number of trend series built.",
	})

	// ExportsTotal counts export payloads shaped, by requested format.
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worklens_exports_total",
		Help: "Number of export payloads generated.",
	}, []string{"format"})

	// SkippedRecordsTotal counts malformed records dropped during
	// filtering instead of failing the whole calculation.
	SkippedRecordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worklens_skipped_records_total",
		Help: "Number of malformed records skipped during aggregation.",
	})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
