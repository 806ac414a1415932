package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldquote_fetch_total",
			Help: "Upstream page fetches by outcome",
		},
		[]string{"outcome"},
	)

	FetchDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "goldquote_fetch_duration_seconds",
			Help:    "Upstream page fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ExtractFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goldquote_extract_fallback_total",
			Help: "Extractions that fell back to the positional cell layout",
		},
	)

	ExtractFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldquote_extract_failures_total",
			Help: "Failed or partial extractions by reason",
		},
		[]string{"reason"},
	)

	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldquote_tool_calls_total",
			Help: "Tool invocations by tool and status",
		},
		[]string{"tool", "status"},
	)
)

// ObserveFetch records one upstream fetch.
func ObserveFetch(startedAt time.Time, err error) {
	FetchDurationSeconds.Observe(time.Since(startedAt).Seconds())
	if err != nil {
		FetchTotal.WithLabelValues(OutcomeError).Inc()
		return
	}
	FetchTotal.WithLabelValues(OutcomeSuccess).Inc()
}
