package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// AnalyzeTotal counts analyze requests by outcome: safe, risk, failure
	// (degraded result), bad_request, fault.
	AnalyzeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodcheck",
		Subsystem: "api",
		Name:      "analyze_total",
		Help:      "Total number of analyze requests, labeled by outcome.",
	}, []string{"outcome"})

	// AnalyzeDurationSeconds is end-to-end assessment time per request.
	AnalyzeDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foodcheck",
		Subsystem: "api",
		Name:      "analyze_duration_seconds",
		Help:      "Time to assess one image, including the upstream model call.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60},
	}, []string{"engine"})
)

// Register registers the metrics with the default registry. Safe to call
// multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalyzeTotal,
			AnalyzeDurationSeconds,
		)
	})
}
