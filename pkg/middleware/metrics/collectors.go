package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	callDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "procedure_call_duration_seconds",
			Help:    "procedure call latency.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5, 30},
		},
	)

	totalCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_procedure_calls", Help: "procedure calls by code, path and type"},
		[]string{"code", "path", "type"},
	)

	totalCallsFromRole = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_procedure_calls_from_role", Help: "procedure calls from role"},
		[]string{"role"},
	)
)

func init() {
	prometheus.MustRegister(
		callDuration,
		totalCalls,
		totalCallsFromRole,
	)
}
