package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	engineName = "engine_name"
	viewName   = "view_name"
	outcome    = "outcome"
)

var (
	// TransitionAttempts counts status transition requests by outcome
	// (committed, illegal, insufficient_role, stale, error).
	TransitionAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_transition_attempt_count",
		Help: "Number of status transition requests by outcome",
	}, []string{engineName, outcome})

	// ProjectionLatency is how long a projection rebuild takes per view
	ProjectionLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_projection_latency_seconds",
		Help:    "Projection rebuild latency in seconds",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 5},
	}, []string{engineName, viewName})

	// RecordsHeld reflects the number of records in the current derived view-set
	RecordsHeld = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dashboard_records_held",
		Help: "Number of records in the active filtered set",
	}, []string{engineName})
)

func init() {
	prometheus.MustRegister(
		TransitionAttempts,
		ProjectionLatency,
		RecordsHeld,
	)
}

func Reset() {
	TransitionAttempts.Reset()
	ProjectionLatency.Reset()
	RecordsHeld.Reset()
}
