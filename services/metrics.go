package services

import "github.com/prometheus/client_golang/prometheus"

var (
	completionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_completions_total",
			Help: "Challenge completion notices by outcome",
		},
		[]string{"outcome"},
	)
	dashboardLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_load_duration_seconds",
			Help:    "Duration of the parallel dashboard fetch",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// InitPrometheus registers service metrics. Call this from main.go
func InitPrometheus() {
	prometheus.MustRegister(completionsTotal)
	prometheus.MustRegister(dashboardLoadDuration)
}
