package impactapi

import "github.com/prometheus/client_golang/prometheus"

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "impact_api_request_duration_seconds",
		Help:    "Duration of calls to the impact API",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "outcome"},
)

// InitPrometheus registers the client metrics. Call once from main.go.
func InitPrometheus() {
	prometheus.MustRegister(requestDuration)
}
