package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Exchange outcomes recorded per gateway call.
const (
	OutcomeApproved       = "approved"
	OutcomeDeclined       = "declined"
	OutcomeTransportError = "transport_error"
	OutcomeParseError     = "parse_error"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of gateway exchanges",
		},
		[]string{"dialect", "operation", "outcome"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of gateway exchanges in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dialect", "operation"},
	)
)

// ObserveGatewayRequest records one gateway exchange.
func ObserveGatewayRequest(dialect, operation, outcome string, elapsed time.Duration) {
	gatewayRequestDuration.WithLabelValues(dialect, operation).Observe(elapsed.Seconds())
	gatewayRequestsTotal.WithLabelValues(dialect, operation, outcome).Inc()
}
