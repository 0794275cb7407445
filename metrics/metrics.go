package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neo_dine_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neo_dine_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neo_dine_operations_total",
			Help: "Cart, checkout and booking operations by outcome",
		},
		[]string{"operation", "status"},
	)

	orderStatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neo_dine_order_status_transitions_total",
			Help: "Order status advances by target status",
		},
		[]string{"status"},
	)

	activeTrackers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "neo_dine_order_trackers_active",
			Help: "Orders whose status timer is still running",
		},
	)
)

// RecordOperation counts one domain operation.
func RecordOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	operations.WithLabelValues(operation, status).Inc()
}

func RecordStatusTransition(status string) {
	orderStatusTransitions.WithLabelValues(status).Inc()
}

func TrackerStarted()  { activeTrackers.Inc() }
func TrackerFinished() { activeTrackers.Dec() }
