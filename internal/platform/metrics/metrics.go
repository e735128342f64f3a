package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus collectors shared by the api and worker processes.
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcelhub_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parcelhub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	ParcelsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parcelhub_parcels_created_total",
			Help: "Total number of parcels registered",
		},
	)

	PaymentsRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parcelhub_payments_recorded_total",
			Help: "Total number of ledger entries written",
		},
	)

	PaymentsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcelhub_payments_rejected_total",
			Help: "Total number of rejected payment submissions by reason",
		},
		[]string{"reason"},
	)

	TrackingEventsAppendedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcelhub_tracking_events_appended_total",
			Help: "Total number of tracking events appended by source",
		},
		[]string{"source"},
	)

	OutboxRelayedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parcelhub_outbox_relayed_total",
			Help: "Total number of outbox messages published to the bus",
		},
	)
)

var registerOnce sync.Once

// Register registers all collectors with reg once per process.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		reg.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			ParcelsCreatedTotal,
			PaymentsRecordedTotal,
			PaymentsRejectedTotal,
			TrackingEventsAppendedTotal,
			OutboxRelayedTotal,
		)
	})
}
