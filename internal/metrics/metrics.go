package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_http_requests_total",
			Help: "Total HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hotel_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// BillsGeneratedTotal counts generated invoices by kind (room, food, manual).
	BillsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_bills_generated_total",
			Help: "Invoices generated, by kind",
		},
		[]string{"kind"},
	)

	// PaymentWebhooksTotal counts payment webhook deliveries by outcome.
	PaymentWebhooksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_payment_webhooks_total",
			Help: "Razorpay webhook deliveries, by outcome",
		},
		[]string{"outcome"},
	)
)
