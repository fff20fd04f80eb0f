package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors of the API.
type Metrics struct {
	SalesAppended      prometheus.Counter
	DayResets          prometheus.Counter
	ValidationFailures prometheus.Counter
	StorageFailures    prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SalesAppended: f.NewCounter(prometheus.CounterOpts{
			Name: "vendas_sales_appended_total",
			Help: "Sales appended to the ledger.",
		}),
		DayResets: f.NewCounter(prometheus.CounterOpts{
			Name: "vendas_day_resets_total",
			Help: "Days reset.",
		}),
		ValidationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "vendas_validation_failures_total",
			Help: "Sales rejected because of invalid input.",
		}),
		StorageFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "vendas_storage_failures_total",
			Help: "Ledger mutations that could not be persisted.",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vendas_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}
