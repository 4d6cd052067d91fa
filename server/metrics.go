package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments exposed on /metrics.
type Metrics struct {
	// RequestDuration observes handler latency per route and status class.
	RequestDuration *prometheus.HistogramVec

	// ForecastsTotal counts forecast requests by outcome.
	ForecastsTotal *prometheus.CounterVec

	// RowsDropped counts CSV rows discarded during ingest.
	RowsDropped prometheus.Counter

	// UploadBytes observes the wire size of uploaded datasets.
	UploadBytes prometheus.Histogram
}

// NewMetrics creates the instrument set and registers it with reg.
// Registration happens per registry; nothing is registered globally.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendcast_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"route", "method", "status"},
		),

		ForecastsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcast_forecasts_total",
				Help: "Total forecast requests by outcome",
			},
			[]string{"status"},
		),

		RowsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "trendcast_ingest_rows_dropped_total",
				Help: "Total CSV rows discarded during dataset ingest",
			},
		),

		UploadBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trendcast_upload_bytes",
				Help:    "Wire size of uploaded datasets in bytes",
				Buckets: prometheus.ExponentialBuckets(256, 4, 10),
			},
		),
	}

	reg.MustRegister(
		m.RequestDuration,
		m.ForecastsTotal,
		m.RowsDropped,
		m.UploadBytes,
	)

	return m
}

// Outcome labels for ForecastsTotal.
const (
	outcomeOK          = "ok"
	outcomeClientError = "client_error"
	outcomeServerError = "server_error"
)
