package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Business metrics
	PortfolioGenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_generations_total",
			Help: "Total number of portfolio generations served",
		},
	)

	InsightCalculationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_insight_calculations_total",
			Help: "Total number of insight calculations served",
		},
	)

	PortfolioValueGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_total_value_usd",
			Help: "Total portfolio value from the most recent insight calculation",
		},
	)

	DefaultRateGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_default_rate",
			Help: "Default rate from the most recent insight calculation",
		},
	)
)
