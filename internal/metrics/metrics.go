package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_api_requests_total",
			Help: "Total number of API requests handled",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "talentflow_api_request_duration_seconds",
			Help: "Duration of API request handling in seconds",
		},
		[]string{"method", "route"},
	)
)
