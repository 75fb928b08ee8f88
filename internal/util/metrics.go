package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "Total number of simulated API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Duration of simulated API requests including injected latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	SimulatedFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "simulated_failures_total",
		Help: "Total number of failures injected by the fault simulator",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	OrdersFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Total number of failed order creations",
	}, []string{"reason"})

	SessionsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_issued_total",
		Help: "Total number of session tokens issued",
	})

	SessionsRevokedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_revoked_total",
		Help: "Total number of session tokens revoked",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
