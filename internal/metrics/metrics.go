// Package metrics exposes Prometheus counters for scheduling operations and
// notification delivery.
package metrics

import (
	"net/http"
	"sync"
	"time"

	apperrors "maintenance-tracker-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "maintenance_"

	ResultSuccess    = "success"
	ResultValidation = "validation"
	ResultConflict   = "conflict"
	ResultNotFound   = "not_found"
	ResultAuth       = "unauthenticated"
	ResultError      = "error"
)

var (
	registerOnce sync.Once

	operationsTotal   *prometheus.CounterVec
	operationLatency  *prometheus.HistogramVec
	notificationTotal *prometheus.CounterVec
)

// Init registers the metrics with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		operationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "operations_total",
				Help: "Total maintenance scheduling operations by operation and result",
			},
			[]string{"operation", "result"},
		)
		operationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "operation_latency_seconds",
				Help:    "Maintenance scheduling operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
		notificationTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "notifications_total",
				Help: "Total maintenance notifications by kind and result",
			},
			[]string{"kind", "result"},
		)

		prometheus.MustRegister(
			operationsTotal,
			operationLatency,
			notificationTotal,
		)
	})
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// ResultFor classifies an operation error into a result label
func ResultFor(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case apperrors.IsValidation(err):
		return ResultValidation
	case apperrors.IsConflict(err):
		return ResultConflict
	case apperrors.IsNotFound(err):
		return ResultNotFound
	case apperrors.IsAuthentication(err):
		return ResultAuth
	default:
		return ResultError
	}
}

// ObserveOperation records one scheduling operation outcome and its duration
func ObserveOperation(operation string, err error, duration time.Duration) {
	if operation == "" {
		operation = "unknown"
	}
	if operationsTotal != nil {
		operationsTotal.WithLabelValues(operation, ResultFor(err)).Inc()
	}
	if operationLatency != nil {
		operationLatency.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// IncNotification records one notification attempt
func IncNotification(kind string, err error) {
	if kind == "" {
		kind = "unknown"
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	if notificationTotal != nil {
		notificationTotal.WithLabelValues(kind, result).Inc()
	}
}
