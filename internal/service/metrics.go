package service

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

var (
	// resolutionsTotal counts configuration lookups by scope and outcome
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "braintacle_config_resolutions_total",
		Help: "Configuration resolutions by scope and result",
	}, []string{"scope", "result"})

	// resolutionDuration tracks lookup latency including store round trips
	resolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "braintacle_config_resolution_duration_seconds",
		Help:    "Configuration resolution duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"scope"})

	// reportClients tracks the size of effective reports
	reportClients = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "braintacle_effective_report_clients",
		Help:    "Number of clients per effective configuration report",
		Buckets: []float64{1, 10, 50, 100, 500, 1000},
	})

	// overrideWrites counts override changes by scope
	overrideWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "braintacle_config_override_writes_total",
		Help: "Override writes by scope and operation",
	}, []string{"scope", "operation"})
)

const (
	scopeClient = "client"
	scopeGroup  = "group"
	scopeGlobal = "global"
	scopeReport = "report"
)

func observeResolution(scope string, start time.Time, err error) {
	resolutionDuration.WithLabelValues(scope).Observe(time.Since(start).Seconds())
	resolutionsTotal.WithLabelValues(scope, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, options.ErrUnknownOption):
		return "unknown_option"
	case errors.Is(err, options.ErrCorruptValue):
		return "corrupt_value"
	case errors.Is(err, options.ErrTypeMismatch):
		return "type_mismatch"
	default:
		return "error"
	}
}

func observeOverrideWrite(scope string, value *options.Value) {
	operation := "set"
	if value == nil {
		operation = "delete"
	}
	overrideWrites.WithLabelValues(scope, operation).Inc()
}
