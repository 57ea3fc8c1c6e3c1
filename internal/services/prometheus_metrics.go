package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesCreated    *prometheus.CounterVec
	expensesDeleted    prometheus.Counter
	validationFailures *prometheus.CounterVec
	reportExports      *prometheus.CounterVec
	reportDuration     prometheus.Histogram
	cacheInstalls      *prometheus.CounterVec
	cacheInstallTime   prometheus.Histogram
	cacheLookups       *prometheus.CounterVec
	cacheEntries       prometheus.Gauge
	cachesDeleted      prometheus.Counter
}

// NewPrometheusMetrics registers the tracker metrics with registerer.
// A nil registerer uses the default Prometheus registry.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		expensesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_created_total",
				Help: "Total number of expenses recorded",
			},
			[]string{"category"},
		),
		expensesDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_deleted_total",
				Help: "Total number of expenses deleted",
			},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_validation_failures_total",
				Help: "Total number of rejected expense submissions",
			},
			[]string{"reason"},
		),
		reportExports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_exports_total",
				Help: "Total number of report exports",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_export_duration_milliseconds",
				Help:    "Report rendering duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cacheInstalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offline_cache_installs_total",
				Help: "Total number of offline cache install attempts",
			},
			[]string{"status"},
		),
		cacheInstallTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "offline_cache_install_duration_seconds",
				Help:    "Offline cache install duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offline_cache_lookups_total",
				Help: "Total number of intercepted fetches by result",
			},
			[]string{"result"},
		),
		cacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "offline_cache_entries",
				Help: "Number of entries in the current offline cache",
			},
		),
		cachesDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "offline_caches_deleted_total",
				Help: "Total number of stale caches deleted on activation",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "expense.created":
		m.expensesCreated.WithLabelValues(tags["category"]).Inc()
	case "expense.deleted":
		m.expensesDeleted.Inc()
	case "expense.validation.failed":
		m.validationFailures.WithLabelValues(tags["reason"]).Inc()
	case "report.export":
		if status != "" {
			m.reportExports.WithLabelValues(status).Inc()
		}
	case "cache.install":
		if status != "" {
			m.cacheInstalls.WithLabelValues(status).Inc()
		}
	case "cache.hit":
		m.cacheLookups.WithLabelValues("hit").Inc()
	case "cache.miss":
		m.cacheLookups.WithLabelValues("miss").Inc()
	case "cache.deleted":
		m.cachesDeleted.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.export":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "cache.install":
		m.cacheInstallTime.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "cache.entries":
		m.cacheEntries.Set(value)
	}
}
