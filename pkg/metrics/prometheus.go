// Package metrics provides Prometheus metrics for the roster service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Report metrics
	reportsBuilt        prometheus.Counter
	reportBuildDuration prometheus.Histogram
	reportFindings      *prometheus.GaugeVec

	// Search metrics
	searches      prometheus.Counter
	searchResults prometheus.Histogram

	// Dataset metrics
	datasetEntries      prometheus.Gauge
	datasetParticipants prometheus.Gauge
	datasetIdentities   prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rostercheck",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reportsBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_built_total",
		Help:      "Total number of validation reports built",
	})

	m.reportBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_build_duration_milliseconds",
		Help:      "Histogram of report build latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.reportFindings = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_findings",
		Help:      "Finding counts from the most recent validation report, by severity",
	}, []string{"severity"})

	m.searches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Total number of submitted participant searches",
	})

	m.searchResults = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_results",
		Help:      "Histogram of result counts per submitted search",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
	})

	m.datasetEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_entries",
		Help:      "Number of raw team entries in the loaded dataset",
	})

	m.datasetParticipants = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_participants",
		Help:      "Number of distinct participants in the roster index",
	})

	m.datasetIdentities = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_identities",
		Help:      "Number of identity records in the loaded dataset",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry metrics are collected into.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordReportBuilt counts a built report and observes its build latency.
func RecordReportBuilt(durationMs float64) {
	globalManager.reportsBuilt.Inc()
	globalManager.reportBuildDuration.Observe(durationMs)
}

// UpdateReportFindings publishes the severity counts of the latest report.
func UpdateReportFindings(passed, warnings, errors int) {
	globalManager.reportFindings.WithLabelValues("pass").Set(float64(passed))
	globalManager.reportFindings.WithLabelValues("warn").Set(float64(warnings))
	globalManager.reportFindings.WithLabelValues("error").Set(float64(errors))
}

// RecordSearch counts a submitted search and its result size.
func RecordSearch(results int) {
	globalManager.searches.Inc()
	globalManager.searchResults.Observe(float64(results))
}

// UpdateDatasetStats publishes dataset cardinalities.
func UpdateDatasetStats(entries, participants, identities int) {
	globalManager.datasetEntries.Set(float64(entries))
	globalManager.datasetParticipants.Set(float64(participants))
	globalManager.datasetIdentities.Set(float64(identities))
}

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request's latency.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}
