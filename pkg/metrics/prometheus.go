// Package metrics provides Prometheus metrics for the BERTH matching service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns every Prometheus collector used by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Matching metrics - the business of this service.
	matchesComputed      prometheus.Counter
	matchLatency         prometheus.Histogram
	interactionsRecorded prometheus.Counter
	interactionsDropped  prometheus.Counter

	// Catalog gauges updated from service stats.
	totalStudents     prometheus.Gauge
	totalInternships  prometheus.Gauge
	totalInteractions prometheus.Gauge

	// Queue metrics - interaction ingestion pipeline.
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueues      prometheus.Counter
	queueDequeues      prometheus.Counter
	queueEnqueueErrors prometheus.Counter
	queueLatency       prometheus.Histogram

	// Worker metrics - recorder pool.
	workerCount   prometheus.Gauge
	workerLatency prometheus.Histogram
	workerErrors  prometheus.Counter

	// Store metrics.
	storeUpdateLatency prometheus.Histogram
	storeQueryLatency  prometheus.Histogram

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics.
	errorsByComponent *prometheus.CounterVec
	errorsByType      *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPause        prometheus.Histogram
}

// Global manager backed by a custom registry so the default Go
// collectors never leak into /healthz output.
var globalManager *Manager                        //nolint:gochecknoglobals // singleton metrics manager
var customRegistry = prometheus.NewRegistry()     //nolint:gochecknoglobals // singleton registry
var gatherer prometheus.Gatherer = customRegistry //nolint:gochecknoglobals // exposed via GetRegistry

func init() { //nolint:gochecknoinits // global metrics must exist before any component records
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "berth",
		subsystem:        "matching",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initCollectors()
	return m
}

func (m *Manager) initCollectors() {
	m.matchesComputed = m.counter("matches_computed_total", "Total (student, internship) pairs scored.")
	m.matchLatency = m.histogram("match_latency_ms", "Latency of a full recommendation request in milliseconds.")
	m.interactionsRecorded = m.counter("interactions_recorded_total", "Total interaction events appended to the store.")
	m.interactionsDropped = m.counter("interactions_dropped_total", "Total interaction events rejected on backpressure.")

	m.totalStudents = m.gauge("students_total", "Number of students in the store.")
	m.totalInternships = m.gauge("internships_total", "Number of internships in the store.")
	m.totalInteractions = m.gauge("interactions_total", "Number of interaction events in the store.")

	m.queueSize = m.gauge("queue_size", "Current number of queued interaction events.")
	m.queueCapacity = m.gauge("queue_capacity", "Configured capacity of the interaction queue.")
	m.queueUtilization = m.gauge("queue_utilization", "Queue fill ratio between 0 and 1.")
	m.queueEnqueues = m.counter("queue_enqueues_total", "Total successful enqueues.")
	m.queueDequeues = m.counter("queue_dequeues_total", "Total dequeues consumed by workers.")
	m.queueEnqueueErrors = m.counter("queue_enqueue_errors_total", "Total failed enqueue attempts.")
	m.queueLatency = m.histogram("queue_latency_ms", "Enqueue latency in milliseconds.")

	m.workerCount = m.gauge("worker_count", "Number of recorder workers.")
	m.workerLatency = m.histogram("worker_latency_ms", "Per-event recorder processing latency in milliseconds.")
	m.workerErrors = m.counter("worker_errors_total", "Total recorder worker failures.")

	m.storeUpdateLatency = m.histogram("store_update_latency_ms", "Store write latency in milliseconds.")
	m.storeQueryLatency = m.histogram("store_query_latency_ms", "Store read latency in milliseconds.")

	m.httpRequests = m.counterVec("http_requests_total", "HTTP requests by endpoint, method and status.",
		[]string{"endpoint", "method", "status"})
	m.httpRequestDuration = m.histogramVec("http_request_duration_ms", "HTTP request duration in milliseconds.",
		[]string{"endpoint", "method", "status"})

	m.errorsByComponent = m.counterVec("errors_by_component_total", "Errors by component and reason.",
		[]string{"component", "reason"})
	m.errorsByType = m.counterVec("errors_by_type_total", "Errors by type and severity.",
		[]string{"type", "severity"})
	m.errorsByEndpoint = m.counterVec("errors_by_endpoint_total", "HTTP errors by endpoint, method and type.",
		[]string{"endpoint", "method", "type"})

	m.systemMemoryUsage = m.gauge("system_memory_bytes", "Allocated heap bytes.")
	m.systemGoroutineCount = m.gauge("system_goroutines", "Current goroutine count.")
	m.systemGCPause = m.histogram("system_gc_pause_ms", "Average GC pause time in milliseconds.")
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	})
	m.registry.MustRegister(c)
	return c
}

func (m *Manager) counterVec(name, help string, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	}, labels)
	m.registry.MustRegister(c)
	return c
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	})
	m.registry.MustRegister(g)
	return g
}

func (m *Manager) histogram(name, help string) prometheus.Histogram {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
		Buckets: m.histogramBuckets,
	})
	m.registry.MustRegister(h)
	return h
}

func (m *Manager) histogramVec(name, help string, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
		Buckets: m.histogramBuckets,
	}, labels)
	m.registry.MustRegister(h)
	return h
}

// GetRegistry returns the gatherer backing /healthz.
func GetRegistry() prometheus.Gatherer {
	return gatherer
}

// Package-level helpers. Components call these instead of holding a
// Manager reference.

func RecordMatchComputed()                { globalManager.matchesComputed.Inc() }
func RecordMatchLatency(ms float64)       { globalManager.matchLatency.Observe(ms) }
func RecordInteractionRecorded()          { globalManager.interactionsRecorded.Inc() }
func RecordInteractionDropped()           { globalManager.interactionsDropped.Inc() }
func UpdateTotalStudents(n int)           { globalManager.totalStudents.Set(float64(n)) }
func UpdateTotalInternships(n int)        { globalManager.totalInternships.Set(float64(n)) }
func UpdateTotalInteractions(n int)       { globalManager.totalInteractions.Set(float64(n)) }
func UpdateQueueSize(n int)               { globalManager.queueSize.Set(float64(n)) }
func UpdateQueueCapacity(n int)           { globalManager.queueCapacity.Set(float64(n)) }
func UpdateQueueUtilization(r float64)    { globalManager.queueUtilization.Set(r) }
func RecordQueueEnqueue()                 { globalManager.queueEnqueues.Inc() }
func RecordQueueDequeue()                 { globalManager.queueDequeues.Inc() }
func RecordQueueEnqueueError()            { globalManager.queueEnqueueErrors.Inc() }
func RecordQueueLatency(ms float64)       { globalManager.queueLatency.Observe(ms) }
func UpdateWorkerCount(n int)             { globalManager.workerCount.Set(float64(n)) }
func RecordWorkerLatency(ms float64)      { globalManager.workerLatency.Observe(ms) }
func RecordWorkerError()                  { globalManager.workerErrors.Inc() }
func RecordStoreUpdateLatency(ms float64) { globalManager.storeUpdateLatency.Observe(ms) }
func RecordStoreQueryLatency(ms float64)  { globalManager.storeQueryLatency.Observe(ms) }

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

func RecordErrorByComponent(component, reason string) {
	globalManager.errorsByComponent.WithLabelValues(component, reason).Inc()
}

func RecordErrorByType(errType, severity string) {
	globalManager.errorsByType.WithLabelValues(errType, severity).Inc()
}

func RecordErrorByEndpoint(endpoint, method, errType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errType).Inc()
}

func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }
func UpdateSystemGoroutineCount(n int)     { globalManager.systemGoroutineCount.Set(float64(n)) }
func RecordSystemGCPauseTime(ms float64)   { globalManager.systemGCPause.Observe(ms) }
