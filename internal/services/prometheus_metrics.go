package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	pipelineRuns         *prometheus.CounterVec
	pipelineDuration     prometheus.Histogram
	transactionsFetched  prometheus.Histogram
	transactionsFiltered prometheus.Counter
	malformedRecords     prometheus.Counter
	circuitBreakerState  *prometheus.GaugeVec
	backendRequests      *prometheus.CounterVec
	backendDuration      prometheus.Histogram
	selectionSessions    *prometheus.CounterVec
	activeSelections     prometheus.Gauge
	preferenceWrites     prometheus.Counter
	authenticationEvents *prometheus.CounterVec
	apiErrors            *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(prometheus.DefaultRegisterer))
}

func newPrometheusMetrics(factory promauto.Factory) *PrometheusMetrics {
	return &PrometheusMetrics{
		pipelineRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "history_pipeline_runs_total",
				Help: "Total number of history pipeline runs by outcome",
			},
			[]string{"status"},
		),
		pipelineDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "history_pipeline_duration_milliseconds",
				Help:    "History pipeline duration in milliseconds, fetch included",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsFetched: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "history_transactions_fetched",
				Help:    "Number of transactions fetched per pipeline run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		transactionsFiltered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "history_transactions_filtered_out_total",
				Help: "Total number of fetched transactions rejected by filters",
			},
		),
		malformedRecords: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "history_malformed_records_total",
				Help: "Total number of transactions whose amount was missing or unparseable",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of requests sent to the finance backend",
			},
			[]string{"status"},
		),
		backendDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_seconds",
				Help:    "Finance backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		selectionSessions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selection_sessions_total",
				Help: "Total number of selection session events",
			},
			[]string{"event"},
		),
		activeSelections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "selection_sessions_active",
				Help: "Current number of live selection sessions",
			},
		),
		preferenceWrites: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "preference_writes_total",
				Help: "Total number of stored preference updates",
			},
		),
		authenticationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by route and status class",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	if value <= 0 {
		return
	}

	switch name {
	case "history.pipeline.run":
		if status := tags["status"]; status != "" {
			m.pipelineRuns.WithLabelValues(status).Add(value)
		}
	case "history.transactions_filtered_out":
		m.transactionsFiltered.Add(value)
	case "history.malformed_records":
		m.malformedRecords.Add(value)
	case "backend.request":
		if status := tags["status"]; status != "" {
			m.backendRequests.WithLabelValues(status).Add(value)
		}
	case "selection.event":
		if event := tags["event"]; event != "" {
			m.selectionSessions.WithLabelValues(event).Add(value)
		}
	case "preference.write":
		m.preferenceWrites.Add(value)
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Add(value)
		}
	case "api.error":
		if code := tags["code"]; code != "" {
			m.apiErrors.WithLabelValues(code, tags["endpoint"], tags["status"]).Add(value)
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "history.pipeline":
		m.pipelineDuration.Observe(float64(duration.Milliseconds()))
	case "backend.request":
		m.backendDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "history.transactions_fetched":
		m.transactionsFetched.Observe(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "selection.active":
		m.activeSelections.Set(value)
	case "http.request.seconds":
		m.httpDuration.WithLabelValues(tags["route"], tags["status"]).Observe(value)
	}
}
