package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ruleguard_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ruleguard_request_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	ModerationVerdictsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ruleguard_moderation_verdicts_total",
			Help: "Moderation outcomes by verdict and terminal stage",
		},
		[]string{"verdict", "stage"},
	)

	ModerationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ruleguard_moderation_latency_ms",
			Help:    "End-to-end moderation latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"verdict"},
	)

	RetrievedRules = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ruleguard_retrieved_rules",
			Help:    "Number of rules retrieved per moderation request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	RuleOperationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ruleguard_rule_operations_total",
			Help: "Rule store operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	JudgeCallsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ruleguard_judge_calls_total",
			Help: "Judging model calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	EventsExportedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ruleguard_events_exported_total",
			Help: "Audit events handed to exporters by exporter and outcome",
		},
		[]string{"exporter", "outcome"},
	)
)

type MetricsConfig struct {
	EnableLatency  bool
	EnablePerRoute bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency:  true,
		EnablePerRoute: false,
	}
}

var Config = DefaultMetricsConfig()

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Gatherer() prometheus.Gatherer {
	return registry
}
