package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insight_aggregation_duration_seconds",
			Help:    "Duration of one notification aggregation pass",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
	)

	NotificationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_notifications_generated_total",
			Help: "Total notifications produced by aggregation passes",
		},
		[]string{"type"}, // type: error, warning, info
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mq_events_published_total",
			Help: "Total events published to the exchange",
		},
		[]string{"routing_key", "status"}, // status: success, failed
	)

	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func RecordAggregation(duration time.Duration) {
	AggregationDuration.Observe(duration.Seconds())
}

func IncrementNotificationsGenerated(notifType string) {
	NotificationsGenerated.WithLabelValues(notifType).Inc()
}

func IncrementEventsPublished(routingKey, status string) {
	EventsPublished.WithLabelValues(routingKey, status).Inc()
}

func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}
