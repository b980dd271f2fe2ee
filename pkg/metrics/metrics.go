package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Webhook 更新计数（按意图和处理结果）
	WebhookUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_updates_total",
			Help: "Total number of inbound webhook updates",
		},
		[]string{"intent", "outcome"}, // outcome: replied, ignored, unauthorized, malformed, failed
	)

	// 外部 API 调用延迟（毫秒）
	OutboundCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outbound_call_latency_ms",
			Help:    "Latency of calls to the Telegram and GitHub APIs in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"target", "status"},
	)

	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 告警源运行计数
	AlertRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_runs_total",
			Help: "Total number of alert source runs",
		},
		[]string{"source", "status"}, // status: success, failed, skipped
	)
)

// IncrementWebhookUpdate 增加 webhook 更新计数
func IncrementWebhookUpdate(intent, outcome string) {
	WebhookUpdates.WithLabelValues(intent, outcome).Inc()
}

// RecordOutboundCall 记录外部 API 调用延迟
func RecordOutboundCall(target, status string, duration time.Duration) {
	OutboundCallLatency.WithLabelValues(target, status).Observe(float64(duration.Milliseconds()))
}

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementAlertRun 增加告警源运行计数
func IncrementAlertRun(source, status string) {
	AlertRuns.WithLabelValues(source, status).Inc()
}
