// Package metrics регистрирует метрики Prometheus сервиса студии.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы обращения к ассистенту.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
	OutcomeDisabled = "disabled"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dreambody",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"method", "route", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dreambody",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	aiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dreambody",
		Name:      "ai_requests_total",
		Help:      "Fitness assistant calls by outcome.",
	}, []string{"outcome"})

	aiDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dreambody",
		Name:      "ai_request_duration_seconds",
		Help:      "Fitness assistant call latency.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	chatSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dreambody",
		Name:      "chat_sessions_open",
		Help:      "Currently open chat sessions.",
	})
)

// ObserveHTTP учитывает завершённый HTTP-запрос.
func ObserveHTTP(method, route string, code int, d time.Duration) {
	httpRequests.WithLabelValues(method, route, statusLabel(code)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveAI учитывает обращение к ассистенту.
func ObserveAI(outcome string, d time.Duration) {
	aiRequests.WithLabelValues(outcome).Inc()
	if outcome != OutcomeDisabled {
		aiDuration.Observe(d.Seconds())
	}
}

// SessionOpened увеличивает число открытых сессий чата.
func SessionOpened() { chatSessions.Inc() }

// SessionClosed уменьшает число открытых сессий чата.
func SessionClosed() { chatSessions.Dec() }

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
