// Package telemetry provides Prometheus metrics and a tracer handle for the
// analysis service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "content-analysis"

// Metrics holds the service's Prometheus meters.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	AnalysesTotal    prometheus.Counter
	AnalysisDuration prometheus.Histogram
	RateLimitedTotal prometheus.Counter
	AuthFailedTotal  prometheus.Counter
}

// Provider bundles the tracer and metrics handed to the API layer.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartAnalysis opens a span around one analyze call and records its
// duration on end.
func (p *Provider) StartAnalysis(ctx context.Context, words, messages int) (context.Context, func()) {
	start := time.Now()
	ctx, span := p.Tracer.Start(ctx, "analyze",
		trace.WithAttributes(
			attribute.Int("words", words),
			attribute.Int("messages", messages),
		))
	return ctx, func() {
		span.End()
		p.Metrics.AnalysesTotal.Inc()
		p.Metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}
}

func initMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "content_analysis_requests_total",
			Help: "Total HTTP requests by path and status",
		}, []string{"path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "content_analysis_request_duration_seconds",
			Help:    "HTTP request handling time",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"path"}),

		AnalysesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "content_analysis_analyses_total",
			Help: "Total successful analyze calls",
		}),

		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "content_analysis_analysis_duration_seconds",
			Help:    "Time spent in the content analyzer",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		RateLimitedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "content_analysis_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),

		AuthFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "content_analysis_auth_failed_total",
			Help: "Requests rejected for a missing or invalid API key",
		}),
	}
}
