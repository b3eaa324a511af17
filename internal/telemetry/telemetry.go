// Package telemetry provides OpenTelemetry instrumentation for the
// comment-pulse service. It exports Prometheus metrics and provides
// tracing capabilities.
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

	"github.com/jonesrussell/comment-pulse/internal/domain"
)

const serviceName = "comment-pulse"

// Metrics holds all comment-pulse Prometheus metrics.
type Metrics struct {
	// Acquisition metrics
	CommentsFetched prometheus.Counter
	FetchDuration   prometheus.Histogram
	FetchErrors     *prometheus.CounterVec

	// Pipeline metrics
	CommentsProcessed prometheus.Counter
	CommentsDropped   prometheus.Counter
	FilteredTotal     *prometheus.CounterVec
	SentimentTotal    *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
	BatchSize         prometheus.Histogram
}

// Provider wraps telemetry providers.
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

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAcquisitionMetrics(m)
	initPipelineMetrics(m)
	return m
}

func initAcquisitionMetrics(m *Metrics) {
	m.CommentsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commentpulse_comments_fetched_total",
		Help: "Total raw comments fetched from the acquisition source",
	})

	m.FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "commentpulse_fetch_duration_seconds",
		Help:    "Time to fetch one batch of comments",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
	})

	m.FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentpulse_fetch_errors_total",
		Help: "Total comment fetch failures by reason",
	}, []string{"reason"})
}

func initPipelineMetrics(m *Metrics) {
	m.CommentsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commentpulse_comments_processed_total",
		Help: "Total comments that survived the validity gates",
	})

	m.CommentsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commentpulse_comments_dropped_total",
		Help: "Total comments dropped by the validity gates",
	})

	m.FilteredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentpulse_comments_filtered_total",
		Help: "Total comments labeled spam or troll",
	}, []string{"comment_type"})

	m.SentimentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentpulse_sentiment_total",
		Help: "Total scored comments by sentiment label",
	}, []string{"sentiment"})

	m.PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "commentpulse_pipeline_duration_seconds",
		Help:    "Time to run the full processing pipeline over one batch",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "commentpulse_batch_size",
		Help:    "Number of raw comments per pipeline run",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})
}

// RecordFetch records a completed acquisition call.
func (p *Provider) RecordFetch(count int, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.CommentsFetched.Add(float64(count))
	p.Metrics.FetchDuration.Observe(duration.Seconds())
}

// RecordFetchError records a failed acquisition call.
func (p *Provider) RecordFetchError(reason string) {
	if p == nil {
		return
	}
	p.Metrics.FetchErrors.WithLabelValues(reason).Inc()
}

// RecordBatch records a completed pipeline run.
func (p *Provider) RecordBatch(duration time.Duration, batchSize, processed, dropped int) {
	if p == nil {
		return
	}
	p.Metrics.PipelineDuration.Observe(duration.Seconds())
	p.Metrics.BatchSize.Observe(float64(batchSize))
	p.Metrics.CommentsProcessed.Add(float64(processed))
	p.Metrics.CommentsDropped.Add(float64(dropped))
}

// RecordClassification records a classified comment.
func (p *Provider) RecordClassification(commentType domain.CommentType) {
	if p == nil {
		return
	}
	if commentType != domain.CommentTypeNormal {
		p.Metrics.FilteredTotal.WithLabelValues(string(commentType)).Inc()
	}
}

// RecordSentiment records a scored comment.
func (p *Provider) RecordSentiment(sentiment domain.Sentiment) {
	if p == nil {
		return
	}
	p.Metrics.SentimentTotal.WithLabelValues(string(sentiment)).Inc()
}

// StartSpan starts a trace span. Safe on a nil provider.
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
