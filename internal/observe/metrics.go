// Package observe provides observability primitives for signbridge:
// OpenTelemetry metrics with a Prometheus exporter bridge, and HTTP
// middleware recording request latency.
//
// A package-level default [Metrics] instance is provided for convenience;
// tests should use [NewMetrics] with a custom [metric.MeterProvider] to
// avoid cross-test pollution.
package observe

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// meterName is the instrumentation scope name used for all signbridge metrics.
const meterName = "github.com/silentspeaker/signbridge"

// Metrics holds all OpenTelemetry metric instruments for the application.
// The underlying OTel types handle their own synchronisation.
type Metrics struct {
	// ResolveDuration tracks resolution pipeline latency.
	ResolveDuration metric.Float64Histogram

	// ComposeDuration tracks artifact composition latency.
	ComposeDuration metric.Float64Histogram

	// HTTPRequestDuration tracks HTTP request processing time. Use with
	// attributes: attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram

	// TranslateRequests counts translation requests. Use with attribute:
	//   attribute.String("status", "ok"|"empty"|"untranslatable"|"compose_error")
	TranslateRequests metric.Int64Counter

	// WordsTranslated counts resolved words and phrases.
	WordsTranslated metric.Int64Counter

	// WordsSkipped counts words skipped by the fallback resolver.
	WordsSkipped metric.Int64Counter

	// ActiveCompositions tracks in-flight ffmpeg invocations.
	ActiveCompositions metric.Int64UpDownCounter
}

// latencyBuckets defines histogram bucket boundaries in seconds. Resolution
// is sub-millisecond; composition runs for seconds.
var latencyBuckets = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ResolveDuration, err = m.Float64Histogram("signbridge.resolve.duration",
		metric.WithDescription("Latency of the text-to-sign resolution pipeline."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ComposeDuration, err = m.Float64Histogram("signbridge.compose.duration",
		metric.WithDescription("Latency of artifact composition."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("signbridge.http.request.duration",
		metric.WithDescription("HTTP request processing time."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.TranslateRequests, err = m.Int64Counter("signbridge.translate.requests",
		metric.WithDescription("Total translation requests by status."),
	); err != nil {
		return nil, err
	}
	if met.WordsTranslated, err = m.Int64Counter("signbridge.words.translated",
		metric.WithDescription("Total words and phrases resolved to clips."),
	); err != nil {
		return nil, err
	}
	if met.WordsSkipped, err = m.Int64Counter("signbridge.words.skipped",
		metric.WithDescription("Total words skipped by the fallback resolver."),
	); err != nil {
		return nil, err
	}

	if met.ActiveCompositions, err = m.Int64UpDownCounter("signbridge.compose.active",
		metric.WithDescription("Number of in-flight artifact compositions."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// Default returns the package-level Metrics instance backed by the global
// meter provider, creating it on first use.
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		met, err := NewMetrics(otel.GetMeterProvider())
		if err != nil {
			// Instrument creation only fails on invalid names; fall back
			// to a no-op provider rather than crash.
			met, _ = NewMetrics(noop.NewMeterProvider())
		}
		defaultMetrics = met
	})
	return defaultMetrics
}
