package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader for
// programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

// collect gathers all metric data from the reader.
func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

// findMetric searches for a metric by name across all scope metrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetrics_CreatesWithoutError(t *testing.T) {
	m, _ := newTestMetrics(t)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
}

func TestTranslateRequestsCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.TranslateRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "ok")))
	m.TranslateRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "ok")))
	m.TranslateRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "untranslatable")))

	rm := collect(t, reader)
	met := findMetric(rm, "signbridge.translate.requests")
	if met == nil {
		t.Fatal("signbridge.translate.requests not found")
	}

	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("Expected Sum[int64], got %T", met.Data)
	}

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
}

func TestResolveDurationHistogram(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ResolveDuration.Record(ctx, 0.002)
	m.ResolveDuration.Record(ctx, 0.004)

	rm := collect(t, reader)
	met := findMetric(rm, "signbridge.resolve.duration")
	if met == nil {
		t.Fatal("signbridge.resolve.duration not found")
	}

	hist, ok := met.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("Expected Histogram[float64], got %T", met.Data)
	}
	if len(hist.DataPoints) != 1 {
		t.Fatalf("Expected 1 data point, got %d", len(hist.DataPoints))
	}
	if hist.DataPoints[0].Count != 2 {
		t.Errorf("Expected count 2, got %d", hist.DataPoints[0].Count)
	}
}

func TestActiveCompositionsUpDown(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ActiveCompositions.Add(ctx, 1)
	m.ActiveCompositions.Add(ctx, 1)
	m.ActiveCompositions.Add(ctx, -1)

	rm := collect(t, reader)
	met := findMetric(rm, "signbridge.compose.active")
	if met == nil {
		t.Fatal("signbridge.compose.active not found")
	}

	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("Expected Sum[int64], got %T", met.Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 1 {
		t.Errorf("Expected value 1, got %+v", sum.DataPoints)
	}
}

func TestDefault_Idempotent(t *testing.T) {
	first := Default()
	second := Default()
	if first != second {
		t.Error("Default must return the same instance")
	}
}
