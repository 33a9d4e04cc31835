package middleware

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sortiz4/muon"
	"github.com/sortiz4/muon/el"
	"github.com/sortiz4/muon/pkg/markup"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogram(t *testing.T, o prometheus.Observer) *dto.Histogram {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram()
}

func TestPrometheusMiddleware_RecordsSuccessAndError(t *testing.T) {
	t.Run("success increments success counter, duration and bytes", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewMetrics(WithRegistry(reg), WithNamespace("test"))
		engine := muon.New(muon.Config{Middleware: []muon.Middleware{metrics.Middleware()}})

		out, err := engine.Render(context.Background(), el.Paragraph("hello"))
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}

		if got := metricCounterValue(t, metrics.rendersTotal.WithLabelValues("p", "success")); got != 1 {
			t.Fatalf("renders_total{p,success} = %v, want 1", got)
		}
		if got := metrics.rendersTotal.WithLabelValues("p", "error"); metricCounterValue(t, got) != 0 {
			t.Fatal("renders_total{p,error} should be 0")
		}
		if got := metricHistogram(t, metrics.renderDuration.WithLabelValues("p")).GetSampleCount(); got != 1 {
			t.Fatalf("render_duration_seconds count = %d, want 1", got)
		}
		bytes := metricHistogram(t, metrics.renderBytes.WithLabelValues("p"))
		if bytes.GetSampleSum() != float64(len(out)) {
			t.Fatalf("render_bytes sum = %v, want %d", bytes.GetSampleSum(), len(out))
		}
	})

	t.Run("error increments error counters with code", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewMetrics(WithRegistry(reg))
		engine := muon.New(muon.Config{Middleware: []muon.Middleware{metrics.Middleware()}})

		_, err := engine.Render(context.Background(), markup.Base{})
		if err == nil {
			t.Fatal("expected error from Base element")
		}

		name := muon.ElementName(markup.Base{})
		if got := metricCounterValue(t, metrics.rendersTotal.WithLabelValues(name, "error")); got != 1 {
			t.Fatalf("renders_total{error} = %v, want 1", got)
		}
		if got := metricCounterValue(t, metrics.renderErrors.WithLabelValues(name, "E001")); got != 1 {
			t.Fatalf("render_errors_total{E001} = %v, want 1", got)
		}
	})
}

func TestPrometheusMiddleware_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithSubsystem("pages"), WithConstLabels(prometheus.Labels{"site": "docs"}))
	engine := muon.New(muon.Config{Middleware: []muon.Middleware{mw}})

	if _, err := engine.Render(context.Background(), el.Block("x")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"muon_pages_renders_total",
		"muon_pages_render_duration_seconds",
		"muon_pages_render_bytes",
	} {
		if !names[want] {
			t.Errorf("missing metric family %q (have %v)", want, names)
		}
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", markup.ErrNotImplemented, "E001"},
		{"plain", context.Canceled, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorCode(tt.err); got != tt.want {
				t.Errorf("errorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
