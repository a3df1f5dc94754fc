package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithServiceName("test-solver"),
		WithServiceVersion("1.2.3"),
		WithServerTiming(),
	)

	if cfg.ServiceName != "test-solver" {
		t.Errorf("expected service name 'test-solver', got '%s'", cfg.ServiceName)
	}
	if cfg.ServiceVersion != "1.2.3" {
		t.Errorf("expected service version '1.2.3', got '%s'", cfg.ServiceVersion)
	}
	if !cfg.EnableServerTiming {
		t.Error("expected server timing to be enabled")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.ServiceName == "" {
		t.Error("expected a default service name")
	}
	if cfg.TracerProvider != nil || cfg.MeterProvider != nil {
		t.Error("expected providers to default to nil")
	}
}

func TestConfigInitialize(t *testing.T) {
	cfg := NewConfig(
		WithTracerProvider(tracenoop.NewTracerProvider()),
		WithMeterProvider(noop.NewMeterProvider()),
		WithServiceName("test-solver"),
	)

	if err := cfg.Initialize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tracer() == nil {
		t.Error("expected tracer to be initialized")
	}
	if cfg.Metrics() == nil {
		t.Error("expected metrics to be initialized")
	}
}

func TestConfigInitializeNoProviders(t *testing.T) {
	cfg := NewConfig(WithServiceName("test-solver"))

	if err := cfg.Initialize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No-op instances must be safe to use.
	ctx, span := cfg.Tracer().StartSolve(context.Background(), "run", 4, 10)
	span.End()
	cfg.Metrics().RecordSolve(ctx, 4, time.Millisecond, 100, 3, 7)
	cfg.Metrics().RecordError(ctx, "canonicalize")
}

func TestNilConfigFallbacks(t *testing.T) {
	var cfg *Config
	if cfg.Tracer() == nil {
		t.Error("nil config should fall back to a no-op tracer")
	}
	if cfg.Metrics() == nil {
		t.Error("nil config should fall back to no-op metrics")
	}
}

func TestStartServerTimingWithoutContext(t *testing.T) {
	metric := StartServerTiming(context.Background(), "solve")
	if metric == nil {
		t.Fatal("expected non-nil metric")
	}
	metric.Stop() // must not panic
}

func TestStartServerTimingWithHeader(t *testing.T) {
	h := &servertiming.Header{}
	ctx := servertiming.NewContext(context.Background(), h)

	metric := StartServerTimingWithDesc(ctx, "solve", "expression search")
	metric.Stop()

	if len(h.Metrics) != 1 {
		t.Fatalf("expected one recorded metric, got %d", len(h.Metrics))
	}
	if h.Metrics[0].Name != "solve" {
		t.Errorf("expected metric name 'solve', got '%s'", h.Metrics[0].Name)
	}
}

func TestLoggerWithTraceNoSpan(t *testing.T) {
	logger := slog.Default()
	enriched := LoggerWithTrace(context.Background(), logger)
	if enriched != logger {
		t.Error("expected the original logger when no span is active")
	}
}
