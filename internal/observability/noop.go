package observability

import (
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer:      tracenoop.NewTracerProvider().Tracer(""),
		serviceName: "",
	}
}

// NewNoopMetrics creates metrics that do nothing.
func NewNoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("")
	m := &Metrics{}

	// Note: noop meter never returns errors, but we must check them to satisfy the linter.
	m.solveDuration, _ = meter.Float64Histogram("maketen.solve.duration") //nolint:errcheck
	m.solveCount, _ = meter.Int64Counter("maketen.solve.count")           //nolint:errcheck
	m.candidateCount, _ = meter.Int64Histogram("maketen.candidate.count") //nolint:errcheck
	m.solutionCount, _ = meter.Int64Histogram("maketen.solution.count")   //nolint:errcheck
	m.rewritePasses, _ = meter.Int64Histogram("maketen.rewrite.passes")   //nolint:errcheck
	m.errorCount, _ = meter.Int64Counter("maketen.error.count")           //nolint:errcheck

	return m
}
