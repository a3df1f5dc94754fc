package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the solver-specific metric instruments.
type Metrics struct {
	solveDuration  metric.Float64Histogram
	solveCount     metric.Int64Counter
	candidateCount metric.Int64Histogram
	solutionCount  metric.Int64Histogram
	rewritePasses  metric.Int64Histogram
	errorCount     metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Note: errors from meter instrument creation are unlikely in practice
	// and would only occur with invalid parameters. We use explicit checks
	// to satisfy the linter while continuing with partial metrics on error.
	var err error

	m.solveDuration, err = meter.Float64Histogram(
		"maketen.solve.duration",
		metric.WithDescription("Duration of solve runs in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.solveDuration, _ = meter.Float64Histogram("maketen.solve.duration")
	}

	m.solveCount, err = meter.Int64Counter(
		"maketen.solve.count",
		metric.WithDescription("Total number of solve runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		m.solveCount, _ = meter.Int64Counter("maketen.solve.count")
	}

	m.candidateCount, err = meter.Int64Histogram(
		"maketen.candidate.count",
		metric.WithDescription("Number of candidate expressions generated per run"),
		metric.WithUnit("{expression}"),
	)
	if err != nil {
		m.candidateCount, _ = meter.Int64Histogram("maketen.candidate.count")
	}

	m.solutionCount, err = meter.Int64Histogram(
		"maketen.solution.count",
		metric.WithDescription("Number of deduplicated solutions returned per run"),
		metric.WithUnit("{solution}"),
	)
	if err != nil {
		m.solutionCount, _ = meter.Int64Histogram("maketen.solution.count")
	}

	m.rewritePasses, err = meter.Int64Histogram(
		"maketen.rewrite.passes",
		metric.WithDescription("Canonicalizer passes spent per run"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		m.rewritePasses, _ = meter.Int64Histogram("maketen.rewrite.passes")
	}

	m.errorCount, err = meter.Int64Counter(
		"maketen.error.count",
		metric.WithDescription("Total number of solver errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("maketen.error.count")
	}

	return m
}

// RecordSolve records metrics for a completed solve run.
func (m *Metrics) RecordSolve(ctx context.Context, inputLen int, duration time.Duration, candidates int64, solutions int, passes int64) {
	attrs := metric.WithAttributes(InputLengthAttr(inputLen))
	m.solveDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.solveCount.Add(ctx, 1, attrs)
	m.candidateCount.Record(ctx, candidates, attrs)
	m.solutionCount.Record(ctx, int64(solutions), attrs)
	m.rewritePasses.Record(ctx, passes, attrs)
}

// RecordError records an error occurrence.
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.errorCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error.type", errorType),
	))
}
