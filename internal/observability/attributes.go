// Package observability provides OpenTelemetry-based instrumentation
// for the solver.
//
// It supports distributed tracing, metrics collection, and enhanced
// structured logging. All observability features are opt-in. When not
// configured, no-op implementations are used with zero performance
// overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/numseq/go-maketen"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/numseq/go-maketen"
)

// Solver semantic attribute keys following OpenTelemetry conventions.
const (
	AttrRunID         = "maketen.run_id"
	AttrInputLength   = "maketen.input.length"
	AttrTarget        = "maketen.target"
	AttrCandidates    = "maketen.candidates"
	AttrMatches       = "maketen.matches"
	AttrSolutions     = "maketen.solutions"
	AttrRewritePasses = "maketen.rewrite_passes"

	// Log field names used when enriching loggers with trace context.
	LogFieldTraceID = "trace_id"
	LogFieldSpanID  = "span_id"
)

// RunIDAttr builds the run id span attribute.
func RunIDAttr(id string) attribute.KeyValue {
	return attribute.String(AttrRunID, id)
}

// InputLengthAttr builds the input length span attribute.
func InputLengthAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrInputLength, n)
}

// TargetAttr builds the target value span attribute.
func TargetAttr(target int64) attribute.KeyValue {
	return attribute.Int64(AttrTarget, target)
}

// CandidatesAttr builds the generated-candidate-count span attribute.
func CandidatesAttr(n int64) attribute.KeyValue {
	return attribute.Int64(AttrCandidates, n)
}

// MatchesAttr builds the target-match-count span attribute.
func MatchesAttr(n int64) attribute.KeyValue {
	return attribute.Int64(AttrMatches, n)
}

// SolutionsAttr builds the returned-solution-count span attribute.
func SolutionsAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrSolutions, n)
}

// RewritePassesAttr builds the canonicalizer pass-count span attribute.
func RewritePassesAttr(n int64) attribute.KeyValue {
	return attribute.Int64(AttrRewritePasses, n)
}
