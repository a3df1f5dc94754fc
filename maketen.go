// Package maketen finds every arithmetic expression over an ordered
// sequence of integers that evaluates to a target value.
//
// The numbers keep their given left-to-right order; only the grouping
// and the operators (+, -, *, /, ^) vary. Matching expressions are
// normalized so algebraically equivalent forms collapse into one
// representative, ranked by a complexity heuristic, and rendered as
// infix strings.
package maketen

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/numseq/go-maketen/internal/canon"
	"github.com/numseq/go-maketen/internal/expr"
	"github.com/numseq/go-maketen/internal/generate"
	"github.com/numseq/go-maketen/internal/observability"
)

// Solution is one deduplicated expression reaching the target.
type Solution struct {
	// Text is the rendered infix form, e.g. "1 + 2 + 3 + 4".
	Text string
	// Value is the evaluated result; always equal to the solve target.
	Value int64
	// Complexity is the ranking cost: lower sorts first.
	Complexity int
}

// Solver runs the generate/filter/canonicalize/rank pipeline. The
// zero configuration returned by NewSolver is ready to use; a Solver
// is stateless across calls and safe for concurrent use.
type Solver struct {
	// rules controls construction-time pruning of redundant forms
	rules expr.Rules
	// maxPasses bounds the canonicalizer's convergence loop
	maxPasses int
	// logger receives per-run debug logging
	logger *slog.Logger
	// obs carries the tracer and metric instruments
	obs *observability.Config
}

// Option configures a Solver.
type Option func(*Solver)

// WithStylePruning toggles rejection of redundant-but-valid
// combinations such as subtracting zero or dividing by one. It is on
// by default; disabling it admits the trivial variants as distinct
// candidates (most are still collapsed by the equivalence check).
func WithStylePruning(enabled bool) Option {
	return func(s *Solver) {
		s.rules.PruneStyle = enabled
	}
}

// WithMaxRewritePasses bounds the canonicalizer's convergence loop.
// Values <= 0 select the default.
func WithMaxRewritePasses(n int) Option {
	return func(s *Solver) {
		s.maxPasses = n
	}
}

// WithLogger sets the logger used for per-run debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// ObservabilityConfig configures tracing and metrics for the solver.
// Nil providers disable the respective signal; the zero value keeps
// observability off entirely.
type ObservabilityConfig struct {
	// TracerProvider enables distributed tracing when non-nil.
	TracerProvider trace.TracerProvider
	// MeterProvider enables metrics collection when non-nil.
	MeterProvider metric.MeterProvider
	// ServiceName identifies this solver in traces and metrics.
	ServiceName string
	// ServiceVersion is reported alongside the service name.
	ServiceVersion string
	// EnableServerTiming lets hosts surface Server-Timing headers for
	// solve phases.
	EnableServerTiming bool
}

// WithObservability attaches tracing and metrics configuration.
func WithObservability(cfg ObservabilityConfig) Option {
	return func(s *Solver) {
		var opts []observability.Option
		if cfg.ServiceName != "" {
			opts = append(opts, observability.WithServiceName(cfg.ServiceName))
		}
		if cfg.ServiceVersion != "" {
			opts = append(opts, observability.WithServiceVersion(cfg.ServiceVersion))
		}
		if cfg.TracerProvider != nil {
			opts = append(opts, observability.WithTracerProvider(cfg.TracerProvider))
		}
		if cfg.MeterProvider != nil {
			opts = append(opts, observability.WithMeterProvider(cfg.MeterProvider))
		}
		if cfg.EnableServerTiming {
			opts = append(opts, observability.WithServerTiming())
		}
		s.obs = observability.NewConfig(opts...)
	}
}

// NewSolver creates a solver with the given options applied over the
// defaults: style pruning on, default pass budget, slog default
// logger, observability disabled.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		rules:     expr.DefaultRules(),
		maxPasses: canon.DefaultMaxPasses,
		logger:    slog.Default(),
		obs:       observability.NewConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.obs.Initialize(); err != nil {
		// Initialize only constructs instruments; it cannot fail today.
		s.logger.Warn("observability init failed", "error", err)
	}
	return s
}

// Solve enumerates every expression over numbers (order preserved)
// equal to target and returns the deduplicated solutions ordered by
// non-decreasing complexity, discovery order breaking ties. An empty
// or nil input and a target no combination reaches both yield an
// empty result, not an error. The only error condition is internal:
// canonicalization failing to converge, reported via ErrCanonicalize.
func (s *Solver) Solve(ctx context.Context, numbers []int64, target int64) ([]Solution, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	runID := uuid.NewString()
	ctx, span := s.obs.Tracer().StartSolve(ctx, runID, len(numbers), target)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx, s.logger).With("run_id", runID)
	logger.Debug("solve started", "numbers", numbers, "target", target)

	start := time.Now()
	var (
		generated int64
		matched   int64
		passes    int64
		kept      []*expr.Evaluated
		scores    []int
		seen      = make(map[uint64]struct{})
	)

	timing := observability.StartServerTiming(ctx, "solve")
	for candidate := range generate.Expressions(numbers, s.rules) {
		generated++
		if candidate.Value() != target {
			continue
		}
		matched++

		canonical, n, err := canon.Canonicalize(candidate, s.maxPasses)
		passes += int64(n)
		if err != nil {
			timing.Stop()
			s.obs.Metrics().RecordError(ctx, "canonicalize")
			s.obs.Tracer().RecordError(span, err)
			return nil, fmt.Errorf("%w: %v", ErrCanonicalize, err)
		}

		// Exact structural duplicates are filtered by fingerprint
		// before the quadratic equivalence scan sees them.
		fp := expr.Fingerprint(canonical)
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}

		if slices.ContainsFunc(kept, func(k *expr.Evaluated) bool {
			return expr.Equivalent(k, canonical)
		}) {
			continue
		}
		kept = append(kept, canonical)
		scores = append(scores, expr.Complexity(canonical))
	}
	timing.Stop()

	solutions := make([]Solution, len(kept))
	for i, k := range kept {
		solutions[i] = Solution{
			Text:       k.String(),
			Value:      k.Value(),
			Complexity: scores[i],
		}
	}
	slices.SortStableFunc(solutions, func(a, b Solution) int {
		return a.Complexity - b.Complexity
	})

	elapsed := time.Since(start)
	span.SetAttributes(
		observability.CandidatesAttr(generated),
		observability.MatchesAttr(matched),
		observability.SolutionsAttr(len(solutions)),
		observability.RewritePassesAttr(passes),
	)
	s.obs.Metrics().RecordSolve(ctx, len(numbers), elapsed, generated, len(solutions), passes)
	logger.Debug("solve finished",
		"candidates", generated,
		"matches", matched,
		"solutions", len(solutions),
		"rewrite_passes", passes,
		"elapsed", elapsed,
	)

	return solutions, nil
}

// Solve is the package-level convenience entry point: it runs a
// default Solver and returns only the rendered strings. No
// combination reaching the target yields an empty slice. An internal
// canonicalization failure also returns nil; use a Solver directly to
// observe that condition.
func Solve(numbers []int, target int) []string {
	nums := make([]int64, len(numbers))
	for i, n := range numbers {
		nums[i] = int64(n)
	}
	solutions, err := NewSolver().Solve(context.Background(), nums, int64(target))
	if err != nil {
		return nil
	}
	texts := make([]string, len(solutions))
	for i, sol := range solutions {
		texts[i] = sol.Text
	}
	return texts
}
