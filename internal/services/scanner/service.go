package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"threatscan/internal/domain"
	"threatscan/internal/metrics"
	"threatscan/internal/ports"
	"threatscan/internal/workers/scanrunner"
)

// DefaultDelay matches the public API allowance of four requests a minute.
const DefaultDelay = 15 * time.Second

const tracerName = "threatscan/scanner"

const rateLimitExplanation = "VirusTotal API rate limit exceeded. Free tier allows 4 requests per minute. Please wait before scanning more indicators."

type Service struct {
	lookup   ports.ReputationLookup
	verdicts ports.VerdictRepository
	pacer    scanrunner.Pacer
	log      *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithPacer(p scanrunner.Pacer) Option { return func(s *Service) { s.pacer = p } }
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithTracerProvider replaces the global provider for batch spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(tracerName) }
}

// New wires the orchestrator. lookup may be nil when no API key is
// configured; Scan then fails with domain.ErrNotConfigured.
func New(lookup ports.ReputationLookup, verdicts ports.VerdictRepository, opts ...Option) *Service {
	s := &Service{
		lookup:   lookup,
		verdicts: verdicts,
		pacer:    scanrunner.FixedDelay(DefaultDelay),
		log:      slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Configured reports whether a reputation client is wired.
func (s *Service) Configured() bool { return s.lookup != nil }

// Scan validates indicators, runs the valid ones as one batch and persists
// every verdict in submission order. Invalid entries are reported as
// failures without reaching the reputation service. The returned outcome's
// Results are the stored copies.
func (s *Service) Scan(ctx context.Context, indicators []string) (domain.BatchOutcome, error) {
	if !s.Configured() {
		return domain.BatchOutcome{}, domain.ErrNotConfigured
	}
	v := domain.Partition(indicators)
	var rejected []domain.Failure
	for _, raw := range v.Invalid {
		err := &domain.InvalidIndicatorError{Indicator: raw}
		rejected = append(rejected, domain.Failure{Indicator: raw, Error: err.Error()})
	}

	out := s.RunBatch(ctx, v.Valid)
	out.Failures = append(rejected, out.Failures...)
	out.PartialSuccess = len(out.Failures) > 0 && len(out.Results) > 0

	stored := make([]domain.Verdict, 0, len(out.Results))
	for _, r := range out.Results {
		saved, err := s.verdicts.Create(ctx, r)
		if err != nil {
			return domain.BatchOutcome{}, fmt.Errorf("%w: persist verdict for %s: %w", domain.ErrStorage, r.Indicator, err)
		}
		s.metrics.ObserveVerdict(string(saved.Status))
		stored = append(stored, saved)
	}
	out.Results = stored
	s.metrics.ObserveBatch(batchResult(out), out.RateLimited)
	return out, nil
}

// RunBatch looks indicators up one at a time, in order, pausing on the pacer
// between lookups. A failed lookup is recorded and the batch moves on, except
// when the upstream signals rate limiting: then the sentinel failure is
// appended and no further lookups are made.
func (s *Service) RunBatch(ctx context.Context, indicators []string) domain.BatchOutcome {
	ctx, span := s.tracer.Start(ctx, "scanner.batch", trace.WithAttributes(attribute.Int("batch.size", len(indicators))))
	defer span.End()

	out := domain.BatchOutcome{Results: []domain.Verdict{}, Failures: []domain.Failure{}}
	err := scanrunner.Run(ctx, len(indicators), s.pacer, func(ctx context.Context, i int) bool {
		indicator := indicators[i]
		start := time.Now()
		v, err := s.lookup.Lookup(ctx, indicator)
		if err == nil {
			s.metrics.ObserveLookup("ok", time.Since(start))
			out.Results = append(out.Results, v)
			return true
		}

		s.log.Warn("indicator lookup failed", "indicator", indicator, "error", err)
		out.Failures = append(out.Failures, domain.Failure{Indicator: indicator, Error: err.Error()})
		if !isRateLimited(err) {
			s.metrics.ObserveLookup("error", time.Since(start))
			return true
		}
		s.metrics.ObserveLookup("rate_limited", time.Since(start))
		out.Failures = append(out.Failures, domain.Failure{Indicator: domain.RateLimitIndicator, Error: rateLimitExplanation})
		out.RateLimited = true
		s.log.Warn("rate limit reached, stopping batch", "processed", i+1, "skipped", len(indicators)-i-1)
		return false
	})
	if err != nil {
		s.log.Warn("batch interrupted", "error", err, "results", len(out.Results), "failures", len(out.Failures))
	}

	out.PartialSuccess = len(out.Failures) > 0 && len(out.Results) > 0
	span.SetAttributes(
		attribute.Int("batch.results", len(out.Results)),
		attribute.Int("batch.failures", len(out.Failures)),
		attribute.Bool("batch.rate_limited", out.RateLimited),
	)
	return out
}

// isRateLimited is the single place that decides whether a lookup failure
// means the upstream quota is spent. A 429 status is authoritative; the
// substring match covers errors that only carry text.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var le *domain.LookupError
	if errors.As(err, &le) && le.StatusCode == 429 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}

func batchResult(o domain.BatchOutcome) string {
	switch {
	case len(o.Failures) == 0:
		return "success"
	case len(o.Results) > 0:
		return "partial"
	default:
		return "failed"
	}
}
