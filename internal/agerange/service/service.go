// Package service is the single entry point for age range requests.
//
// A Service owns one provider for its whole lifetime and forwards every call
// to it. Results and failures are returned unchanged: there is no retry and
// no error is swallowed.
//
//	svc := service.Shared()
//	resp, err := svc.RequestAgeRange(ctx, models.AgeGates{
//		Threshold1: 13, Threshold2: models.Gate(15), Threshold3: models.Gate(18),
//	}, window)
//	if errors.Is(err, providers.ErrNotAvailable) {
//		// no age range provided
//	}
//	if r, ok := resp.AgeRange(); ok && r.MeetsGate(18) {
//		// allow 18+ features
//	}
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"agerange/internal/agerange/metrics"
	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers"
	"agerange/internal/agerange/providers/mock"
	"agerange/internal/agerange/providers/platform"
	"agerange/internal/agerange/tracer"
	"agerange/internal/platform/config"
)

// Service forwards age range requests to its provider.
type Service struct {
	provider providers.Provider
	name     string
	mode     config.ProviderMode
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithProvider uses p instead of selecting a backend. A nil p is ignored.
func WithProvider(p providers.Provider) Option {
	return func(s *Service) {
		s.provider = p
	}
}

// WithMode sets how the backend is selected when no provider is supplied.
func WithMode(mode config.ProviderMode) Option {
	return func(s *Service) {
		s.mode = mode
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New creates a service. Without WithProvider the backend is chosen once,
// here, by Select; it never changes afterwards.
func New(opts ...Option) *Service {
	s := &Service{
		mode:   config.ProviderAuto,
		logger: slog.Default(),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.provider == nil {
		s.provider = Select(s.mode)
	}
	s.name = providerName(s.provider)
	return s
}

// Select returns the backend for mode. Auto probes the platform capability
// and falls back to a mock in its default scenario when it is absent.
func Select(mode config.ProviderMode) providers.Provider {
	if usePlatform(mode) {
		return platform.New()
	}
	return mock.New()
}

// SelectFromConfig is Select driven by a full configuration: when the mock is
// chosen it starts from the configured profile, scenario and latency.
func SelectFromConfig(cfg config.Config) (providers.Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if usePlatform(cfg.Provider) {
		return platform.New(), nil
	}

	opts := []mock.Option{mock.WithLatency(cfg.MockLatency)}
	if cfg.MockProfile != "" {
		profile, err := mock.LoadProfile(cfg.MockProfile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mock.WithProfile(profile))
	}
	if cfg.MockScenario != "" {
		scenario, err := mock.ParseScenario(cfg.MockScenario)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mock.WithScenario(scenario))
	}
	return mock.New(opts...), nil
}

func usePlatform(mode config.ProviderMode) bool {
	switch mode {
	case config.ProviderPlatform:
		return true
	case config.ProviderMock:
		return false
	default:
		return platform.Available()
	}
}

var shared = sync.OnceValue(func() *Service {
	provider, err := SelectFromConfig(config.FromEnv())
	if err != nil {
		slog.Default().Warn("age range configuration rejected, selecting the default backend", "error", err)
		return New()
	}
	return New(WithProvider(provider))
})

// Shared returns the process-wide service. It is created on first use,
// configured from the AGERANGE_* environment, and lives until the process
// exits. An invalid configuration is logged and replaced by defaults. Tests
// should construct their own Service with New instead.
func Shared() *Service {
	return shared()
}

// Provider returns the active backend.
func (s *Service) Provider() providers.Provider {
	return s.provider
}

// RequestAgeRange asks the active provider for the person's age range.
// The anchor must stay valid until the call returns.
func (s *Service) RequestAgeRange(ctx context.Context, gates models.AgeGates, anchor providers.Anchor) (resp models.Response, err error) {
	requestID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, tracer.SpanRequestAgeRange,
		tracer.String(tracer.AttrRequestID, requestID),
		tracer.String(tracer.AttrProvider, s.name),
		tracer.String(tracer.AttrGates, gates.String()),
	)
	defer func() { span.End(err) }()

	start := time.Now()
	resp, err = s.provider.RequestAgeRange(ctx, gates, anchor)
	elapsed := time.Since(start)

	outcome := outcomeOf(resp, err)
	span.SetAttributes(
		tracer.String(tracer.AttrOutcome, outcome),
		tracer.Duration(tracer.AttrDurationMS, elapsed),
	)
	if s.metrics != nil {
		s.metrics.RecordRequest(s.name, outcome, elapsed.Seconds())
	}

	if err != nil {
		s.logFailure(ctx, requestID, gates, outcome, err)
		return resp, err
	}

	attrs := []any{
		"request_id", requestID,
		"provider", s.name,
		"gates", gates.String(),
		"outcome", outcome,
		"duration_ms", elapsed.Milliseconds(),
	}
	if r, ok := resp.AgeRange(); ok {
		s.annotateSharing(span, gates, r)
		attrs = append(attrs,
			"lower_bound", r.EffectiveLowerBound(),
			"upper_bounded", r.IsUpperBounded(),
			"declaration", string(r.Declaration),
			"parental_controls", r.ActiveParentalControls.String(),
		)
	}
	s.logger.InfoContext(ctx, "age range request completed", attrs...)
	return resp, nil
}

// ResetMockData forwards to the provider whatever its kind; for non-mock
// providers this is a no-op.
func (s *Service) ResetMockData() {
	ctx, span := s.tracer.Start(context.Background(), tracer.SpanResetMockData,
		tracer.String(tracer.AttrProvider, s.name),
	)
	defer span.End(nil)

	s.provider.ResetMockData()
	if s.metrics != nil {
		s.metrics.RecordReset(s.name)
	}
	s.logger.DebugContext(ctx, "mock data reset", "provider", s.name)
}

func (s *Service) annotateSharing(span tracer.Span, gates models.AgeGates, r models.AgeRange) {
	attrs := []tracer.Attribute{
		tracer.Int(tracer.AttrLowerBound, r.EffectiveLowerBound()),
		tracer.Bool(tracer.AttrUpperBounded, r.IsUpperBounded()),
		tracer.String(tracer.AttrDeclaration, string(r.Declaration)),
		tracer.String(tracer.AttrParentalControl, r.ActiveParentalControls.String()),
	}
	if r.UpperBound != nil {
		attrs = append(attrs, tracer.Int(tracer.AttrUpperBound, *r.UpperBound))
	}
	span.SetAttributes(attrs...)
	span.AddEvent(tracer.EventPromptAnswered)

	if s.metrics == nil {
		return
	}
	for _, gate := range gates.Values() {
		s.metrics.RecordGate(strconv.Itoa(gate), r.MeetsGate(gate))
	}
}

// logFailure logs expected declines quietly and caller bugs loudly.
func (s *Service) logFailure(ctx context.Context, requestID string, gates models.AgeGates, outcome string, err error) {
	attrs := []any{
		"request_id", requestID,
		"provider", s.name,
		"gates", gates.String(),
		"outcome", outcome,
		"error", err,
	}
	switch outcome {
	case string(providers.KindNotAvailable):
		s.logger.InfoContext(ctx, "age range not available", attrs...)
	case string(providers.KindInvalidRequest):
		s.logger.ErrorContext(ctx, "invalid age range request", attrs...)
	case metrics.OutcomeCancelled:
		s.logger.WarnContext(ctx, "age range request cancelled", attrs...)
	default:
		s.logger.ErrorContext(ctx, "age range request failed", attrs...)
	}
}

func outcomeOf(resp models.Response, err error) string {
	if err == nil {
		if resp.IsDeclined() {
			return metrics.OutcomeDeclined
		}
		return metrics.OutcomeSharing
	}
	if kind, ok := providers.KindOf(err); ok {
		return string(kind)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return metrics.OutcomeCancelled
	}
	return string(providers.KindUnknown)
}

func providerName(p providers.Provider) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "custom"
}
