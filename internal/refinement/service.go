package refinement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"coretypes/internal/refinement/metrics"
	"coretypes/pkg/domain"
	dErrors "coretypes/pkg/domain-errors"
	"coretypes/pkg/platform/sentinel"
	"coretypes/pkg/requestcontext"
)

const (
	tracerName        = "coretypes/refinement"
	defaultBatchLimit = 1000

	maxYear         = 9999
	maxDatePart     = math.MaxInt32
	maxMilliseconds = 0x1p63
)

// Service checks values against the refinement catalog and exposes the
// generation helpers. All refinement failures surface as CheckResults;
// only lookup, limit and generation problems are returned as errors.
type Service struct {
	catalog    *Catalog
	uuids      *domain.UUIDGenerator
	clock      domain.Clock
	batchLimit int
	workers    int
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock sets the clock used by Now outside of a request.
func WithClock(clock domain.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithUUIDGenerator(gen *domain.UUIDGenerator) Option {
	return func(s *Service) {
		s.uuids = gen
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithBatchLimit caps the number of values accepted by CheckAll.
func WithBatchLimit(limit int) Option {
	return func(s *Service) {
		s.batchLimit = limit
	}
}

// WithWorkers bounds the goroutines CheckAll runs concurrently.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.workers = n
	}
}

func New(catalog *Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	svc := &Service{
		catalog:    catalog,
		clock:      time.Now,
		batchLimit: defaultBatchLimit,
		workers:    runtime.GOMAXPROCS(0),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.batchLimit <= 0 {
		return nil, fmt.Errorf("batch limit must be positive, got %d", svc.batchLimit)
	}
	if svc.workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", svc.workers)
	}
	if svc.uuids == nil {
		svc.uuids = domain.NewUUIDGenerator(nil)
	}
	if svc.clock == nil {
		svc.clock = time.Now
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer(tracerName)
	}
	return svc, nil
}

// Names lists the refinements the service can check.
func (s *Service) Names() []string {
	return s.catalog.Names()
}

// Describe lists the refinements with their input kind and widenings.
func (s *Service) Describe() []Descriptor {
	return s.catalog.Describe()
}

// Check tests value against the named refinement. Temporal refinements
// accept RFC 3339 strings, which are parsed before the check; every other
// input is passed through unchanged so that no coercion takes place.
func (s *Service) Check(ctx context.Context, name string, value any) (*CheckResult, error) {
	ctx, span := s.tracer.Start(ctx, "refinement.Check",
		trace.WithAttributes(attribute.String("refinement", name)))
	defer span.End()

	e, err := s.catalog.Lookup(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	result, err := s.check(e, value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refinement check failed")
		return nil, err
	}
	span.SetAttributes(attribute.Bool("valid", result.Valid))

	s.logger.DebugContext(ctx, "refinement checked",
		"request_id", requestcontext.RequestID(ctx),
		"refinement", name,
		"valid", result.Valid,
	)
	return result, nil
}

func (s *Service) check(e Entry, value any) (*CheckResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveCheckLatency(e.Name, time.Since(start)) }()

	input := value
	if e.Kind == KindTime {
		if str, ok := value.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, str); err == nil {
				input = t
			}
		}
	}

	result := &CheckResult{Refinement: e.Name, Input: value}
	refined, err := e.Refine(input)
	switch {
	case err == nil:
		result.Valid = true
		result.Value = refined
	case domain.IsValidationFailure(err):
		result.Reason = err.Error()
	default:
		return nil, err
	}
	s.metrics.IncrementOutcome(e.Name, result.Valid)
	return result, nil
}

// CheckAll tests every value against the named refinement concurrently.
// Results keep the order of values.
func (s *Service) CheckAll(ctx context.Context, name string, values []any) ([]CheckResult, error) {
	ctx, span := s.tracer.Start(ctx, "refinement.CheckAll", trace.WithAttributes(
		attribute.String("refinement", name),
		attribute.Int("batch_size", len(values)),
	))
	defer span.End()

	e, err := s.catalog.Lookup(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if len(values) > s.batchLimit {
		err := dErrors.Wrap(sentinel.ErrLimitExceeded, dErrors.CodeValidation,
			fmt.Sprintf("batch of %d values exceeds the limit of %d", len(values), s.batchLimit))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.metrics.ObserveBatchSize(len(values))

	results := make([]CheckResult, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, v := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.check(e, v)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch check failed")
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch check cancelled")
		}
		return nil, err
	}

	s.logger.DebugContext(ctx, "refinement batch checked",
		"request_id", requestcontext.RequestID(ctx),
		"refinement", name,
		"count", len(values),
	)
	return results, nil
}

// NewUUID returns a fresh random version 4 UUID.
func (s *Service) NewUUID(ctx context.Context) (domain.UUID, error) {
	_, span := s.tracer.Start(ctx, "refinement.NewUUID")
	defer span.End()

	id, err := s.uuids.New()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "uuid generation failed")
		s.logger.ErrorContext(ctx, "failed to generate uuid",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return "", err
	}
	s.metrics.IncrementGenerated("uuid")
	return id, nil
}

// Now returns the request-scoped time when middleware set one, and reads
// the service clock otherwise.
func (s *Service) Now(ctx context.Context) domain.Instant {
	if t, ok := requestcontext.Time(ctx); ok {
		return t
	}
	return domain.NowFrom(s.clock)
}

// NewLocalDate validates the parts at the boundary and builds the date at
// UTC midnight. Months are 0-based; out-of-range months and days roll over.
func (s *Service) NewLocalDate(ctx context.Context, year, month, day any) (domain.LocalDate, error) {
	y, err := domain.AsPositiveInt(year)
	if err != nil {
		return domain.LocalDate{}, fieldError("year", err)
	}
	if y > maxYear {
		return domain.LocalDate{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("year: must be at most %d", maxYear))
	}
	m, err := domain.AsNonNegativeInt(month)
	if err != nil {
		return domain.LocalDate{}, fieldError("month", err)
	}
	if m > maxDatePart {
		return domain.LocalDate{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("month: must be at most %d", maxDatePart))
	}
	d, err := domain.AsPositiveInt(day)
	if err != nil {
		return domain.LocalDate{}, fieldError("day", err)
	}
	if d > maxDatePart {
		return domain.LocalDate{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("day: must be at most %d", maxDatePart))
	}

	date, err := domain.AsLocalDate(domain.NewLocalDate(int(y), int(m), int(d)))
	if err != nil {
		return domain.LocalDate{}, fieldError("date", err)
	}
	s.metrics.IncrementGenerated("local_date")
	s.logger.DebugContext(ctx, "local date built",
		"request_id", requestcontext.RequestID(ctx),
		"date", date.Format(time.DateOnly),
	)
	return date, nil
}

// DurationOf converts amount of unit to milliseconds. Unlike domain.DurationOf
// it rejects units without a fixed length, any result that is not a Duration,
// and results too large for an int64 millisecond count.
func (s *Service) DurationOf(ctx context.Context, amount any, unit string) (domain.Duration, error) {
	n, err := domain.AsNonNegativeNumber(amount)
	if err != nil {
		return 0, fieldError("amount", err)
	}
	u, err := domain.ParseTimeUnit(unit)
	if err != nil {
		return 0, err
	}
	if u == domain.Months || u == domain.Years {
		return 0, dErrors.New(dErrors.CodeValidation, "time unit has no fixed length: "+u.String())
	}

	d, err := domain.AsDuration(float64(domain.DurationOf(float64(n), u)))
	if err != nil {
		return 0, fieldError("amount", err)
	}
	if float64(d) >= maxMilliseconds {
		return 0, dErrors.New(dErrors.CodeValidation, "amount: duration exceeds the int64 millisecond range")
	}
	s.metrics.IncrementGenerated("duration")
	s.logger.DebugContext(ctx, "duration computed",
		"request_id", requestcontext.RequestID(ctx),
		"unit", u.String(),
		"milliseconds", d.Milliseconds(),
	)
	return d, nil
}

func fieldError(field string, err error) error {
	return dErrors.Wrap(err, dErrors.CodeValidation, field+": "+err.Error())
}
