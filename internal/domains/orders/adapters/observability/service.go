package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
)

const tracerName = "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order engine with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core order engine.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// List returns all resolved order views with instrumentation.
func (s *Service) List(ctx context.Context) ([]*types.OrderView, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

// GetByID loads a single resolved order view with instrumentation.
func (s *Service) GetByID(ctx context.Context, id string) (*types.OrderView, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.String("order.id", id))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get order", slog.String("order.id", id))
	}
	return result, nil
}

// Create persists a new order with instrumentation.
func (s *Service) Create(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error) {
	ctx, span := s.startSpan(ctx, "Service.Create", attribute.String("order.client_id", input.ClientID))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.String("client.id", input.ClientID), slog.Int("line.count", len(input.LineItems)))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.String("client.id", input.ClientID))
	}
	if result != nil && result.Order != nil {
		s.metrics.recordCreated(ctx, result.Order.Status)
		s.logInfo(ctx, "order created", slog.String("order.id", result.Order.ID), slog.String("status", string(result.Order.Status)))
	}
	return result, nil
}

// Update applies field changes to an existing order with instrumentation.
func (s *Service) Update(ctx context.Context, id string, input types.UpdateOrderInput) (*types.OrderView, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.String("order.id", id))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.String("order.id", id))
	result, err := s.inner.Update(ctx, id, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.String("order.id", id))
	}
	if result != nil && result.Order != nil {
		s.metrics.recordUpdated(ctx, result.Order.Status)
		s.logInfo(ctx, "order updated", slog.String("order.id", result.Order.ID), slog.String("status", string(result.Order.Status)))
	}
	return result, nil
}

// Delete removes an order with instrumentation.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.String("order.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("order.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.String("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	args := make([]any, 0, len(attrs)+1)
	for _, attr := range attrs {
		args = append(args, attr)
	}
	args = append(args, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, toSlogAttrs(args)...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func toSlogAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(args))
	for _, arg := range args {
		if attr, ok := arg.(slog.Attr); ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.created")
	updated, _ := m.Int64Counter("orders.updated")
	deleted, _ := m.Int64Counter("orders.deleted")
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	if m.created == nil {
		return
	}
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	if m.updated == nil {
		return
	}
	m.updated.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted == nil {
		return
	}
	m.deleted.Add(ctx, 1)
}
