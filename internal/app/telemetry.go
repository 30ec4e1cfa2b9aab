package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/movie-discovery/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const instrumentationName = "github.com/metinatakli/movie-discovery/internal/app"

// InitTelemetry installs the global OpenTelemetry trace, metric and log
// providers and returns a function that flushes and stops them. Without a
// collector URL it is a no-op.
func (app *Application) InitTelemetry() (func(context.Context), error) {
	endpoint := app.config.OtelCollectorUrl
	if endpoint == "" {
		app.logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("movie-discovery"),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(app.config.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	tracerProvider, err := newTracerProvider(ctx, endpoint, res)
	if err != nil {
		return nil, err
	}

	meterProvider, err := newMeterProvider(ctx, endpoint, res)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx))
	}

	loggerProvider, err := newLoggerProvider(ctx, endpoint, res)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx), meterProvider.Shutdown(ctx))
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	shutdown := func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(shutdownCtx),
			meterProvider.Shutdown(shutdownCtx),
			loggerProvider.Shutdown(shutdownCtx),
		)
		if err != nil {
			app.logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}

	return shutdown, nil
}

func newTracerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	return trace.NewTracerProvider(
		trace.WithSampler(trace.AlwaysSample()),
		trace.WithResource(res),
		trace.WithBatcher(exporter),
	), nil
}

func newMeterProvider(ctx context.Context, endpoint string, res *resource.Resource) (*metric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel metric exporter: %w", err)
	}

	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(15*time.Second))),
	), nil
}

func newLoggerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*log.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel log exporter: %w", err)
	}

	return log.NewLoggerProvider(
		log.WithResource(res),
		log.WithProcessor(log.NewBatchProcessor(exporter)),
	), nil
}

// appMetrics holds the instruments recorded by the carousel handlers.
type appMetrics struct {
	carouselSteps      otelmetric.Int64Counter
	settledTransitions otelmetric.Int64Counter
}

func newAppMetrics(meter otelmetric.Meter) (*appMetrics, error) {
	steps, err := meter.Int64Counter("carousel.steps",
		otelmetric.WithDescription("Carousel advance and retreat requests by outcome."),
		otelmetric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create carousel.steps counter: %w", err)
	}

	settled, err := meter.Int64Counter("carousel.transitions.settled",
		otelmetric.WithDescription("Slide transitions abandoned by a page render before they completed."),
		otelmetric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create carousel.transitions.settled counter: %w", err)
	}

	return &appMetrics{
		carouselSteps:      steps,
		settledTransitions: settled,
	}, nil
}

func (m *appMetrics) carouselStep(ctx context.Context, category domain.Category, direction string, dropped bool) {
	outcome := "accepted"
	if dropped {
		outcome = "dropped"
	}

	m.carouselSteps.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("category", category.String()),
		attribute.String("direction", direction),
		attribute.String("outcome", outcome),
	))
}

func (m *appMetrics) settledTransition(ctx context.Context, category domain.Category) {
	m.settledTransitions.Add(ctx, 1, otelmetric.WithAttributes(attribute.String("category", category.String())))
}

// MultiHandler is a slog.Handler that dispatches log records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler that forwards records to the provided handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{
		handlers: handlers,
	}
}

// Enabled reports whether any of the underlying handlers are enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle dispatches the record to all underlying handlers.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		// We ignore errors from individual handlers.
		_ = handler.Handle(ctx, record)
	}
	return nil
}

// WithAttrs creates a new MultiHandler with the provided attributes added to each sub-handler.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: newHandlers}
}

// WithGroup creates a new MultiHandler with the provided group name added to each sub-handler.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: newHandlers}
}
