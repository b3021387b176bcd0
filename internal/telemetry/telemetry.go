// Package telemetry installs the global OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Config struct {
	// Endpoint is the OTLP gRPC collector (host:port). Empty disables export.
	Endpoint    string
	Insecure    bool
	Service     string
	Environment string
}

// ShutdownFunc flushes buffered spans and stops the exporter.
type ShutdownFunc func(context.Context) error

func nop(context.Context) error { return nil }

// Init exports spans over OTLP gRPC when an endpoint is configured and
// installs the provider globally. Without an endpoint the global no-op
// provider stays in place and the returned shutdown does nothing.
func Init(ctx context.Context, cfg Config, log *slog.Logger) (ShutdownFunc, error) {
	if cfg.Endpoint == "" {
		log.Debug("tracing disabled: no OTLP endpoint")
		return nop, nil
	}
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nop, fmt.Errorf("otlp trace exporter: %w", err)
	}
	tp, err := newProvider(cfg, sdktrace.NewBatchSpanProcessor(exp))
	if err != nil {
		_ = exp.Shutdown(ctx)
		return nop, err
	}
	otel.SetTracerProvider(tp)
	log.Info("otel tracer initialized", "endpoint", cfg.Endpoint)
	return tp.Shutdown, nil
}

func newProvider(cfg Config, sp sdktrace.SpanProcessor) (*sdktrace.TracerProvider, error) {
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(cfg.Service),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
	), nil
}

// Flush gives shutdown a few seconds to drain pending spans.
func Flush(ctx context.Context, shutdown ShutdownFunc, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("otel flush failed", "error", err)
	}
}
