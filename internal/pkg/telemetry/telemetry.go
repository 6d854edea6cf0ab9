// Package telemetry wires OpenTelemetry logging, metrics and tracing with
// OTLP exporters over gRPC. All providers share a single Resource describing
// the service and are registered globally. Init returns a ShutdownFunc that
// flushes and stops every pipeline.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// loggerProvider holds the globally registered log provider, if Init ran.
// The logger package uses it to bridge zap entries into OTLP.
var loggerProvider *sdklog.LoggerProvider

// ShutdownFunc flushes and stops all telemetry providers. Call it during
// application shutdown so no telemetry data is lost.
type ShutdownFunc func(ctx context.Context) error

// LoggerProvider returns the registered log provider, or nil when telemetry
// has not been initialized.
func LoggerProvider() *sdklog.LoggerProvider {
	return loggerProvider
}

// newResource merges the default system resource with the service name
// attribute identifying this process in the observability backend.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// initMeterProvider builds an OTLP gRPC MeterProvider with a periodic reader
// and registers it globally.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider builds an OTLP gRPC TracerProvider with a batched
// exporter and registers it globally.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// initLoggerProvider builds an OTLP gRPC LoggerProvider with a batch
// processor and stores it for the logger bridge.
func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	loggerProvider = lp
	return lp, nil
}

// Init configures OpenTelemetry logs, metrics and traces using OTLP over
// gRPC. The serviceName identifies the process in the telemetry backend.
// The returned ShutdownFunc stops every provider and must be called on exit.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		errs := []error{
			lp.Shutdown(ctx),
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		}
		loggerProvider = nil
		return errors.Join(errs...)
	}, nil
}
