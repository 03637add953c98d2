package telemetry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	ServiceName = "partpick"

	// EnvEndpoint enables OTLP export when set
	EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

	shutdownTimeout = 5 * time.Second
)

var version = "dev"

// Telemetry owns the trace and log providers for one process
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	loggerProvider *sdklog.LoggerProvider
	Logger         *slog.Logger
}

func SetVersion(v string) {
	version = v
}

type Options struct {
	// Debug enables debug-level local logging
	Debug bool
	// LogWriter receives local logs; nil means stderr.
	// The TUI passes a file here so logs do not draw over the screen.
	LogWriter io.Writer
	// Getenv reads the environment; nil uses os.Getenv
	Getenv func(string) string
}

// Setup configures OTLP export when OTEL_EXPORTER_OTLP_ENDPOINT is set,
// otherwise returns a local text logger.
func Setup(ctx context.Context, opts Options) (*Telemetry, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if getenv(EnvEndpoint) == "" {
		return newLocal(opts), nil
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tracerProvider, err := newTracerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	loggerProvider, err := newLoggerProvider(ctx, res)
	if err != nil {
		_ = tracerProvider.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	global.SetLoggerProvider(loggerProvider)

	logger := otelslog.NewLogger(ServiceName,
		otelslog.WithLoggerProvider(loggerProvider),
		otelslog.WithVersion(version),
	)

	return &Telemetry{
		tracerProvider: tracerProvider,
		loggerProvider: loggerProvider,
		Logger:         logger,
	}, nil
}

// Exporting reports whether spans and logs leave the process
func (t *Telemetry) Exporting() bool {
	return t.tracerProvider != nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.tracerProvider == nil && t.loggerProvider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if t.loggerProvider != nil {
		if err := t.loggerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if t.tracerProvider != nil {
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(version),
		),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(5*time.Second),
		),
	), nil
}

func newLoggerProvider(ctx context.Context, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	), nil
}

func newLocal(opts Options) *Telemetry {
	if !opts.Debug {
		return &Telemetry{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	}
	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Telemetry{
		Logger: slog.New(handler).With("service", ServiceName, "version", version),
	}
}

// NewNoop returns telemetry that discards everything
func NewNoop() *Telemetry {
	return newLocal(Options{})
}
