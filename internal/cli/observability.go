// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/z5labs/lintcfg/internal/otelslog"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName = "lintcfg"
	tracerName  = "github.com/z5labs/lintcfg/internal/cli"
)

// InvalidLogLevelError occurs when --log-level is not a known slog level.
type InvalidLogLevelError struct {
	Level string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q: %s", e.Level, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidLogLevelError) Unwrap() error {
	return e.Cause
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(level))
	if err != nil {
		return nil, InvalidLogLevelError{Level: level, Cause: err}
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	})
	return slog.New(otelslog.Wrap(h)), nil
}

type shutdownFunc func(context.Context) error

type traceOptions struct {
	// stdout writes spans, pretty printed, to w.
	stdout bool
	w      io.Writer

	// otlpTarget is a gRPC target of an OTLP collector.
	otlpTarget string
}

func (o traceOptions) enabled() bool {
	return o.stdout || o.otlpTarget != ""
}

func newTracerProvider(ctx context.Context, opts traceOptions) (trace.TracerProvider, shutdownFunc, error) {
	if !opts.enabled() {
		return tracenoop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(
		ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	}

	var closers []shutdownFunc
	if opts.stdout {
		exp, err := stdouttrace.New(
			stdouttrace.WithWriter(opts.w),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, nil, err
		}
		tpOpts = append(tpOpts, sdktrace.WithSyncer(exp))
	}
	if opts.otlpTarget != "" {
		conn, err := grpc.DialContext(
			ctx,
			opts.otlpTarget,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func(context.Context) error {
			return conn.Close()
		})

		exp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, nil, errors.Join(err, conn.Close())
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}

	tp := sdktrace.NewTracerProvider(tpOpts...)
	shutdown := func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		for _, c := range closers {
			err = errors.Join(err, c(ctx))
		}
		return err
	}
	return tp, shutdown, nil
}
