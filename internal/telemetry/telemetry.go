// Package telemetry wires OpenTelemetry tracing and metrics for the user
// service. Instruments come from the global providers, which are no-ops until
// the hosting process installs real ones.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/gtsdev/usuarios"
	meterName  = "github.com/gtsdev/usuarios"
)

// Metrics holds the metric instruments for store operations.
type Metrics struct {
	OperationCount    metric.Int64Counter
	OperationErrors   metric.Int64Counter
	OperationDuration metric.Float64Histogram
}

// Instrumentation bundles a tracer and the operation metrics.
type Instrumentation struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewInstrumentation builds instruments from the given providers.
func NewInstrumentation(tp trace.TracerProvider, mp metric.MeterProvider) (*Instrumentation, error) {
	m, err := initMetrics(mp.Meter(meterName))
	if err != nil {
		return nil, err
	}
	return &Instrumentation{Tracer: tp.Tracer(tracerName), Metrics: m}, nil
}

// Default builds instruments from the global OpenTelemetry providers.
func Default() *Instrumentation {
	inst, err := NewInstrumentation(otel.GetTracerProvider(), otel.GetMeterProvider())
	if err != nil {
		otel.Handle(err)
		return &Instrumentation{Tracer: otel.Tracer(tracerName)}
	}
	return inst
}

func initMetrics(meter metric.Meter) (*Metrics, error) {
	count, err := meter.Int64Counter("usuarios.operation.count",
		metric.WithDescription("Total number of user store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("usuarios.operation.errors",
		metric.WithDescription("Total number of user store operations that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("usuarios.operation.duration",
		metric.WithDescription("User store operation duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		OperationCount:    count,
		OperationErrors:   errs,
		OperationDuration: duration,
	}, nil
}

// Operation tracks one in-flight service call. Finish must be called exactly once.
type Operation struct {
	inst  *Instrumentation
	name  string
	span  trace.Span
	start time.Time
}

// Start opens a span named "users.<name>" and starts the duration clock.
// A nil receiver yields an Operation that records nothing.
func (i *Instrumentation) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	op := &Operation{inst: i, name: name, start: time.Now()}
	if i == nil || i.Tracer == nil {
		return ctx, op
	}
	ctx, op.span = i.Tracer.Start(ctx, "users."+name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, op
}

// Finish records the outcome. outcome is a short label such as "ok",
// "not_found" or "conflict"; err is recorded on the span when non-nil.
func (o *Operation) Finish(ctx context.Context, outcome string, err error) {
	if o.span != nil {
		o.span.SetAttributes(attribute.String("usuarios.outcome", outcome))
		if err != nil {
			o.span.RecordError(err)
			o.span.SetStatus(codes.Error, outcome)
		}
		o.span.End()
	}

	if o.inst == nil || o.inst.Metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("usuarios.operation", o.name),
		attribute.String("usuarios.outcome", outcome),
	)
	o.inst.Metrics.OperationCount.Add(ctx, 1, attrs)
	o.inst.Metrics.OperationDuration.Record(ctx, float64(time.Since(o.start).Microseconds())/1000, attrs)
	if err != nil {
		o.inst.Metrics.OperationErrors.Add(ctx, 1, attrs)
	}
}
