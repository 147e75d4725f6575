package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNewInstrumentation_Noop(t *testing.T) {
	inst, err := NewInstrumentation(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	require.NoError(t, err)
	require.NotNil(t, inst.Tracer)
	require.NotNil(t, inst.Metrics)

	ctx, op := inst.Start(context.Background(), "create", attribute.Int64("usuarios.id", 2))
	require.NotNil(t, ctx)
	op.Finish(ctx, "ok", nil)

	_, op = inst.Start(context.Background(), "get")
	op.Finish(context.Background(), "not_found", errors.New("not found"))
}

func TestDefault_UsesGlobalProviders(t *testing.T) {
	inst := Default()
	require.NotNil(t, inst)
	assert.NotNil(t, inst.Tracer)
}

func TestNilInstrumentation_IsSafe(t *testing.T) {
	var inst *Instrumentation

	ctx, op := inst.Start(context.Background(), "list")
	assert.NotPanics(t, func() { op.Finish(ctx, "ok", nil) })
}
