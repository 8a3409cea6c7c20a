package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_Default(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestWithRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithRequestID(context.Background(), zap.New(core), "req-123")
	enriched.Info("hello")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
	assert.Equal(t, "req-123", recorded.All()[0].ContextMap()["request_id"])
}

func TestWithSubject(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithSubject(context.Background(), zap.New(core), "admin")
	enriched.Info("hello")

	assert.Equal(t, "admin", GetSubject(ctx))
	assert.Equal(t, "admin", recorded.All()[0].ContextMap()["subject"])
}

func TestGetters_NotFound(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetSubject(ctx))
	assert.Nil(t, TraceFields(ctx))
}

func TestL_AddsTraceCorrelation(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx := WithContext(context.Background(), zap.New(core))
	ctx, span := tp.Tracer("test").Start(ctx, "op")
	defer span.End()

	L(ctx).Info("inside span")

	fields := recorded.All()[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}

func TestL_WithoutSpan(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithContext(context.Background(), zap.New(core))

	L(ctx).Info("no span")

	_, hasTrace := recorded.All()[0].ContextMap()["trace_id"]
	assert.False(t, hasTrace)
}
