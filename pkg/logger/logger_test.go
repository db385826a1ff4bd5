package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceEntryAddsTraceID(t *testing.T) {
	l, hook := test.NewNullLogger()

	traceID := trace.TraceID{0x01, 0x02, 0x03}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  trace.SpanID{0x0a},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	TraceEntry(ctx, l).Warn("unknown code")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, traceID.String(), entry.Data["trace_id"])
	assert.Equal(t, WarnLevel, entry.Level)
}

func TestTraceEntryWithoutSpan(t *testing.T) {
	l, hook := test.NewNullLogger()

	TraceEntry(context.Background(), l).Info("plain")
	TraceEntry(nil, l).Info("nil ctx") //nolint:staticcheck

	require.Len(t, hook.Entries, 2)
	for _, e := range hook.Entries {
		_, ok := e.Data["trace_id"]
		assert.False(t, ok)
	}
}
