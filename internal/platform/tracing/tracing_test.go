package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookupdesk/internal/platform/config"
)

func TestStdoutExporterWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, err := New(config.Tracing{Exporter: config.TraceExporterStdout, ServiceName: "lookupdesk", SampleRatio: 1}, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "gateway.Fetch")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name":"gateway.Fetch"`)
	assert.Contains(t, buf.String(), "lookupdesk")
}

func TestNoneExporterStillSamples(t *testing.T) {
	tp, err := New(config.Tracing{Exporter: config.TraceExporterNone, ServiceName: "lookupdesk", SampleRatio: 1}, nil)
	require.NoError(t, err)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "gateway.attempt")
	defer span.End()
	assert.True(t, span.SpanContext().IsSampled())
}

func TestUnknownExporter(t *testing.T) {
	_, err := New(config.Tracing{Exporter: "zipkin", SampleRatio: 1}, nil)
	assert.ErrorContains(t, err, `unknown trace exporter "zipkin"`)
}
