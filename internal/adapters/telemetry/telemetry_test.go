package telemetry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cscript/internal/adapters/telemetry"
	"go.trai.ch/cscript/internal/core/ports"
	"go.trai.ch/cscript/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider)

	_, span := tracer.Start(t.Context(), "compile", ports.WithAttribute("fingerprint", "0000002a"))
	span.SetAttribute("exit_code", 1)
	span.RecordError(errors.New("compiler failed"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "compile", got.Name())
	assert.Contains(t, got.Attributes(), attribute.String("fingerprint", "0000002a"))
	assert.Contains(t, got.Attributes(), attribute.Int("exit_code", 1))
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "compiler failed", got.Status().Description)
}

func TestNewTracer_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := telemetry.NewTracer(mocks.NewMockLogger(ctrl), false)

	_, ok := tracer.(*telemetry.NoOpTracer)
	assert.True(t, ok)

	ctx, span := tracer.Start(t.Context(), "noop")
	assert.Equal(t, t.Context(), ctx)
	span.SetAttribute("k", "v")
	span.End()
}

func TestNewTracer_LogsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var logged string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg })

	tracer := telemetry.NewTracer(log, true)
	_, span := tracer.Start(t.Context(), "lookup", ports.WithAttribute("hit", true))
	span.End()

	assert.True(t, strings.HasPrefix(logged, "span lookup took "), logged)
	assert.Contains(t, logged, "hit=true")
}
