package telemetry

import (
	"os"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cscript/internal/core/ports"
)

// EnvTrace enables span logging when set to a non-empty value.
const EnvTrace = "CSCRIPT_TRACE"

// NewTracer returns a tracer that logs every finished span through logger
// when enabled, and a NoOpTracer otherwise.
func NewTracer(logger ports.Logger, enabled bool) ports.Tracer {
	if !enabled {
		return NewNoOpTracer()
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	return NewOTelTracer(provider)
}

// Enabled reports whether tracing was requested through the environment.
func Enabled() bool {
	return os.Getenv(EnvTrace) != ""
}
