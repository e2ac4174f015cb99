// Package tracing wires OpenTelemetry into the HTTP layer. Middleware opens
// a server span per request, honors incoming W3C trace context, and echoes
// the trace ID back to callers on X-Trace-Id.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("lucr-news")

// GetTracer exposes the shared tracer so handlers can open child spans
// around slow work such as repository calls.
func GetTracer() trace.Tracer {
	return tracer
}
