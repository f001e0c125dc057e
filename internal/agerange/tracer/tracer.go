// Package tracer provides a small tracing abstraction for age range requests.
//
// The service depends on the Tracer interface rather than on OpenTelemetry
// directly. Implementations:
//   - NoopTracer: default, zero overhead
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a span and returns a context carrying it.
	//
	// Example:
	//   ctx, span := t.Start(ctx, tracer.SpanRequestAgeRange,
	//       tracer.String(tracer.AttrGates, gates.String()),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanRequestAgeRange = "agerange.request"
	SpanResetMockData   = "agerange.reset_mock_data"
)

// Attribute keys.
const (
	AttrRequestID       = "agerange.request_id"
	AttrProvider        = "agerange.provider"
	AttrGates           = "agerange.gates"
	AttrOutcome         = "agerange.outcome"
	AttrLowerBound      = "agerange.lower_bound"
	AttrUpperBound      = "agerange.upper_bound"
	AttrUpperBounded    = "agerange.upper_bounded"
	AttrDurationMS      = "agerange.duration_ms"
	AttrDeclaration     = "agerange.declaration"
	AttrParentalControl = "agerange.parental_controls"
)

// Event names.
const (
	EventPromptAnswered   = "agerange.prompt_answered"
	EventRequestCancelled = "agerange.request_cancelled"
)
