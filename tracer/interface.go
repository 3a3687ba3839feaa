package tracer

import (
	"context"
)

// Tracer creates spans. It is implemented by *TracerClient.
type Tracer interface {
	// StartSpan creates a span that is a child of the span in ctx, if any.
	// Always call span.End() when the operation completes.
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced operation.
//
// Spans started from a context that already carries a span become its
// children, so nested calls form a tree.
type Span interface {
	// End completes the span and hands it to the exporter.
	End()

	// SetAttributes adds key-value pairs to the span. Strings, ints,
	// int64s, float64s and bools keep their type; anything else is
	// formatted with fmt.Sprint.
	//
	// Example:
	//   span.SetAttributes(map[string]interface{}{
	//     "scope.token": "4689i:1",
	//     "scope.depth": 1,
	//   })
	SetAttributes(attrs map[string]interface{})

	// AddEvent records a timestamped event on the span.
	AddEvent(name string, attrs map[string]interface{})

	// RecordError records err on the span and marks it failed.
	RecordError(err error)
}
