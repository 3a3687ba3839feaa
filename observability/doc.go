// Package observability defines the hook through which the scope tracer
// reports its events to metrics, span exporters or anything else.
//
// # Overview
//
// Every rendered trace event (scope enter and exit, escape capture, yield and
// yield end) is also handed to an optional Observer as an OperationContext:
//
//	OperationContext{
//	    Component:   "scopetrace",
//	    Operation:   "exit",
//	    Resource:    "4689i:1",       // scope token
//	    SubResource: "wpuc/4689i/4689i:1", // path before the pop
//	    Duration:    3 * time.Millisecond,
//	    Size:        2,               // depth
//	}
//
// # Wiring
//
// Pass an observer when building the tracer, or combine several with Multi:
//
//	t := scopetrace.New(
//	    scopetrace.WithObserver(observability.Multi(
//	        metrics.NewScopeObserver(m),
//	        tracer.NewSpanObserver(otelClient),
//	    )),
//	)
//
// With fx, provide observers into the "scope_observers" value group and the
// scopetrace module picks them up.
//
// # Thread Safety
//
// Observers are called concurrently from every goroutine that uses the
// tracer and must synchronise their own state.
package observability
