package metrics

import (
	"github.com/aalemi-dev/scopetrace/observability"
)

// durationBuckets spans sub-millisecond scopes up to long-running ones.
var durationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 30}

// ScopeObserver turns traced scope operations into Prometheus metrics:
//
//   - events_total{operation}   every enter, exit, escape, yield and yield_end
//   - depth                     nesting depth of the scope path
//   - replays_active            escaped contexts currently being replayed
//   - scope_duration_seconds    time between a scope's enter and exit
//
// Names are prefixed with the configured Namespace.
type ScopeObserver struct {
	events   Counter
	depth    Gauge
	replays  Gauge
	duration Histogram
}

// NewScopeObserver registers the scope metrics on m.
func NewScopeObserver(m MetricsCollector) *ScopeObserver {
	return &ScopeObserver{
		events:   m.CreateCounter("events_total", "Traced scope events by operation.", []string{"operation"}),
		depth:    m.CreateGauge("depth", "Current depth of the scope path.", nil),
		replays:  m.CreateGauge("replays_active", "Escaped contexts currently being replayed.", nil),
		duration: m.CreateHistogram("scope_duration_seconds", "Time spent inside a scope.", nil, durationBuckets),
	}
}

// ObserveOperation implements observability.Observer.
func (o *ScopeObserver) ObserveOperation(op observability.OperationContext) {
	o.events.WithLabelValues(op.Operation).Inc()

	switch op.Operation {
	case observability.OperationEnter:
		o.depth.Set(float64(op.Size + 1))
	case observability.OperationExit:
		o.depth.Set(float64(op.Size))
		o.duration.Observe(op.Duration.Seconds())
	case observability.OperationYield:
		o.replays.Inc()
	case observability.OperationYieldEnd:
		o.replays.Dec()
	}
}
