package metrics

// MetricsCollector creates metrics on the registry without exposing
// Prometheus types to callers.
type MetricsCollector interface {
	// CreateCounter creates and registers a counter.
	//
	// Example:
	//   c := m.CreateCounter("events_total", "Traced events", []string{"operation"})
	//   c.WithLabelValues("enter").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateGauge creates and registers a gauge.
	CreateGauge(name, help string, labels []string) Gauge

	// CreateHistogram creates and registers a histogram with the given
	// buckets. A nil buckets slice uses prometheus.DefBuckets.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
