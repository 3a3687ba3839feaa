package metrics

// DefaultAddress is where the metrics server listens if none is specified.
const DefaultAddress = ":9091"

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the /metrics HTTP server
	// listens.
	//
	// Example values:
	//   - ":9091"          → Listen on all interfaces, port 9091
	//   - "127.0.0.1:9091" → Listen only on localhost
	//   - nil (or omitted) → Use DefaultAddress
	//
	// To keep the registry but not serve it, use an empty string pointer:
	//   Address: metrics.Ptr(""),
	//
	// This setting can be configured via:
	//   - TOML/YAML with the "address" key
	//   - Environment variable METRICS_ADDRESS
	Address *string `toml:"address" yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant "service" label to every metric.
	ServiceName string `toml:"service_name" yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// Namespace prefixes every metric name created through the collector,
	// e.g. "scopetrace" turns "events_total" into "scopetrace_events_total".
	Namespace string `toml:"namespace" yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// RuntimeMetrics registers the Go runtime and process collectors.
	RuntimeMetrics bool `toml:"runtime_metrics" yaml:"runtime_metrics" envconfig:"METRICS_RUNTIME"`
}

// Ptr returns a pointer to the given string value.
func Ptr(s string) *string {
	return &s
}
