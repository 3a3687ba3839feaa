package tracer

// Config defines the configuration for the OpenTelemetry tracer that
// exports scopes as spans.
type Config struct {
	// ServiceName identifies the process in the tracing backend.
	//
	// Example values: "scopetrace-demo", "payment-worker"
	ServiceName string `toml:"service_name" yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as the "deployment.environment" and "environment"
	// resource attributes, e.g. "development" or "production".
	AppEnv string `toml:"app_env" yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false, spans are
	// still created and parented but never leave the process.
	EnableExport bool `toml:"enable_export" yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the collector host:port. When empty, the exporter
	// falls back to OTEL_EXPORTER_OTLP_ENDPOINT or localhost:4318.
	Endpoint string `toml:"endpoint" yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure sends spans over plain HTTP.
	Insecure bool `toml:"insecure" yaml:"insecure" envconfig:"TRACER_INSECURE"`
}
