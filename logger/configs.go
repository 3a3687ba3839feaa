package logger

// Log level constants accepted in Config.Level.
const (
	// Debug shows every message, including the tracer's mode changes and,
	// with the "logger" trace sink, every rendered trace block.
	Debug = "debug"

	// Info is the default level.
	Info = "info"

	// Warning shows only warnings and errors, such as unbalanced scopes left
	// on the path at shutdown.
	Warning = "warning"

	// Error shows only errors.
	Error = "error"
)

// Encodings accepted in Config.Encoding.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Unknown values fall back to "info".
	//
	// This setting can be configured via:
	//   - TOML/YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `toml:"level" yaml:"level" envconfig:"LOGGER_LEVEL"`

	// Encoding is "json" (default) or "console". Console output is easier to
	// read next to the box-drawn scope trace on a terminal.
	Encoding string `toml:"encoding" yaml:"encoding" envconfig:"LOGGER_ENCODING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `toml:"service_name" yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// CallerSkip controls the number of stack frames to skip when reporting
	// the caller. If not set or set to 0, defaults to 1.
	CallerSkip int `toml:"caller_skip" yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
