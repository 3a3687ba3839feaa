package scopetrace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// MaxLineLength is the display width every rendered line is truncated to.
const MaxLineLength = 80

// Mode selects how much detail the tracer renders.
type Mode int

const (
	// ModeDisabled turns every tracer entry point into a no-op.
	ModeDisabled Mode = iota
	// ModeVerbose renders a multi-line block per scope entry.
	ModeVerbose
	// ModeCompact renders a single line per event showing the full path.
	ModeCompact
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeVerbose:
		return "verbose"
	case ModeCompact:
		return "compact"
	default:
		return "disabled"
	}
}

// Sink names accepted in Config.Output.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputLogger = "logger"
)

var (
	// ErrInvalidMode is returned when a mode string is not one of
	// "disabled", "verbose" or "compact".
	ErrInvalidMode = errors.New("scopetrace: invalid mode")

	// ErrUnknownSink is returned when Config.Output names an unsupported sink.
	ErrUnknownSink = errors.New("scopetrace: unknown output sink")
)

// ParseMode converts a configuration string into a Mode.
// The empty string maps to ModeDisabled.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "disabled", "off":
		return ModeDisabled, nil
	case "verbose":
		return ModeVerbose, nil
	case "compact":
		return ModeCompact, nil
	default:
		return ModeDisabled, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Config defines how the scope tracer is set up at startup.
//
// Tracing is opt-in: the zero Config yields a disabled tracer writing to
// standard output, so release builds pay only a mode check per call.
type Config struct {
	// Mode is one of "disabled", "verbose" or "compact".
	//
	// This setting can be configured via:
	//   - TOML configuration with the "mode" key
	//   - Environment variable SCOPETRACE_MODE
	Mode string `toml:"mode" yaml:"mode" envconfig:"SCOPETRACE_MODE"`

	// Output selects the text sink: "stdout" (default), "stderr", or
	// "logger" to forward every rendered block to the structured logger at
	// debug level.
	Output string `toml:"output" yaml:"output" envconfig:"SCOPETRACE_OUTPUT"`

	// Color wraps rendered lines in ANSI colour codes per event kind.
	// Colouring is applied after truncation and never counts toward
	// MaxLineLength.
	Color bool `toml:"color" yaml:"color" envconfig:"SCOPETRACE_COLOR"`
}

// LoadConfigFile decodes a TOML file into a Config and validates it.
//
// Example file:
//
//	mode   = "compact"
//	output = "stderr"
//	color  = true
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode scopetrace config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the mode and output names.
func (c Config) Validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	switch strings.ToLower(c.Output) {
	case "", OutputStdout, OutputStderr, OutputLogger:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSink, c.Output)
	}
}
