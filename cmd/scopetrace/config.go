package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/aalemi-dev/scopetrace/logger"
	"github.com/aalemi-dev/scopetrace/metrics"
	"github.com/aalemi-dev/scopetrace/scopetrace"
	"github.com/aalemi-dev/scopetrace/tracer"
)

// appConfig is the layout of the --config file. Every section is optional.
// Environment variables named by the envconfig tags (SCOPETRACE_MODE,
// LOGGER_LEVEL, ...) override the file; the metrics and tracer variables only
// apply when their section is present.
//
//	[trace]
//	mode = "compact"
//
//	[logger]
//	level = "debug"
//	encoding = "console"
//
//	[metrics]
//	address = ":9091"
//
//	[tracer]
//	enable_export = true
//	endpoint = "localhost:4318"
type appConfig struct {
	Trace   scopetrace.Config `toml:"trace"`
	Logger  logger.Config     `toml:"logger"`
	Metrics *metrics.Config   `toml:"metrics"`
	Tracer  *tracer.Config    `toml:"tracer"`
}

const serviceName = "scopetrace"

func defaultAppConfig() appConfig {
	return appConfig{
		Trace:  scopetrace.Config{Mode: scopetrace.ModeVerbose.String()},
		Logger: logger.Config{Level: logger.Warning, Encoding: logger.EncodingConsole, ServiceName: serviceName},
	}
}

// loadAppConfig reads the --config file, if any, then the environment, and
// applies the root flags on top of both.
func loadAppConfig(cmd *cobra.Command) (appConfig, error) {
	cfg := defaultAppConfig()
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	if flags.Changed("mode") {
		cfg.Trace.Mode, _ = flags.GetString("mode")
	}

	colorFlag, _ := flags.GetString("color")
	switch strings.ToLower(colorFlag) {
	case "on":
		cfg.Trace.Color = true
	case "off":
		cfg.Trace.Color = false
	case "auto":
		if !cfg.Trace.Color {
			cfg.Trace.Color = traceToTerminal(cfg.Trace.Output)
		}
	default:
		return cfg, fmt.Errorf("invalid --color value %q", colorFlag)
	}

	if err := cfg.Trace.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Metrics != nil && cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = serviceName
	}
	if cfg.Tracer != nil && cfg.Tracer.ServiceName == "" {
		cfg.Tracer.ServiceName = serviceName
	}
	return cfg, nil
}

func loadEnv(cfg *appConfig) error {
	specs := []interface{}{&cfg.Trace, &cfg.Logger}
	if cfg.Metrics != nil {
		specs = append(specs, cfg.Metrics)
	}
	if cfg.Tracer != nil {
		specs = append(specs, cfg.Tracer)
	}
	for _, spec := range specs {
		if err := envconfig.Process("", spec); err != nil {
			return fmt.Errorf("failed to load environment: %w", err)
		}
	}
	return nil
}

func traceToTerminal(output string) bool {
	switch output {
	case "", scopetrace.OutputStdout:
		return isTerminal(os.Stdout)
	case scopetrace.OutputStderr:
		return isTerminal(os.Stderr)
	default:
		return false
	}
}
