package scopetrace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aalemi-dev/scopetrace/logger"
	"github.com/aalemi-dev/scopetrace/observability"
)

// frame is one entry of the scope path.
type frame struct {
	token   Token
	entered time.Time
}

// TracerClient holds the trace state: the scope path, the mode and the
// escaped-replay guard. One mutex covers every read and write of that state
// together with rendering and the sink write, so concurrent events never
// compute the same token or interleave their lines.
//
// TracerClient implements the Tracer interface.
type TracerClient struct {
	mu sync.Mutex

	out      io.Writer
	log      logger.Logger
	observer observability.Observer
	colors   palette
	now      func() time.Time

	mode   Mode
	path   []frame
	replay int
}

// Option configures a TracerClient built by New.
type Option func(*TracerClient)

// WithWriter sets the text sink. The default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(t *TracerClient) {
		if w != nil {
			t.out = w
		}
	}
}

// WithLogger sets the logger for the tracer's own diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(t *TracerClient) {
		if l != nil {
			t.log = l
		}
	}
}

// WithObserver registers an observer notified after every rendered event.
func WithObserver(o observability.Observer) Option {
	return func(t *TracerClient) { t.observer = o }
}

// WithMode sets the initial mode. The default is ModeDisabled.
func WithMode(m Mode) Option {
	return func(t *TracerClient) { t.mode = m }
}

// WithColor enables ANSI colouring of rendered lines.
func WithColor(on bool) Option {
	return func(t *TracerClient) {
		if on {
			t.colors = newPalette()
		} else {
			t.colors = nil
		}
	}
}

// withClock replaces time.Now for scope durations in tests.
func withClock(now func() time.Time) Option {
	return func(t *TracerClient) { t.now = now }
}

// New returns a disabled tracer writing to os.Stdout with a silent logger.
func New(opts ...Option) *TracerClient {
	t := &TracerClient{
		out:  os.Stdout,
		log:  logger.NewNop(),
		now:  time.Now,
		mode: ModeDisabled,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFromConfig builds a tracer from Config. The "logger" output forwards
// every rendered block to log at debug level.
//
// Example:
//
//	cfg, err := scopetrace.LoadConfigFile("scopetrace.toml")
//	if err != nil {
//	    return err
//	}
//	t, err := scopetrace.NewFromConfig(cfg, log)
func NewFromConfig(cfg Config, log logger.Logger, opts ...Option) (*TracerClient, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}

	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", OutputStdout:
		out = os.Stdout
	case OutputStderr:
		out = os.Stderr
	case OutputLogger:
		out = &loggerSink{log: log}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, cfg.Output)
	}

	base := []Option{WithWriter(out), WithLogger(log), WithMode(mode), WithColor(cfg.Color)}
	return New(append(base, opts...)...), nil
}

// loggerSink adapts a Logger to io.Writer, one debug entry per event.
type loggerSink struct {
	log logger.Logger
}

func (s *loggerSink) Write(p []byte) (int, error) {
	s.log.Debug("scope trace", nil, map[string]interface{}{
		"block": strings.TrimSuffix(string(p), "\n"),
	})
	return len(p), nil
}
