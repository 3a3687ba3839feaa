package main

import (
	"context"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/aalemi-dev/scopetrace/logger"
	"github.com/aalemi-dev/scopetrace/metrics"
	"github.com/aalemi-dev/scopetrace/scopetrace"
	"github.com/aalemi-dev/scopetrace/tracer"
)

var (
	demoDepth       int
	demoMetricsAddr string
	demoSpans       bool
	demoLinger      time.Duration
)

func init() {
	demoCmd.Flags().IntVar(&demoDepth, "depth", 3, "nesting depth of the recursive scope")
	demoCmd.Flags().StringVar(&demoMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	demoCmd.Flags().BoolVar(&demoSpans, "spans", false, "export scopes as OpenTelemetry spans over OTLP HTTP")
	demoCmd.Flags().DurationVar(&demoLinger, "linger", 0, "keep running after the demo, e.g. to scrape metrics")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Trace a recursive workload and a replayed escape",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAppConfig(cmd)
		if err != nil {
			return err
		}
		if demoMetricsAddr != "" {
			cfg.Metrics = &metrics.Config{Address: metrics.Ptr(demoMetricsAddr), Namespace: serviceName}
		}
		if demoSpans && cfg.Tracer == nil {
			cfg.Tracer = &tracer.Config{ServiceName: serviceName, EnableExport: true}
		}

		var t *scopetrace.TracerClient
		app := fx.New(appOptions(cfg, fx.Populate(&t))...)
		if err := app.Err(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := app.Start(ctx); err != nil {
			return err
		}

		runDemo(t, demoDepth)

		if demoLinger > 0 {
			select {
			case <-time.After(demoLinger):
			case <-ctx.Done():
			}
		}

		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.Stop(stopCtx)
	},
}

// appOptions assembles the fx graph. Metrics and span export join only
// when configured.
func appOptions(cfg appConfig, extra ...fx.Option) []fx.Option {
	opts := []fx.Option{
		fx.NopLogger,
		logger.FXModule,
		scopetrace.FXModule,
		fx.Supply(cfg.Logger),
		fx.Supply(cfg.Trace),
	}
	if cfg.Metrics != nil {
		opts = append(opts, metrics.FXModule, metrics.ScopeObserverModule, fx.Supply(*cfg.Metrics))
	}
	if cfg.Tracer != nil {
		opts = append(opts, tracer.FXModule, tracer.SpanObserverModule, fx.Supply(*cfg.Tracer))
	}
	return append(opts, extra...)
}

// runDemo nests depth scopes from the same call site, captures the innermost
// context and replays it on another goroutine after the stack has unwound.
func runDemo(t *scopetrace.TracerClient, depth int) {
	escaped := make(chan scopetrace.Token, 1)
	descend(t, depth, escaped)

	esc := <-escaped
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t.Replay(esc, func() {
			// suppressed while replaying
			descend(t, 1, nil)
		})
	}()
	wg.Wait()

	t.PrintCurrentPath()
}

func descend(t *scopetrace.TracerClient, depth int, escaped chan<- scopetrace.Token) {
	tok := t.EnterScope(scopetrace.Here(0))
	defer t.ExitScope(tok)

	if depth > 1 {
		descend(t, depth-1, escaped)
		return
	}
	if escaped != nil {
		escaped <- t.CaptureEscape(scopetrace.Here(0))
	}
}

