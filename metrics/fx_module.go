package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/scopetrace/logger"
	"github.com/aalemi-dev/scopetrace/observability"
)

// FXModule provides *Metrics and the MetricsCollector interface and runs the
// /metrics server for the lifetime of the application.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{ServiceName: "scopetrace-demo", Namespace: "scopetrace"}),
//	)
//
// Dependencies required by this module:
//   - a metrics.Config instance
//   - optionally a logger.Logger for startup/shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// ScopeObserverModule contributes a ScopeObserver to the scope tracer's
// observer group. It requires FXModule.
var ScopeObserverModule = fx.Module("metrics-scope-observer",
	fx.Provide(
		fx.Annotate(
			NewScopeObserver,
			fx.As(new(observability.Observer)),
			fx.ResultTags(observability.ObserverGroup),
		),
	),
)

// LifecycleParams are the dependencies of RegisterMetricsLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle binds the metrics server's listener on start,
// serves it in the background and shuts it down on stop.
//
// Binding happens in OnStart so a busy port fails the application start
// instead of being logged from a goroutine.
func RegisterMetricsLifecycle(p LifecycleParams) {
	m := p.Metrics
	if m.Server == nil {
		return
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", m.Server.Addr)
			if err != nil {
				return err
			}
			// Resolve ":0" to the port actually bound.
			m.Server.Addr = ln.Addr().String()
			log.Info("Starting metrics server", nil, map[string]interface{}{
				"address": m.Server.Addr,
			})
			go func() {
				if err := m.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error serving metrics", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down metrics server", nil, nil)
			if err := m.Server.Shutdown(ctx); err != nil {
				log.Error("Error shutting down metrics server", err, nil)
				return err
			}
			return nil
		},
	})
}
