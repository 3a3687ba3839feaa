package scopetrace

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/scopetrace/logger"
	"github.com/aalemi-dev/scopetrace/observability"
)

// ObserverGroup is the fx value group whose members are notified of every
// traced event.
const ObserverGroup = observability.ObserverGroup

// FXModule provides *TracerClient and the Tracer interface, and installs the
// tracer as the process-wide default while the application runs, so the
// package-level functions reach it.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    scopetrace.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info}),
//	    fx.Supply(scopetrace.Config{Mode: "compact"}),
//	    metrics.FXModule,
//	    metrics.ScopeObserverModule,
//	)
//
// Dependencies required by this module:
//   - a scopetrace.Config instance
//   - optionally a logger.Logger and members of the "scope_observers" group
var FXModule = fx.Module("scopetrace",
	fx.Provide(
		NewFromParams,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// Params are the dependencies NewFromParams takes from the container.
type Params struct {
	fx.In

	Config    Config
	Logger    logger.Logger            `optional:"true"`
	Observers []observability.Observer `group:"scope_observers"`
}

// NewFromParams builds a tracer from injected dependencies.
func NewFromParams(p Params) (*TracerClient, error) {
	return NewFromConfig(p.Config, p.Logger, WithObserver(observability.Multi(p.Observers...)))
}

// RegisterTracerLifecycle installs the tracer as the default on start. On
// stop it reports scopes still left on the path and restores the previous
// default.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *TracerClient) {
	var prev *TracerClient
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			prev = SetDefault(t)
			t.log.Info("scope tracer started", nil, map[string]interface{}{
				"mode": t.Mode().String(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if depth := t.Depth(); depth > 0 {
				t.log.Warn("scopes still open at shutdown", nil, map[string]interface{}{
					"depth": depth,
					"path":  t.CurrentPathDescription(),
				})
			}
			SetDefault(prev)
			return nil
		},
	})
}
