package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/scopetrace/logger"
	"github.com/aalemi-dev/scopetrace/observability"
)

// FXModule provides *TracerClient and the Tracer interface, and shuts the
// provider down when the application stops so buffered spans are flushed.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    tracer.SpanObserverModule,
//	    fx.Supply(tracer.Config{ServiceName: "scopetrace-demo"}),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// SpanObserverModule contributes a SpanObserver to the scope tracer's
// observer group. It requires FXModule.
var SpanObserverModule = fx.Module("tracer-span-observer",
	fx.Provide(
		fx.Annotate(
			NewSpanObserver,
			fx.As(new(observability.Observer)),
			fx.ResultTags(observability.ObserverGroup),
		),
	),
)

// LifecycleParams are the dependencies of RegisterTracerLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    *TracerClient
	Logger    logger.Logger `optional:"true"`
}

// RegisterTracerLifecycle shuts the tracer provider down on stop.
func RegisterTracerLifecycle(p LifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			return p.Tracer.Shutdown(ctx)
		},
	})
}
