// Package metrics exposes scope tracing activity to Prometheus.
//
// The package follows the "accept interfaces, return structs" pattern:
// MetricsCollector is the contract, *Metrics the implementation backed by a
// private Prometheus registry. Every metric carries a constant `service`
// label and the configured namespace prefix.
//
// ScopeObserver implements observability.Observer and is the bridge to the
// scope tracer: hand it to scopetrace.WithObserver, or add
// ScopeObserverModule to an fx application so it joins the tracer's
// observer group.
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//		ServiceName: "scopetrace-demo",
//		Namespace:   "scopetrace",
//	})
//	tracer := scopetrace.New(
//		scopetrace.WithMode(scopetrace.ModeCompact),
//		scopetrace.WithObserver(metrics.NewScopeObserver(m)),
//	)
//	go m.Server.ListenAndServe()
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		metrics.ScopeObserverModule,
//		scopetrace.FXModule,
//		fx.Supply(metrics.Config{Namespace: "scopetrace"}),
//		fx.Supply(scopetrace.Config{Mode: "compact"}),
//	)
//
// # Thread Safety
//
// All collectors are safe for concurrent use.
package metrics
