// Package tracer exports traced scopes as OpenTelemetry spans.
//
// TracerClient wraps an sdk TracerProvider, optionally exporting over OTLP
// HTTP. SpanObserver implements observability.Observer and turns the scope
// tracer's events into a span tree:
//
//	enter     → span "scope <token>", child of the enclosing scope's span
//	exit      → span ended
//	escape    → "escape" event on the escaped scope's span
//	yield     → span "replay <token>", child of the escaped scope if still open
//	yield_end → replay span ended
//
// # Basic Usage
//
//	client, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "scopetrace-demo",
//		EnableExport: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Shutdown(context.Background())
//
//	t := scopetrace.New(
//		scopetrace.WithMode(scopetrace.ModeCompact),
//		scopetrace.WithObserver(tracer.NewSpanObserver(client)),
//	)
//
// # FX Module Integration
//
//	app := fx.New(
//		tracer.FXModule,
//		tracer.SpanObserverModule,
//		scopetrace.FXModule,
//		fx.Supply(tracer.Config{ServiceName: "scopetrace-demo"}),
//		fx.Supply(scopetrace.Config{Mode: "compact"}),
//	)
//
// SpanObserverModule adds the observer to the "scope_observers" group that
// scopetrace.FXModule collects.
package tracer
