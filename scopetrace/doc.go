// Package scopetrace renders a nested, human-readable trace of scope override
// operations.
//
// Code that temporarily overrides a set of named values calls EnterScope when
// the override starts and ExitScope when it ends. Overrides may nest to any
// depth and may escape their lexical nesting: CaptureEscape remembers the
// innermost scope, and ResumeEscape / FinishResumeEscape bracket the later
// replay of that scope from a detached context.
//
// # Tokens
//
// Every scope entry gets a token derived from its call site: the 32-bit FNV-1
// hash of "<file>:<line>:<function>", folded to 24 bits and written in base
// 36. The same call site always hashes to the same base, across runs.
// Re-entering a call site that is already on the path (recursion) appends a
// counter: "663y3", then "663y3:1", "663y3:2", and so on.
//
// # Output
//
// Verbose mode renders a block per scope:
//
//	┌─ enter: 663y3 ───────────────────────────────────────────────────────────────┄
//	│ Function: main.resolve
//	│ Location: demo/main.go:10
//	│ Path: 663y3
//	├────────┄
//	┆
//	│ ┌─ enter: 663y3:1 ───────────────────────────────────────────────────────────┄
//	│ ...
//	│ └─ End of: 663y3:1 ──────────────────────────────────────────────────────────┄
//	└─ End of: 663y3 ──────────────────────────────────────────────────────────────┄
//
// Compact mode renders one line per event with the full path. Every line is
// cut to MaxLineLength cells, and a line ending in a rule gets a dashed
// continuation glyph.
//
// # Usage
//
// The package-level functions operate on a process-wide default tracer,
// which starts disabled:
//
//	scopetrace.EnableTrace(true)
//
//	func withOverrides(fn func()) {
//		tok := scopetrace.EnterScope(scopetrace.Here(1))
//		defer scopetrace.ExitScope(tok)
//		fn()
//	}
//
// Escapes:
//
//	tok := scopetrace.CaptureEscape(scopetrace.Here(0))
//	go func() {
//		scopetrace.Default().Replay(tok, work)
//	}()
//
// Tests build their own tracer with New and a buffer sink, or swap the
// default with SetDefault.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		scopetrace.FXModule,
//		fx.Supply(logger.Config{Level: logger.Info}),
//		fx.Supply(scopetrace.Config{Mode: "verbose"}),
//	)
//
// # Thread Safety
//
// All methods of TracerClient are safe for concurrent use. One mutex covers
// token computation, the path update, rendering and the sink write, so the
// lines of one event never interleave with another's. While a replay is in
// progress, EnterScope, ExitScope and CaptureEscape are no-ops process-wide.
package scopetrace
