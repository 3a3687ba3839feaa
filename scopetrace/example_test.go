package scopetrace_test

import (
	"fmt"
	"os"

	"github.com/aalemi-dev/scopetrace/scopetrace"
)

func Example() {
	tr := scopetrace.New(
		scopetrace.WithWriter(os.Stdout),
		scopetrace.WithMode(scopetrace.ModeCompact),
	)
	site := scopetrace.CallSite{File: "app/a.go", Line: 10, Function: "app.foo"}

	outer := tr.EnterScope(site)
	inner := tr.EnterScope(site)
	tr.PrintCurrentPath()
	tr.ExitScope(inner)
	tr.ExitScope(outer)

	fmt.Println(outer, inner)
	// Output:
	// ┌─ enter: 4689i ───────────────────────────────────────────────────────────────┄
	// │ ┌─ enter: 4689i/4689i:1 ─────────────────────────────────────────────────────┄
	// Scope path: 4689i/4689i:1
	// │ └─ End of: 4689i/4689i:1 ────────────────────────────────────────────────────┄
	// └─ End of: 4689i ──────────────────────────────────────────────────────────────┄
	// 4689i 4689i:1
}

func ExampleTracerClient_CaptureEscape() {
	tr := scopetrace.New(
		scopetrace.WithWriter(os.Stdout),
		scopetrace.WithMode(scopetrace.ModeVerbose),
	)

	esc := tr.CaptureEscape(scopetrace.CallSite{File: "main/main.go", Line: 12, Function: "main.main"})
	fmt.Println(esc == scopetrace.NoToken)
	// Output:
	// ┿━< Escaping default context at main/main.go:12
	// true
}

func ExampleTracerClient_CurrentPathDescription() {
	tr := scopetrace.New(scopetrace.WithMode(scopetrace.ModeCompact), scopetrace.WithWriter(nopWriter{}))

	fmt.Println(tr.CurrentPathDescription())
	tok := tr.EnterScope(scopetrace.CallSite{File: "main.go", Line: 42, Function: "main.run"})
	fmt.Println(tr.CurrentPathDescription())
	tr.ExitScope(tok)
	// Output:
	// / (default context)
	// wpuc
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
