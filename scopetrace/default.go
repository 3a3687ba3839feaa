package scopetrace

import "sync/atomic"

// defaultTracer backs the package-level functions. It starts disabled.
var defaultTracer atomic.Pointer[TracerClient]

func init() {
	defaultTracer.Store(New())
}

// Default returns the process-wide tracer.
func Default() *TracerClient {
	return defaultTracer.Load()
}

// SetDefault replaces the process-wide tracer and returns the previous one.
// A nil tracer is ignored. Tests use it to inject a tracer with a buffer sink:
//
//	var buf bytes.Buffer
//	prev := scopetrace.SetDefault(scopetrace.New(scopetrace.WithWriter(&buf)))
//	t.Cleanup(func() { scopetrace.SetDefault(prev) })
func SetDefault(t *TracerClient) *TracerClient {
	if t == nil {
		return Default()
	}
	return defaultTracer.Swap(t)
}

// EnableTrace turns tracing on for the default tracer, verbose or compact.
func EnableTrace(verbose bool) { Default().SetMode(verbose) }

// DisableTrace turns tracing off for the default tracer.
func DisableTrace() { Default().Disable() }

// PrintCurrentPath writes the default tracer's path to its sink.
func PrintCurrentPath() { Default().PrintCurrentPath() }

// CurrentPathDescription returns the default tracer's path.
func CurrentPathDescription() string { return Default().CurrentPathDescription() }

// EnterScope calls EnterScope on the default tracer.
func EnterScope(site CallSite) Token { return Default().EnterScope(site) }

// ExitScope calls ExitScope on the default tracer.
func ExitScope(tok Token) { Default().ExitScope(tok) }

// CaptureEscape calls CaptureEscape on the default tracer.
func CaptureEscape(site CallSite) Token { return Default().CaptureEscape(site) }

// ResumeEscape calls ResumeEscape on the default tracer.
func ResumeEscape(tok Token) { Default().ResumeEscape(tok) }

// FinishResumeEscape calls FinishResumeEscape on the default tracer.
func FinishResumeEscape(tok Token) { Default().FinishResumeEscape(tok) }
