package scopetrace

// Tracer is the contract between the scope tracer and the code that
// overrides values for the duration of a scope.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// EnterScope records entry into a scope entered at site and returns its
	// token, or NoToken when tracing is inactive.
	EnterScope(site CallSite) Token

	// ExitScope records the exit of the scope identified by tok.
	// Every EnterScope must be paired with exactly one ExitScope, in LIFO order.
	ExitScope(tok Token)

	// CaptureEscape records that the innermost scope escapes its lexical
	// nesting at site and returns its token, or NoToken outside any scope.
	CaptureEscape(site CallSite) Token

	// ResumeEscape records the start of a replay of an escaped scope.
	ResumeEscape(tok Token)

	// FinishResumeEscape records the end of a replay started by ResumeEscape.
	FinishResumeEscape(tok Token)

	// SetMode enables tracing in verbose or compact mode.
	SetMode(verbose bool)

	// Disable turns tracing off.
	Disable()

	// CurrentPathDescription returns the active path for ad hoc inspection.
	CurrentPathDescription() string

	// PrintCurrentPath writes the active path to the sink, regardless of mode.
	PrintCurrentPath()
}
