package observability

import "time"

// Component name reported by the scope tracer.
const ComponentScopeTrace = "scopetrace"

// Operations reported by the scope tracer.
const (
	OperationEnter    = "enter"
	OperationExit     = "exit"
	OperationEscape   = "escape"
	OperationYield    = "yield"
	OperationYieldEnd = "yield_end"
)

// ObserverGroup is the fx value-group tag under which observers are
// collected and handed to the scope tracer.
const ObserverGroup = `group:"scope_observers"`

// Observer receives a notification for every traced operation.
//
// Observers are optional; the tracer works without one. Implementations must
// be safe for concurrent use and should return quickly, since they run on the
// goroutine that entered or left the scope.
type Observer interface {
	// ObserveOperation is called after the operation has been rendered.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one traced operation.
type OperationContext struct {
	// Component identifies the package that performed the operation.
	// The scope tracer always reports ComponentScopeTrace.
	Component string

	// Operation is one of OperationEnter, OperationExit, OperationEscape,
	// OperationYield or OperationYieldEnd.
	Operation string

	// Resource is the scope token the operation refers to. It is empty for
	// escapes and yields of the default context.
	Resource string

	// SubResource is the "/"-joined scope path at the time of the operation.
	SubResource string

	// Duration is how long the scope was active. Only set on exit.
	Duration time.Duration

	// Error is reserved for components whose operations can fail. The scope
	// tracer never sets it.
	Error error

	// Size is the nesting depth of the operation: the number of enclosing
	// scopes, not counting the scope itself.
	Size int64

	// Metadata carries operation-specific extras, such as the call site
	// ("function", "location") of enters and escapes, or "rendered": false
	// on an exit that popped its scope without drawing a block.
	Metadata map[string]interface{}
}
