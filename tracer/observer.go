package tracer

import (
	"context"
	"strings"
	"sync"

	"github.com/aalemi-dev/scopetrace/observability"
)

type openSpan struct {
	ctx  context.Context
	span Span
}

// SpanObserver mirrors the scope path as a span tree. Each entered scope
// becomes a span named "scope <token>", parented on the span of the
// enclosing scope. Escapes are recorded as span events and every replay of
// an escaped context becomes a "replay <token>" span under the escaped
// scope, or a root span if that scope has already ended. A scope exited
// while tracing was off or during a replay still ends its span, tagged with
// scope.rendered=false.
type SpanObserver struct {
	tracer Tracer
	root   context.Context

	mu      sync.Mutex
	scopes  map[string]openSpan
	replays map[string][]openSpan
}

// NewSpanObserver returns an observer that creates spans through t.
func NewSpanObserver(t Tracer) *SpanObserver {
	return &SpanObserver{
		tracer:  t,
		root:    context.Background(),
		scopes:  make(map[string]openSpan),
		replays: make(map[string][]openSpan),
	}
}

// ObserveOperation implements observability.Observer.
func (o *SpanObserver) ObserveOperation(op observability.OperationContext) {
	switch op.Operation {
	case observability.OperationEnter:
		o.enter(op)
	case observability.OperationExit:
		o.exit(op)
	case observability.OperationEscape:
		o.escape(op)
	case observability.OperationYield:
		o.yield(op)
	case observability.OperationYieldEnd:
		o.yieldEnd(op)
	}
}

// OpenSpans reports how many scope and replay spans are still running.
func (o *SpanObserver) OpenSpans() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := len(o.scopes)
	for _, stack := range o.replays {
		n += len(stack)
	}
	return n
}

func (o *SpanObserver) enter(op observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()

	parent := o.root
	if p, ok := o.scopes[parentToken(op.SubResource)]; ok {
		parent = p.ctx
	}
	ctx, span := o.tracer.StartSpan(parent, "scope "+op.Resource)
	attrs := map[string]interface{}{
		"scope.token": op.Resource,
		"scope.path":  op.SubResource,
		"scope.depth": op.Size,
	}
	for k, v := range op.Metadata {
		attrs["code."+k] = v
	}
	span.SetAttributes(attrs)
	o.scopes[op.Resource] = openSpan{ctx: ctx, span: span}
}

func (o *SpanObserver) exit(op observability.OperationContext) {
	o.mu.Lock()
	s, ok := o.scopes[op.Resource]
	delete(o.scopes, op.Resource)
	o.mu.Unlock()

	if !ok {
		return
	}
	if rendered, set := op.Metadata["rendered"]; set {
		s.span.SetAttributes(map[string]interface{}{"scope.rendered": rendered})
	}
	s.span.End()
}

func (o *SpanObserver) escape(op observability.OperationContext) {
	o.mu.Lock()
	s, ok := o.scopes[op.Resource]
	o.mu.Unlock()

	if ok {
		s.span.AddEvent("escape", op.Metadata)
	}
}

func (o *SpanObserver) yield(op observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()

	parent := o.root
	name := "replay default context"
	if op.Resource != "" {
		name = "replay " + op.Resource
		if s, ok := o.scopes[op.Resource]; ok {
			parent = s.ctx
		}
	}
	ctx, span := o.tracer.StartSpan(parent, name)
	span.SetAttributes(map[string]interface{}{
		"scope.token": op.Resource,
		"scope.path":  op.SubResource,
	})
	o.replays[op.Resource] = append(o.replays[op.Resource], openSpan{ctx: ctx, span: span})
}

func (o *SpanObserver) yieldEnd(op observability.OperationContext) {
	o.mu.Lock()
	stack := o.replays[op.Resource]
	if len(stack) == 0 {
		o.mu.Unlock()
		return
	}
	s := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(o.replays, op.Resource)
	} else {
		o.replays[op.Resource] = stack[:len(stack)-1]
	}
	o.mu.Unlock()

	s.span.End()
}

// parentToken returns the second-to-last element of a "/"-joined path, or
// "" for a single-element path.
func parentToken(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	rest := path[:i]
	return rest[strings.LastIndexByte(rest, '/')+1:]
}
