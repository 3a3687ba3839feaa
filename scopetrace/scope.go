package scopetrace

import (
	"io"
	"strings"
	"time"

	"github.com/aalemi-dev/scopetrace/observability"
)

// EnterScope pushes a token for site onto the path, renders the enter block
// and returns the token. It returns NoToken without doing any work when the
// tracer is disabled or an escaped context is being replayed.
func (t *TracerClient) EnterScope(site CallSite) Token {
	t.mu.Lock()
	if !t.activeLocked() {
		t.mu.Unlock()
		return NoToken
	}

	tok := tokenFor(site, t.path)
	t.path = append(t.path, frame{token: tok, entered: t.now()})
	ev := event{
		kind:  eventEnter,
		token: tok,
		site:  site,
		path:  t.joinedLocked(),
		depth: len(t.path) - 1,
	}
	t.emitLocked(ev)
	t.mu.Unlock()

	t.notify(ev, 0)
	return tok
}

// ExitScope renders the exit block for tok and pops the path. The block is
// rendered before the pop so it lines up with the matching enter block.
//
// Callers must pair every EnterScope with one ExitScope in LIFO order;
// mismatched calls produce an inconsistent path but never panic. NoToken is
// ignored. A scope is always popped once it has a real token: if tracing was
// disabled in the meantime, or a replay is running, the exit block is not
// rendered but the path stays balanced and observers still see the exit.
func (t *TracerClient) ExitScope(tok Token) {
	if tok == NoToken {
		return
	}

	t.mu.Lock()
	if len(t.path) == 0 {
		t.mu.Unlock()
		return
	}

	last := t.path[len(t.path)-1]
	ev := event{
		kind:   eventExit,
		token:  tok,
		path:   t.joinedLocked(),
		depth:  len(t.path) - 1,
		silent: t.mode == ModeDisabled || t.replay > 0,
	}
	if !ev.silent {
		t.emitLocked(ev)
	}
	t.path = t.path[:len(t.path)-1]
	elapsed := t.now().Sub(last.entered)
	t.mu.Unlock()

	t.notify(ev, elapsed)
}

// CaptureEscape renders an escape line for the innermost scope and returns
// its token without popping it; the scope may still be active elsewhere.
// Outside any scope it renders an "Escaping default context" line and
// returns NoToken.
func (t *TracerClient) CaptureEscape(site CallSite) Token {
	t.mu.Lock()
	if !t.activeLocked() {
		t.mu.Unlock()
		return NoToken
	}

	ev := event{kind: eventEscape, site: site}
	if n := len(t.path); n > 0 {
		ev.token = t.path[n-1].token
		ev.path = t.joinedLocked()
		ev.depth = n - 1
	}
	t.emitLocked(ev)
	t.mu.Unlock()

	t.notify(ev, 0)
	return ev.token
}

// ResumeEscape renders the yield block for a token captured by
// CaptureEscape and raises the replay guard. Until the matching
// FinishResumeEscape, EnterScope, ExitScope and CaptureEscape are no-ops so
// the replay does not trace itself a second time.
func (t *TracerClient) ResumeEscape(tok Token) {
	t.mu.Lock()
	t.replay++
	ev := event{kind: eventYield, token: tok, path: t.joinedLocked(), depth: t.tailDepthLocked()}
	rendered := t.mode != ModeDisabled
	if rendered {
		t.emitLocked(ev)
	}
	t.mu.Unlock()

	if rendered {
		t.notify(ev, 0)
	}
}

// FinishResumeEscape renders the end of a replay and lowers the guard.
func (t *TracerClient) FinishResumeEscape(tok Token) {
	t.mu.Lock()
	if t.replay > 0 {
		t.replay--
	}
	ev := event{kind: eventYieldEnd, token: tok, path: t.joinedLocked(), depth: t.tailDepthLocked()}
	rendered := t.mode != ModeDisabled
	if rendered {
		t.emitLocked(ev)
	}
	t.mu.Unlock()

	if rendered {
		t.notify(ev, 0)
	}
}

// Scope brackets fn between EnterScope and ExitScope. The scope is exited
// even if fn panics.
func (t *TracerClient) Scope(site CallSite, fn func()) {
	tok := t.EnterScope(site)
	defer t.ExitScope(tok)
	fn()
}

// Replay brackets fn between ResumeEscape and FinishResumeEscape.
func (t *TracerClient) Replay(tok Token, fn func()) {
	t.ResumeEscape(tok)
	defer t.FinishResumeEscape(tok)
	fn()
}

// SetMode switches to verbose or compact rendering for subsequent events.
func (t *TracerClient) SetMode(verbose bool) {
	mode := ModeCompact
	if verbose {
		mode = ModeVerbose
	}
	t.setMode(mode)
}

// Disable turns every tracing entry point into a no-op.
func (t *TracerClient) Disable() {
	t.setMode(ModeDisabled)
}

func (t *TracerClient) setMode(mode Mode) {
	t.mu.Lock()
	prev := t.mode
	t.mode = mode
	t.mu.Unlock()

	if prev != mode {
		t.log.Debug("scope trace mode changed", nil, map[string]interface{}{
			"from": prev.String(),
			"to":   mode.String(),
		})
	}
}

// Mode returns the current mode.
func (t *TracerClient) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Depth returns the current nesting depth.
func (t *TracerClient) Depth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.path)
}

// Path returns a copy of the active tokens, outermost first.
func (t *TracerClient) Path() []Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tokensLocked()
}

// CurrentPathDescription returns the "/"-joined path, or
// "/ (default context)" when no scope is active.
func (t *TracerClient) CurrentPathDescription() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return describePath(t.tokensLocked())
}

// PrintCurrentPath writes the current path to the sink regardless of mode.
func (t *TracerClient) PrintCurrentPath() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLocked("Scope path: " + describePath(t.tokensLocked()) + "\n")
}

func (t *TracerClient) activeLocked() bool {
	return t.mode != ModeDisabled && t.replay == 0
}

func (t *TracerClient) tokensLocked() []Token {
	tokens := make([]Token, len(t.path))
	for i, f := range t.path {
		tokens[i] = f.token
	}
	return tokens
}

func (t *TracerClient) joinedLocked() string {
	return joinPath(t.tokensLocked())
}

func (t *TracerClient) tailDepthLocked() int {
	return max(len(t.path)-1, 0)
}

// emitLocked renders ev and writes all of its lines in one write.
func (t *TracerClient) emitLocked(ev event) {
	lines := render(ev, t.mode)
	if t.colors != nil {
		lines = t.colors.apply(ev.kind, lines)
	}
	t.writeLocked(strings.Join(lines, "\n") + "\n")
}

func (t *TracerClient) writeLocked(block string) {
	if _, err := io.WriteString(t.out, block); err != nil {
		t.log.Warn("failed to write scope trace", err, map[string]interface{}{
			"depth": len(t.path),
		})
	}
}

// notify reports ev to the observer. It runs outside the lock so observers
// may call back into the tracer. Exits that popped a frame without rendering
// carry Metadata["rendered"] = false.
func (t *TracerClient) notify(ev event, elapsed time.Duration) {
	if t.observer == nil {
		return
	}
	op := observability.OperationContext{
		Component:   observability.ComponentScopeTrace,
		Operation:   ev.kind.operation(),
		Resource:    ev.token.String(),
		SubResource: ev.path,
		Duration:    elapsed,
		Size:        int64(ev.depth),
	}
	if ev.kind == eventEnter || ev.kind == eventEscape {
		op.Metadata = map[string]interface{}{
			"function": ev.site.Function,
			"location": ev.site.Location(),
		}
	}
	if ev.silent {
		op.Metadata = map[string]interface{}{"rendered": false}
	}
	t.observer.ObserveOperation(op)
}
