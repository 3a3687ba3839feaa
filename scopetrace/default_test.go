package scopetrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDefault swaps in a recording tracer for the duration of the test.
// Tests using it must not run in parallel.
func useDefault(t *testing.T) *recordingWriter {
	t.Helper()
	w := &recordingWriter{}
	prev := SetDefault(New(WithWriter(w)))
	t.Cleanup(func() { SetDefault(prev) })
	return w
}

func TestDefault_StartsDisabled(t *testing.T) {
	w := useDefault(t)

	tok := EnterScope(fooSite)
	ExitScope(tok)

	assert.Equal(t, NoToken, tok)
	assert.Empty(t, w.all())
}

func TestDefault_PackageFunctions(t *testing.T) {
	w := useDefault(t)

	EnableTrace(false)
	outer := EnterScope(fooSite)
	inner := EnterScope(fooSite)
	assert.Equal(t, "4689i/4689i:1", CurrentPathDescription())

	esc := CaptureEscape(fooSite)
	ExitScope(inner)
	ExitScope(outer)

	ResumeEscape(esc)
	assert.Equal(t, NoToken, EnterScope(fooSite))
	FinishResumeEscape(esc)

	PrintCurrentPath()
	DisableTrace()
	assert.Equal(t, NoToken, EnterScope(fooSite))

	writes := w.all()
	require.Len(t, writes, 8)
	assert.Equal(t, "│ ┿━< Escaping 4689i/4689i:1\n", writes[2])
	assert.True(t, strings.HasPrefix(writes[5], "┯━> Yielding escaped context: "))
	assert.Equal(t, "Scope path: / (default context)\n", writes[7])
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	current := Default()
	assert.Same(t, current, SetDefault(nil))
	assert.Same(t, current, Default())
}

func TestEnableTrace_Verbose(t *testing.T) {
	useDefault(t)

	EnableTrace(true)

	assert.Equal(t, ModeVerbose, Default().Mode())
}
