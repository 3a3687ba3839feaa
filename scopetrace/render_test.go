package scopetrace

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruled builds a rule line exactly MaxLineLength cells wide, ending in the
// continuation glyph.
func ruled(prefix, glyph, continuation string) string {
	n := MaxLineLength - utf8.RuneCountInString(prefix) - 1
	return prefix + strings.Repeat(glyph, n) + continuation
}

var fooSite = CallSite{File: "app/a.go", Line: 10, Function: "app.foo"}

func TestRender_VerboseEnter(t *testing.T) {
	t.Parallel()
	lines := render(event{kind: eventEnter, token: "4689i", site: fooSite, path: "4689i"}, ModeVerbose)

	assert.Equal(t, []string{
		ruled("┌─ enter: 4689i ", "─", "┄"),
		"│ Function: app.foo",
		"│ Location: app/a.go:10",
		"│ Path: 4689i",
		"├────────┄",
		"┆ ",
	}, lines)
}

func TestRender_VerboseEnterIndented(t *testing.T) {
	t.Parallel()
	lines := render(event{kind: eventEnter, token: "4689i:1", site: fooSite, path: "4689i/4689i:1", depth: 1}, ModeVerbose)

	require.Len(t, lines, 6)
	assert.Equal(t, ruled("│ ┌─ enter: 4689i:1 ", "─", "┄"), lines[0])
	assert.Equal(t, "│ │ Path: 4689i/4689i:1", lines[3])
	assert.Equal(t, "│ ┆ ", lines[5])
}

func TestRender_CompactEnterAndExit(t *testing.T) {
	t.Parallel()
	enter := render(event{kind: eventEnter, token: "c", site: fooSite, path: "a/b/c", depth: 2}, ModeCompact)
	exit := render(event{kind: eventExit, token: "c", path: "a/b/c", depth: 2}, ModeCompact)

	assert.Equal(t, []string{ruled("│ │ ┌─ enter: a/b/c ", "─", "┄")}, enter)
	assert.Equal(t, []string{ruled("│ │ └─ End of: a/b/c ", "─", "┄")}, exit)
}

func TestRender_VerboseExit(t *testing.T) {
	t.Parallel()
	lines := render(event{kind: eventExit, token: "4689i", path: "4689i"}, ModeVerbose)
	assert.Equal(t, []string{ruled("└─ End of: 4689i ", "─", "┄")}, lines)
}

func TestRender_Escape(t *testing.T) {
	t.Parallel()
	site := CallSite{File: "svc/handler.go", Line: 88, Function: "svc.Handle"}

	cases := []struct {
		name string
		ev   event
		mode Mode
		want string
	}{
		{"verbose", event{kind: eventEscape, token: "b", site: site, path: "a/b", depth: 1}, ModeVerbose, "│ ┿━< Escaping b at svc/handler.go:88"},
		{"compact", event{kind: eventEscape, token: "b", site: site, path: "a/b", depth: 1}, ModeCompact, "│ ┿━< Escaping a/b"},
		{"verbose default", event{kind: eventEscape, site: site}, ModeVerbose, "┿━< Escaping default context at svc/handler.go:88"},
		{"compact default", event{kind: eventEscape, site: site}, ModeCompact, "┿━< Escaping default context"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, []string{tc.want}, render(tc.ev, tc.mode))
		})
	}
}

func TestRender_Yield(t *testing.T) {
	t.Parallel()
	verbose := render(event{kind: eventYield, token: "b", path: "a", depth: 0}, ModeVerbose)
	assert.Equal(t, []string{
		ruled("┯━> Yielding escaped context: b ", "━", "┅"),
		"│ Path: a",
		"├────────┄",
		"┆ ",
	}, verbose)

	compact := render(event{kind: eventYield, token: "b", path: "a"}, ModeCompact)
	assert.Equal(t, []string{ruled("┯━> Yielding escaped context: a ", "━", "┅")}, compact)

	none := render(event{kind: eventYield}, ModeVerbose)
	assert.Equal(t, []string{ruled("┯━> Yielding default context ", "━", "┅")}, none)
}

func TestRender_YieldEnd(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]string{ruled("└─ End of escaped: b ", "─", "┄")},
		render(event{kind: eventYieldEnd, token: "b", path: "a"}, ModeVerbose))
	assert.Equal(t,
		[]string{ruled("└─ End of escaped: a ", "─", "┄")},
		render(event{kind: eventYieldEnd, token: "b", path: "a"}, ModeCompact))
	assert.Equal(t,
		[]string{ruled("└─ End of escaped default context ", "─", "┄")},
		render(event{kind: eventYieldEnd}, ModeCompact))
}

func TestRender_LinesNeverExceedMaxLength(t *testing.T) {
	t.Parallel()
	longFn := strings.Repeat("x", 200)
	longPath := strings.Repeat("abcdef/", 30)
	kinds := []eventKind{eventEnter, eventExit, eventEscape, eventYield, eventYieldEnd}

	for _, mode := range []Mode{ModeVerbose, ModeCompact} {
		for _, kind := range kinds {
			for _, depth := range []int{0, 3, 39, 40, 120} {
				ev := event{
					kind:  kind,
					token: "4689i:9",
					site:  CallSite{File: "deep/file.go", Line: 1, Function: longFn},
					path:  longPath,
					depth: depth,
				}
				for _, line := range render(ev, mode) {
					assert.LessOrEqual(t, widthCondition.StringWidth(line), MaxLineLength, line)
					assert.False(t, strings.HasSuffix(line, "─"), line)
					assert.False(t, strings.HasSuffix(line, "━"), line)
				}
			}
		}
	}
}

func TestRender_LongFunctionIsCutNotEllipsized(t *testing.T) {
	t.Parallel()
	site := CallSite{File: "f.go", Line: 1, Function: strings.Repeat("x", 200)}
	lines := render(event{kind: eventEnter, token: "t", site: site, path: "t"}, ModeVerbose)

	assert.Equal(t, "│ Function: "+strings.Repeat("x", MaxLineLength-12), lines[1])
}

func TestEllipsize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc┄", ellipsize("abc─"))
	assert.Equal(t, "abc┅", ellipsize("abc━"))
	assert.Equal(t, "abc", ellipsize("abc"))
	assert.Equal(t, "├────────┄", ellipsize("├────────┄"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, strings.Repeat("a", MaxLineLength), truncate(strings.Repeat("a", 100)))
	assert.Equal(t, "short", truncate("short"))
	assert.Equal(t, MaxLineLength, utf8.RuneCountInString(truncate(strings.Repeat("│ ", 60))))
}

func TestPalette_Apply(t *testing.T) {
	t.Parallel()
	lines := newPalette().apply(eventEscape, []string{"┿━< Escaping a"})

	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b["), lines[0])
	assert.Contains(t, lines[0], "┿━< Escaping a")
}

func TestDescribePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/ (default context)", describePath(nil))
	assert.Equal(t, "a/b:1/c", describePath([]Token{"a", "b:1", "c"}))
}
