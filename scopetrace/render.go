package scopetrace

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/aalemi-dev/scopetrace/observability"
)

// eventKind enumerates the trace events that produce output.
type eventKind int

const (
	eventEnter eventKind = iota
	eventExit
	eventEscape
	eventYield
	eventYieldEnd
)

// operation returns the observer operation name of the event.
func (k eventKind) operation() string {
	switch k {
	case eventEnter:
		return observability.OperationEnter
	case eventExit:
		return observability.OperationExit
	case eventEscape:
		return observability.OperationEscape
	case eventYield:
		return observability.OperationYield
	default:
		return observability.OperationYieldEnd
	}
}

// event is everything the renderer needs to know about one trace event.
// path is the "/"-joined path at the time of the event.
type event struct {
	kind  eventKind
	token Token
	site  CallSite
	path  string
	depth int

	// silent marks an exit that popped a frame without rendering.
	silent bool
}

const (
	indentUnit     = "│ "
	separatorLine  = "├────────┄"
	blankMarker    = "┆ "
	lightRuleGlyph = "─"
	heavyRuleGlyph = "━"
)

var (
	lightRule = strings.Repeat(lightRuleGlyph, MaxLineLength)
	heavyRule = strings.Repeat(heavyRuleGlyph, MaxLineLength)

	// Box-drawing glyphs are East Asian ambiguous; they are measured as
	// single cells regardless of the locale.
	widthCondition = func() *runewidth.Condition {
		c := runewidth.NewCondition()
		c.EastAsianWidth = false
		return c
	}()
)

// render turns an event into indented, width-bounded lines.
func render(ev event, mode Mode) []string {
	var lines []string
	verbose := mode == ModeVerbose

	switch ev.kind {
	case eventEnter:
		if verbose {
			lines = []string{
				"┌─ enter: " + ev.token.String() + " " + lightRule,
				"│ Function: " + ev.site.Function,
				"│ Location: " + ev.site.Location(),
				"│ Path: " + ev.path,
				separatorLine,
				blankMarker,
			}
		} else {
			lines = []string{"┌─ enter: " + ev.path + " " + lightRule}
		}

	case eventExit:
		if verbose {
			lines = []string{"└─ End of: " + ev.token.String() + " " + lightRule}
		} else {
			lines = []string{"└─ End of: " + ev.path + " " + lightRule}
		}

	case eventEscape:
		switch {
		case ev.token == NoToken && verbose:
			lines = []string{"┿━< Escaping default context at " + ev.site.Location()}
		case ev.token == NoToken:
			lines = []string{"┿━< Escaping default context"}
		case verbose:
			lines = []string{"┿━< Escaping " + ev.token.String() + " at " + ev.site.Location()}
		default:
			lines = []string{"┿━< Escaping " + ev.path}
		}

	case eventYield:
		switch {
		case ev.token == NoToken:
			lines = []string{"┯━> Yielding default context " + heavyRule}
		case verbose:
			lines = []string{
				"┯━> Yielding escaped context: " + ev.token.String() + " " + heavyRule,
				"│ Path: " + ev.path,
				separatorLine,
				blankMarker,
			}
		default:
			lines = []string{"┯━> Yielding escaped context: " + ev.path + " " + heavyRule}
		}

	case eventYieldEnd:
		switch {
		case ev.token == NoToken:
			lines = []string{"└─ End of escaped default context " + lightRule}
		case verbose:
			lines = []string{"└─ End of escaped: " + ev.token.String() + " " + lightRule}
		default:
			lines = []string{"└─ End of escaped: " + ev.path + " " + lightRule}
		}
	}

	indent := strings.Repeat(indentUnit, max(ev.depth, 0))
	for i, line := range lines {
		lines[i] = ellipsize(truncate(indent + line))
	}
	return lines
}

// truncate cuts a line to MaxLineLength display cells.
func truncate(line string) string {
	return widthCondition.Truncate(line, MaxLineLength, "")
}

// ellipsize swaps a trailing rule glyph for its dashed continuation glyph.
func ellipsize(line string) string {
	switch {
	case strings.HasSuffix(line, lightRuleGlyph):
		return strings.TrimSuffix(line, lightRuleGlyph) + "┄"
	case strings.HasSuffix(line, heavyRuleGlyph):
		return strings.TrimSuffix(line, heavyRuleGlyph) + "┅"
	default:
		return line
	}
}

// palette colours whole lines per event kind.
type palette map[eventKind]*color.Color

func newPalette() palette {
	p := palette{
		eventEnter:    color.New(color.FgCyan),
		eventExit:     color.New(color.FgCyan),
		eventEscape:   color.New(color.FgYellow, color.Bold),
		eventYield:    color.New(color.FgMagenta),
		eventYieldEnd: color.New(color.FgMagenta),
	}
	for _, c := range p {
		c.EnableColor()
	}
	return p
}

func (p palette) apply(kind eventKind, lines []string) []string {
	c, ok := p[kind]
	if !ok {
		return lines
	}
	for i, line := range lines {
		lines[i] = c.Sprint(line)
	}
	return lines
}

// describePath joins tokens with "/" or returns the default-context marker.
func describePath(tokens []Token) string {
	if len(tokens) == 0 {
		return "/ (default context)"
	}
	return joinPath(tokens)
}

func joinPath(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(string(tok))
	}
	return b.String()
}
