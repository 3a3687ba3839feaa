package scopetrace

import (
	"path"
	"runtime"
	"strconv"
)

// CallSite describes where a scope was entered.
type CallSite struct {
	// File is a short file identifier, typically "<dir>/<file>.go".
	File string
	// Line is the source line of the call.
	Line int
	// Function is the fully qualified enclosing function name.
	Function string
}

// Location returns "<file>:<line>".
func (c CallSite) Location() string {
	return c.File + ":" + strconv.Itoa(c.Line)
}

func (c CallSite) subject() string {
	return c.Location() + ":" + c.Function
}

// Here returns the call site of its caller. skip counts additional frames to
// ascend, so wrappers around the tracer can report their own caller:
//
//	func withOverrides(fn func()) {
//		tok := scopetrace.EnterScope(scopetrace.Here(1))
//		defer scopetrace.ExitScope(tok)
//		fn()
//	}
func Here(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: "???", Function: "???"}
	}
	site := CallSite{File: shortFile(file), Line: line, Function: "???"}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = fn.Name()
	}
	return site
}

// shortFile keeps the last directory and the file name, which is stable
// across checkouts in different locations.
func shortFile(file string) string {
	dir, name := path.Split(file)
	if dir == "" {
		return name
	}
	return path.Join(path.Base(dir), name)
}
