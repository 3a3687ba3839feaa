package scopetrace

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Token identifies one active or escaped scope entry in the rendered trace.
// It is the base hash of a call site, optionally followed by ":<n>" when the
// same call site is already on the path.
type Token string

// NoToken is returned when no trace is active: the tracer is disabled, an
// escaped context is being replayed, or an escape was captured outside any
// scope.
const NoToken Token = ""

// String implements fmt.Stringer.
func (t Token) String() string { return string(t) }

// Base returns the token without its disambiguation suffix.
func (t Token) Base() string {
	s := string(t)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i]
	}
	return s
}

// baseHash folds the 32-bit FNV-1 hash of "<file>:<line>:<function>" to 24
// bits and encodes it in lowercase base 36.
func baseHash(site CallSite) string {
	h := fnv.New32() // FNV-1: multiply, then xor
	_, _ = h.Write([]byte(site.subject()))
	sum := h.Sum32()
	folded := (sum >> 24) ^ (sum & 0xffffff)
	return strconv.FormatUint(uint64(folded), 36)
}

// SiteToken returns the undisambiguated token a scope entered at site would
// get on an empty path.
func SiteToken(site CallSite) Token {
	return Token(baseHash(site))
}

// tokenFor computes the token of site relative to the active path. Re-entering
// a call site that is already on the path yields base:1, base:2, and so on.
func tokenFor(site CallSite, path []frame) Token {
	base := baseHash(site)
	for i := len(path) - 1; i >= 0; i-- {
		prev := string(path[i].token)
		if !strings.HasPrefix(prev, base) {
			continue
		}
		return Token(base + ":" + strconv.FormatUint(nextSuffix(prev), 10))
	}
	return Token(base)
}

// nextSuffix returns n+1 for a token ending in ":<n>", and 1 when the suffix
// is missing or not a non-negative integer.
func nextSuffix(token string) uint64 {
	i := strings.LastIndexByte(token, ':')
	if i < 0 {
		return 1
	}
	n, err := strconv.ParseUint(token[i+1:], 10, 64)
	if err != nil {
		return 1
	}
	return n + 1
}
