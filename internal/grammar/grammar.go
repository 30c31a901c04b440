// Package grammar contains the character classes and lookup tables used by the URI codecs.
package grammar

import "strings"

// Delimiters recognized while decomposing a URI.
const (
	SchemeDelim   = ':'
	FragmentDelim = '#'
	QueryDelim    = '?'
	ParamsDelim   = ';'
	PathDelim     = '/'
)

// AuthorityEnd lists the bytes that terminate an authority, in no particular order.
const AuthorityEnd = "/?#"

// AlwaysSafe lists the bytes that are never percent-encoded.
const AlwaysSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"_.-~"

var (
	schemeChars    [256]bool
	alwaysSafeSet  [256]bool
	unhexTable     [256]byte
	upperHexDigits = "0123456789ABCDEF"
)

func init() {
	for _, c := range []byte(AlwaysSafe) {
		alwaysSafeSet[c] = true
	}
	for _, c := range []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-.") {
		schemeChars[c] = true
	}
	for i := range unhexTable {
		unhexTable[i] = 0xff
	}
	for i := byte(0); i < 10; i++ {
		unhexTable['0'+i] = i
	}
	for i := byte(0); i < 6; i++ {
		unhexTable['a'+i] = 10 + i
		unhexTable['A'+i] = 10 + i
	}
}

// IsSchemeChar reports whether c may appear in a scheme name.
func IsSchemeChar(c byte) bool { return schemeChars[c] }

// IsScheme reports whether s is non-empty and built from scheme characters only.
// The leading character is not required to be a letter.
func IsScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !schemeChars[s[i]] {
			return false
		}
	}
	return true
}

// IsAlwaysSafe reports whether c belongs to the unreserved set.
func IsAlwaysSafe(c byte) bool { return alwaysSafeSet[c] }

// UnhexPair decodes two hex digits into a byte.
func UnhexPair(hi, lo byte) (byte, bool) {
	h, l := unhexTable[hi], unhexTable[lo]
	if h == 0xff || l == 0xff {
		return 0, false
	}
	return h<<4 | l, true
}

// Percent returns the uppercase "%XX" form of c.
func Percent(c byte) string {
	return string([]byte{'%', upperHexDigits[c>>4], upperHexDigits[c&0x0f]})
}

// HasUnbalancedBrackets reports whether s has exactly one of '[' and ']'.
func HasUnbalancedBrackets(s string) bool {
	return strings.Contains(s, "[") != strings.Contains(s, "]")
}
