package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/util"
)

// SplitOptions control decomposition.
// A nil *SplitOptions means no default scheme and fragments enabled.
type SplitOptions struct {
	// DefaultScheme is used when the input carries no scheme.
	// It is returned as given, without lowercasing.
	DefaultScheme string
	// IgnoreFragment disables fragment splitting, so '#' stays in the path or query.
	IgnoreFragment bool
}

func (o *SplitOptions) defScheme() string {
	if o == nil {
		return ""
	}
	return o.DefaultScheme
}

func (o *SplitOptions) allowFragments() bool {
	if o == nil {
		return true
	}
	return !o.IgnoreFragment
}

// splitURL decomposes s into five components without consulting any cache.
func splitURL(s, scheme string, allowFragments bool) (SplitResult, error) {
	var authority, query, fragment string

	if i := strings.IndexByte(s, grammar.SchemeDelim); i > 0 {
		// "http" is by far the most common scheme, skip the character scan for it.
		if s[:i] == "http" || grammar.IsScheme(s[:i]) {
			scheme, s = util.LCase(s[:i]), s[i+1:]
		}
	}

	if strings.HasPrefix(s, "//") {
		authority, s = splitAuthority(s[2:])
		if grammar.HasUnbalancedBrackets(authority) {
			return SplitResult{}, errtrace.Wrap(newInvalidAuthorityErr(authority))
		}
	}
	if allowFragments {
		if i := strings.IndexByte(s, grammar.FragmentDelim); i >= 0 {
			s, fragment = s[:i], s[i+1:]
		}
	}
	if i := strings.IndexByte(s, grammar.QueryDelim); i >= 0 {
		s, query = s[:i], s[i+1:]
	}

	return SplitResult{
		Scheme:    scheme,
		Authority: authority,
		Path:      s,
		Query:     query,
		Fragment:  fragment,
	}, nil
}

// splitAuthority cuts s at the earliest authority terminator.
func splitAuthority(s string) (authority, rest string) {
	i := strings.IndexAny(s, grammar.AuthorityEnd)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// splitParams separates ';' parameters from the path.
// With a '/' in the path, only a ';' at or after the last '/' counts.
// Without one, the path is cut at its first ';'.
func splitParams(path string) (string, string) {
	var i int
	if j := strings.LastIndexByte(path, grammar.PathDelim); j >= 0 {
		k := strings.IndexByte(path[j:], grammar.ParamsDelim)
		if k < 0 {
			return path, ""
		}
		i = j + k
	} else {
		i = strings.IndexByte(path, grammar.ParamsDelim)
		if i < 0 {
			return path, ""
		}
	}
	return path[:i], path[i+1:]
}

func parseSplit(sr SplitResult) ParseResult {
	res := ParseResult{
		Scheme:    sr.Scheme,
		Authority: sr.Authority,
		Path:      sr.Path,
		Query:     sr.Query,
		Fragment:  sr.Fragment,
	}
	if UsesParams(sr.Scheme) && strings.IndexByte(sr.Path, grammar.ParamsDelim) >= 0 {
		res.Path, res.Params = splitParams(sr.Path)
	}
	return res
}
