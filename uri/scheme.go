package uri

import "strings"

type schemeSet map[string]struct{}

func newSchemeSet(names ...string) schemeSet {
	s := make(schemeSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s schemeSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// The empty scheme is a member of every table except nonHierarchical.
var (
	usesRelative = newSchemeSet(
		"ftp", "http", "gopher", "nntp", "imap", "wais", "file", "https", "shttp",
		"mms", "prospero", "rtsp", "rtspu", "", "sftp", "svn", "svn+ssh", "ws", "wss",
	)
	usesAuthority = newSchemeSet(
		"ftp", "http", "gopher", "nntp", "telnet", "imap", "wais", "file", "mms",
		"https", "shttp", "snews", "prospero", "rtsp", "rtspu", "rsync", "",
		"svn", "svn+ssh", "sftp", "nfs", "git", "git+ssh", "ws", "wss",
	)
	usesParams = newSchemeSet(
		"ftp", "hdl", "prospero", "http", "imap", "https", "shttp", "rtsp",
		"rtspu", "sip", "sips", "mms", "", "sftp", "tel",
	)
	usesQuery = newSchemeSet(
		"http", "wais", "imap", "https", "shttp", "mms", "gopher", "rtsp",
		"rtspu", "sip", "sips", "",
	)
	usesFragment = newSchemeSet(
		"ftp", "hdl", "http", "gopher", "news", "nntp", "wais", "https",
		"shttp", "snews", "file", "prospero", "",
	)
	nonHierarchical = newSchemeSet(
		"gopher", "hdl", "mailto", "news", "telnet", "wais", "imap", "snews", "sip", "sips",
	)
)

// UsesRelative reports whether references in the scheme can be resolved against a base.
func UsesRelative(scheme string) bool { return usesRelative.has(strings.ToLower(scheme)) }

// UsesAuthority reports whether the scheme carries a "//" authority.
func UsesAuthority(scheme string) bool { return usesAuthority.has(strings.ToLower(scheme)) }

// UsesParams reports whether the scheme separates ';' parameters from the last path segment.
func UsesParams(scheme string) bool { return usesParams.has(strings.ToLower(scheme)) }

// UsesQuery reports whether the scheme is known to use a query.
// Decomposition splits the query for every scheme regardless.
func UsesQuery(scheme string) bool { return usesQuery.has(strings.ToLower(scheme)) }

// UsesFragment reports whether the scheme is known to use a fragment.
// Decomposition splits the fragment for every scheme regardless.
func UsesFragment(scheme string) bool { return usesFragment.has(strings.ToLower(scheme)) }

// IsNonHierarchical reports whether the scheme has no hierarchical path.
func IsNonHierarchical(scheme string) bool { return nonHierarchical.has(strings.ToLower(scheme)) }
