package uri

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/ioutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

// Compose builds a URI from five components.
//
// The "//" prefix is written when authority is non-empty, or when the scheme uses
// an authority and path does not already start with "//". In that case a path
// without a leading '/' gets one. Empty query and fragment are omitted, so a URI
// decomposed from "http://a?" composes back to "http://a".
func Compose(scheme, authority, path, query, fragment string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderTo(sb, scheme, authority, path, query, fragment) //nolint:errcheck
	return sb.String()
}

// ComposeWithParams builds a URI from six components.
// Non-empty params are appended to path after a ';'.
func ComposeWithParams(scheme, authority, path, params, query, fragment string) string {
	return Compose(scheme, authority, joinParams(path, params), query, fragment)
}

// Unsplit rebuilds a URI from a [SplitResult].
func Unsplit(r SplitResult) string { return r.String() }

// Unparse rebuilds a URI from a [ParseResult].
func Unparse(r ParseResult) string { return r.String() }

func joinParams(path, params string) string {
	if params == "" {
		return path
	}
	return path + ";" + params
}

func renderTo(w io.Writer, scheme, authority, path, query, fragment string) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if scheme != "" {
		cw.WriteStrings(scheme, ":")
	}
	if authority != "" || (scheme != "" && UsesAuthority(scheme) && !strings.HasPrefix(path, "//")) {
		cw.WriteStrings("//", authority)
		if path != "" && path[0] != '/' {
			cw.WriteStrings("/")
		}
	}
	cw.WriteStrings(path)
	if query != "" {
		cw.WriteStrings("?", query)
	}
	if fragment != "" {
		cw.WriteStrings("#", fragment)
	}
	return errtrace.Wrap2(cw.Result())
}
