package uri

import (
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/util"
)

// SplitResult holds the five components produced by [Split].
// Path parameters, if any, remain part of Path.
type SplitResult struct {
	Scheme    string `json:"scheme" yaml:"scheme"`
	Authority string `json:"authority" yaml:"authority"`
	Path      string `json:"path" yaml:"path"`
	Query     string `json:"query" yaml:"query"`
	Fragment  string `json:"fragment" yaml:"fragment"`
}

// RenderTo writes the URI composed from r to w.
func (r SplitResult) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderTo(w, r.Scheme, r.Authority, r.Path, r.Query, r.Fragment))
}

// String returns the URI composed from r. See [Compose].
func (r SplitResult) String() string {
	return Compose(r.Scheme, r.Authority, r.Path, r.Query, r.Fragment)
}

// Username returns the user name of the authority. See [Username].
func (r SplitResult) Username() (string, bool) { return Username(r.Authority) }

// Password returns the password of the authority. See [Password].
func (r SplitResult) Password() (string, bool) { return Password(r.Authority) }

// Hostname returns the host of the authority. See [Hostname].
func (r SplitResult) Hostname() (string, bool) { return Hostname(r.Authority) }

// Port returns the port of the authority. See [Port].
func (r SplitResult) Port() (int, bool) { return Port(r.Authority) }

// LogValue implements [slog.LogValuer].
func (r SplitResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scheme", r.Scheme),
		slog.String("authority", r.Authority),
		slog.String("path", r.Path),
		slog.String("query", r.Query),
		slog.String("fragment", r.Fragment),
	)
}

// ParseResult holds the six components produced by [Parse].
type ParseResult struct {
	Scheme    string `json:"scheme" yaml:"scheme"`
	Authority string `json:"authority" yaml:"authority"`
	Path      string `json:"path" yaml:"path"`
	Params    string `json:"params" yaml:"params"`
	Query     string `json:"query" yaml:"query"`
	Fragment  string `json:"fragment" yaml:"fragment"`
}

// RenderTo writes the URI composed from r to w.
func (r ParseResult) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderTo(w, r.Scheme, r.Authority, joinParams(r.Path, r.Params), r.Query, r.Fragment))
}

// String returns the URI composed from r. See [ComposeWithParams].
func (r ParseResult) String() string {
	return ComposeWithParams(r.Scheme, r.Authority, r.Path, r.Params, r.Query, r.Fragment)
}

// SplitResult folds the params back into the path.
func (r ParseResult) SplitResult() SplitResult {
	return SplitResult{
		Scheme:    r.Scheme,
		Authority: r.Authority,
		Path:      joinParams(r.Path, r.Params),
		Query:     r.Query,
		Fragment:  r.Fragment,
	}
}

func (r ParseResult) Username() (string, bool) { return Username(r.Authority) }

func (r ParseResult) Password() (string, bool) { return Password(r.Authority) }

func (r ParseResult) Hostname() (string, bool) { return Hostname(r.Authority) }

func (r ParseResult) Port() (int, bool) { return Port(r.Authority) }

// LogValue implements [slog.LogValuer].
func (r ParseResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scheme", r.Scheme),
		slog.String("authority", r.Authority),
		slog.String("path", r.Path),
		slog.String("params", r.Params),
		slog.String("query", r.Query),
		slog.String("fragment", r.Fragment),
	)
}

// DefragResult holds a URI without its fragment and the removed fragment.
type DefragResult struct {
	URL      string `json:"url" yaml:"url"`
	Fragment string `json:"fragment" yaml:"fragment"`
}

// RenderTo writes the URL with the fragment reattached to w.
func (r DefragResult) RenderTo(w io.Writer) (int, error) {
	if r.Fragment == "" {
		return errtrace.Wrap2(io.WriteString(w, r.URL))
	}
	return errtrace.Wrap2(io.WriteString(w, r.URL+"#"+r.Fragment))
}

// String returns the URL with the fragment appended when it is non-empty.
func (r DefragResult) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	r.RenderTo(sb) //nolint:errcheck
	return sb.String()
}
