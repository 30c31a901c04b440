package uri

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/types"
)

// JoinOptions control reference resolution.
type JoinOptions struct {
	// IgnoreFragment disables fragment splitting of both base and reference.
	IgnoreFragment bool
}

func (o *JoinOptions) splitOptions() *SplitOptions {
	if o == nil {
		return nil
	}
	return &SplitOptions{IgnoreFragment: o.IgnoreFragment}
}

func (p *Parser) join(base, ref types.Input, opts *JoinOptions) (string, error) {
	if base.Data == "" {
		return ref.Data, nil
	}
	if ref.Data == "" {
		return base.Data, nil
	}

	bopts := opts.splitOptions()
	b, err := p.parse(base, bopts)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	ropts := &SplitOptions{DefaultScheme: b.Scheme}
	if bopts != nil {
		ropts.IgnoreFragment = bopts.IgnoreFragment
	}
	r, err := p.parse(ref, ropts)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	if r.Scheme != b.Scheme || !UsesRelative(r.Scheme) {
		return ref.Data, nil
	}
	if UsesAuthority(r.Scheme) {
		if r.Authority != "" {
			return r.String(), nil
		}
		r.Authority = b.Authority
	}

	if r.Path == "" && r.Params == "" {
		r.Path, r.Params = b.Path, b.Params
		if r.Query == "" {
			r.Query = b.Query
		}
		return r.String(), nil
	}

	r.Path = mergePath(b.Path, r.Path)
	return r.String(), nil
}

// mergePath merges a reference path into a base path and removes dot segments.
// Surplus ".." segments are dropped.
func mergePath(basePath, refPath string) string {
	var segments []string
	if strings.HasPrefix(refPath, "/") {
		segments = strings.Split(refPath, "/")
	} else {
		baseParts := strings.Split(basePath, "/")
		// the last base segment is a file name, not a directory
		if baseParts[len(baseParts)-1] != "" {
			baseParts = baseParts[:len(baseParts)-1]
		}
		segments = slices.Concat(baseParts, strings.Split(refPath, "/"))
		segments = dropInnerEmpty(segments)
	}

	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		case ".":
		default:
			resolved = append(resolved, seg)
		}
	}
	if last := segments[len(segments)-1]; last == "." || last == ".." {
		resolved = append(resolved, "")
	}

	if path := strings.Join(resolved, "/"); path != "" {
		return path
	}
	return "/"
}

// dropInnerEmpty removes empty segments other than the first and the last one.
func dropInnerEmpty(segments []string) []string {
	if len(segments) < 3 {
		return segments
	}
	out := make([]string, 0, len(segments))
	out = append(out, segments[0])
	for _, seg := range segments[1 : len(segments)-1] {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return append(out, segments[len(segments)-1])
}
