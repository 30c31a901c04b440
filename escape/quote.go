package escape

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/types"
	"github.com/ghettovoice/urisplit/internal/util"
)

// DefaultSafe is the conventional safe set of [Quote] for path components.
const DefaultSafe = "/"

// QuoteFromBytes percent-encodes every byte of b that is neither always safe
// (ASCII letters, digits and "_.-~") nor listed in safe, using uppercase hex digits.
// Non-ASCII bytes of safe are ignored.
func (r *Registry) QuoteFromBytes(b []byte, safe string) string {
	return r.quoteBytes(string(b), safe)
}

// Quote percent-encodes text s after converting it to opts.Encoding. See [Quote].
func (r *Registry) Quote(s, safe string, opts *Options) (string, error) {
	return errtrace.Wrap2(r.quote(types.InputOf(s), safe, opts))
}

// QuotePlus is like [Registry.Quote] but encodes spaces as '+'. See [QuotePlus].
func (r *Registry) QuotePlus(s, safe string, opts *Options) (string, error) {
	return errtrace.Wrap2(r.quotePlus(types.InputOf(s), safe, opts))
}

func (r *Registry) quoteBytes(s, safe string) string {
	if s == "" {
		return ""
	}

	ss := newSafeSet(safe)
	i := 0
	for i < len(s) && (grammar.IsAlwaysSafe(s[i]) || ss.has(s[i])) {
		i++
	}
	if i == len(s) {
		return s
	}

	t := r.table(ss)
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(len(s) + 2*(len(s)-i))
	sb.WriteString(s[:i])
	for ; i < len(s); i++ {
		sb.WriteString(t[s[i]])
	}
	return sb.String()
}

func (r *Registry) quote(in types.Input, safe string, opts *Options) (string, error) {
	if in.Kind == types.KindBytes {
		if opts.isSet() {
			return "", errtrace.Wrap(newUnsupportedArgErr("encoding and errors options are not supported for bytes"))
		}
		return r.quoteBytes(in.Data, safe), nil
	}
	if in.Data == "" {
		return "", nil
	}

	policy, err := opts.errors(Strict)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	cs, err := lookupCharset(opts.encoding())
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	b, err := cs.encode(in.Data, policy)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return r.quoteBytes(string(b), safe), nil
}

func (r *Registry) quotePlus(in types.Input, safe string, opts *Options) (string, error) {
	if strings.IndexByte(in.Data, ' ') < 0 {
		return errtrace.Wrap2(r.quote(in, safe, opts))
	}
	s, err := r.quote(in, safe+" ", opts)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.ReplaceAll(s, " ", "+"), nil
}

// QuoteFromBytes percent-encodes every byte of b that is neither always safe
// (ASCII letters, digits and "_.-~") nor listed in safe.
//
//	escape.QuoteFromBytes([]byte("abc def?"), "") == "abc%20def%3F"
func QuoteFromBytes(b []byte, safe string) string { return defRegistry.QuoteFromBytes(b, safe) }

// Quote percent-encodes s (string or []byte). Pass [DefaultSafe] to keep '/' as is.
//
// Text is first converted with opts.Encoding (default UTF-8) under opts.Errors
// (default [Strict]). Byte slices are quoted as they are and must not be combined
// with any option, otherwise [ErrUnsupportedArgument] is returned.
func Quote[T ~string | ~[]byte](s T, safe string, opts *Options) (string, error) {
	return errtrace.Wrap2(defRegistry.quote(types.InputOf(s), safe, opts))
}

// QuotePlus is like [Quote] but encodes spaces as '+' as HTML forms do.
// A '+' in s is percent-encoded unless listed in safe.
func QuotePlus[T ~string | ~[]byte](s T, safe string, opts *Options) (string, error) {
	return errtrace.Wrap2(defRegistry.quotePlus(types.InputOf(s), safe, opts))
}
