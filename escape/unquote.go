package escape

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/types"
	"github.com/ghettovoice/urisplit/internal/util"
)

// UnquoteToBytes replaces every "%XX" escape of s (string or []byte) by the byte it encodes.
// Malformed escapes are kept verbatim.
//
//	escape.UnquoteToBytes("abc%20def%zz") == []byte("abc def%zz")
func UnquoteToBytes[T ~string | ~[]byte](s T) []byte {
	return unquoteBytes(types.InputOf(s).Data)
}

func unquoteBytes(s string) []byte {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return []byte(s)
	}

	buf := make([]byte, 0, len(s))
	buf = append(buf, s[:i]...)
	for i < len(s) {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			if b, ok := grammar.UnhexPair(s[i+1], s[i+2]); ok {
				buf = append(buf, b)
				i += 3
				continue
			}
		}
		buf = append(buf, c)
		i++
	}
	return buf
}

// Unquote replaces "%XX" escapes in s and decodes the resulting bytes with
// opts.Encoding (default UTF-8) under opts.Errors (default [Replace]).
//
// Only maximal runs of ASCII characters are unescaped and decoded. Other bytes
// are copied as they are. A string without '%' is returned unchanged.
//
//	escape.Unquote("abc%20def", nil) == "abc def"
func Unquote(s string, opts *Options) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	policy, err := opts.errors(Replace)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	cs, err := lookupCharset(opts.encoding())
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] < 0x80 {
			j++
		}
		if j > i {
			txt, err := cs.decode(unquoteBytes(s[i:j]), policy)
			if err != nil {
				return "", errtrace.Wrap(err)
			}
			sb.WriteString(txt)
		}

		k := j
		for k < len(s) && s[k] >= 0x80 {
			k++
		}
		sb.WriteString(s[j:k])
		i = k
	}
	return sb.String(), nil
}

// UnquotePlus is like [Unquote] but first replaces '+' by a space, as in HTML form values.
//
//	escape.UnquotePlus("%7e/abc+def", nil) == "~/abc def"
func UnquotePlus(s string, opts *Options) (string, error) {
	return errtrace.Wrap2(Unquote(strings.ReplaceAll(s, "+", " "), opts))
}
