package escape

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/urisplit/internal/syncutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

// charset converts between UTF-8 text and the bytes of one encoding.
// A nil enc means UTF-8, which is handled natively.
type charset struct {
	name string
	enc  encoding.Encoding
}

var charsets syncutil.RWMap[string, charset]

// lookupCharset resolves an encoding name through the IANA registry and then the WHATWG index.
// Names are matched case-insensitively, '_' and '-' are interchangeable and may be omitted.
func lookupCharset(name string) (charset, error) {
	if cs, ok := charsets.Get(name); ok {
		return cs, nil
	}

	norm := strings.ReplaceAll(util.LCase(util.TrimSP(name)), "_", "-")
	switch norm {
	case "utf-8", "utf8", "u8":
		cs := charset{name: "utf-8"}
		charsets.Set(name, cs)
		return cs, nil
	}

	for _, cand := range []string{util.TrimSP(name), norm, strings.ReplaceAll(norm, "-", "")} {
		if cand == "" {
			continue
		}
		if enc, err := ianaindex.IANA.Encoding(cand); err == nil && enc != nil {
			cs := charset{name: norm, enc: enc}
			charsets.Set(name, cs)
			return cs, nil
		}
		if enc, err := htmlindex.Get(cand); err == nil && enc != nil {
			cs := charset{name: norm, enc: enc}
			charsets.Set(name, cs)
			return cs, nil
		}
	}
	return charset{}, errtrace.Wrap(newUnknownEncodingErr(name))
}

func (cs charset) isUTF8() bool { return cs.enc == nil }

// encode converts UTF-8 text to the charset.
// Under Replace every unencodable rune becomes '?', under Ignore it is dropped.
// Invalid UTF-8 in s counts as unencodable.
func (cs charset) encode(s string, policy ErrorPolicy) ([]byte, error) {
	var enc *encoding.Encoder
	if cs.isUTF8() {
		if utf8.ValidString(s) {
			return []byte(s), nil
		}
	} else {
		enc = cs.enc.NewEncoder()
		if out, err := enc.String(s); err == nil {
			return []byte(out), nil
		}
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		chunk, ok := s[i:i+size], !(r == utf8.RuneError && size == 1)
		if ok && enc != nil {
			out, err := enc.String(chunk)
			chunk, ok = out, err == nil
		}
		if ok {
			buf = append(buf, chunk...)
		} else {
			switch policy {
			case Strict:
				return nil, errtrace.Wrap(newEncodeErr(cs.name, i, r))
			case Replace:
				buf = append(buf, '?')
			}
		}
		i += size
	}
	return buf, nil
}

// decode converts bytes of the charset to UTF-8 text.
// Under Replace every undecodable byte becomes U+FFFD, under Ignore it is dropped.
//
// Non UTF-8 decoders of x/text emit U+FFFD for undecodable input rather than failing,
// so for them U+FFFD in the output is treated as a decoding failure.
func (cs charset) decode(b []byte, policy ErrorPolicy) (string, error) {
	if cs.isUTF8() {
		return errtrace.Wrap2(decodeUTF8(b, policy))
	}

	out, err := cs.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errtrace.Wrap(newDecodeErr(cs.name, 0, byteAt(b, 0)))
	}
	i := bytes.IndexRune(out, utf8.RuneError)
	if i < 0 {
		return string(out), nil
	}
	switch policy {
	case Strict:
		// exact for single-byte charsets, approximate for multi-byte ones
		pos := utf8.RuneCount(out[:i])
		return "", errtrace.Wrap(newDecodeErr(cs.name, pos, byteAt(b, pos)))
	case Ignore:
		return string(bytes.ReplaceAll(out, []byte(string(utf8.RuneError)), nil)), nil
	default:
		return string(out), nil
	}
}

func decodeUTF8(b []byte, policy ErrorPolicy) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			switch policy {
			case Strict:
				return "", errtrace.Wrap(newDecodeErr("utf-8", i, b[i]))
			case Replace:
				sb.WriteRune(utf8.RuneError)
			}
		} else {
			sb.Write(b[i : i+size])
		}
		i += size
	}
	return sb.String(), nil
}

func byteAt(b []byte, i int) byte {
	if i >= len(b) {
		return 0
	}
	return b[i]
}
