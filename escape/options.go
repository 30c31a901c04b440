package escape

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/util"
)

// ErrorPolicy selects how a codec handles characters or bytes it cannot convert.
type ErrorPolicy string

const (
	// Strict fails with [ErrEncode] or [ErrDecode].
	Strict ErrorPolicy = "strict"
	// Replace substitutes '?' when encoding and U+FFFD when decoding.
	Replace ErrorPolicy = "replace"
	// Ignore drops what cannot be converted.
	Ignore ErrorPolicy = "ignore"
)

// ParseErrorPolicy parses an error policy name.
// An empty name yields an empty policy, meaning the default of the operation.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(util.LCase(util.TrimSP(s))); p {
	case "", Strict, Replace, Ignore:
		return p, nil
	default:
		return "", errtrace.Wrap(newUnsupportedArgErr("unknown error policy %q", s))
	}
}

// DefaultEncoding is used when [Options.Encoding] is empty.
const DefaultEncoding = "utf-8"

// Options control text conversion of the codecs.
// A nil *Options selects the defaults of each operation.
type Options struct {
	// Encoding names the character encoding, for example "utf-8", "latin-1" or "windows-1251".
	// If empty, [DefaultEncoding] is used.
	Encoding string
	// Errors is the error policy.
	// If empty, encoding uses [Strict] and decoding uses [Replace].
	Errors ErrorPolicy
}

func (o *Options) isSet() bool {
	return o != nil && (o.Encoding != "" || o.Errors != "")
}

func (o *Options) encoding() string {
	if o == nil || o.Encoding == "" {
		return DefaultEncoding
	}
	return o.Encoding
}

func (o *Options) errors(def ErrorPolicy) (ErrorPolicy, error) {
	if o == nil || o.Errors == "" {
		return def, nil
	}
	switch o.Errors {
	case Strict, Replace, Ignore:
		return o.Errors, nil
	default:
		return "", errtrace.Wrap(newUnsupportedArgErr("unknown error policy %q", o.Errors))
	}
}
