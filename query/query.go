// Package query parses and builds URI query strings of the
// "name=value&name=value" form used by HTML forms.
package query

//go:generate go tool errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/escape"
	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

// Error is the error type of the package.
type Error = errorutil.Error

// ErrMalformedField is returned by strict parsing for a field without '='.
const ErrMalformedField Error = "malformed query field"

// Pair is a single name-value field of a query string.
type Pair struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ParseOptions control query string parsing.
type ParseOptions struct {
	// KeepBlankValues keeps fields with empty values, including fields without '='.
	KeepBlankValues bool
	// Strict fails with [ErrMalformedField] on a field without '=', empty fields included.
	Strict bool
	// Encoding and Errors are passed to [escape.Unquote].
	Encoding string
	Errors   escape.ErrorPolicy
}

func (o *ParseOptions) keepBlank() bool { return o != nil && o.KeepBlankValues }

func (o *ParseOptions) strict() bool { return o != nil && o.Strict }

func (o *ParseOptions) unquoteOpts() *escape.Options {
	if o == nil {
		return nil
	}
	return &escape.Options{Encoding: o.Encoding, Errors: o.Errors}
}

// ParseList parses a query string into pairs in the order they appear.
// Fields are separated by '&' or ';', '+' stands for a space and names and
// values are percent-decoded. An empty query string yields no pairs.
func ParseList(qs string, opts *ParseOptions) ([]Pair, error) {
	if qs == "" {
		return nil, nil
	}

	uopts := opts.unquoteOpts()
	var pairs []Pair
	for part := range strings.SplitSeq(qs, "&") {
		for field := range strings.SplitSeq(part, ";") {
			if field == "" && !opts.strict() {
				continue
			}
			pair, ok, err := parseField(field, opts, uopts)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			if ok {
				pairs = append(pairs, pair)
			}
		}
	}
	return pairs, nil
}

func parseField(field string, opts *ParseOptions, uopts *escape.Options) (Pair, bool, error) {
	name, value, found := strings.Cut(field, "=")
	if !found {
		if opts.strict() {
			return Pair{}, false, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedField, "%q", field))
		}
		if !opts.keepBlank() {
			return Pair{}, false, nil
		}
	}
	if value == "" && !opts.keepBlank() {
		return Pair{}, false, nil
	}

	name, err := escape.UnquotePlus(name, uopts)
	if err != nil {
		return Pair{}, false, errtrace.Wrap(err)
	}
	value, err = escape.UnquotePlus(value, uopts)
	if err != nil {
		return Pair{}, false, errtrace.Wrap(err)
	}
	return Pair{Name: name, Value: value}, true, nil
}

// Parse is like [ParseList] but collects the values of each name.
func Parse(qs string, opts *ParseOptions) (Values, error) {
	pairs, err := ParseList(qs, opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	vals := make(Values, len(pairs))
	for _, p := range pairs {
		vals.Append(p.Name, p.Value)
	}
	return vals, nil
}

// QuoteVia selects the quoting function of [Encode].
type QuoteVia uint8

const (
	// QuoteViaPlus encodes spaces as '+' with [escape.QuotePlus].
	QuoteViaPlus QuoteVia = iota
	// QuoteViaQuote encodes spaces as "%20" with [escape.Quote].
	QuoteViaQuote
)

// EncodeOptions control query string building.
type EncodeOptions struct {
	// Safe lists characters that are not quoted.
	Safe string
	// Encoding and Errors are passed to the quoting function.
	Encoding string
	Errors   escape.ErrorPolicy
	QuoteVia QuoteVia
}

func (o *EncodeOptions) safe() string {
	if o == nil {
		return ""
	}
	return o.Safe
}

func (o *EncodeOptions) quoteOpts() *escape.Options {
	if o == nil {
		return nil
	}
	return &escape.Options{Encoding: o.Encoding, Errors: o.Errors}
}

func (o *EncodeOptions) quote() func(string, string, *escape.Options) (string, error) {
	if o != nil && o.QuoteVia == QuoteViaQuote {
		return escape.Quote[string]
	}
	return escape.QuotePlus[string]
}

// Encode renders pairs as a query string in their order.
//
//	query.Encode([]query.Pair{{"q", "a b"}, {"x", "1&2"}}, nil) == "q=a+b&x=1%262"
func Encode(pairs []Pair, opts *EncodeOptions) (string, error) {
	quote, safe, qopts := opts.quote(), opts.safe(), opts.quoteOpts()

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range pairs {
		name, err := quote(p.Name, safe, qopts)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		value, err := quote(p.Value, safe, qopts)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	return sb.String(), nil
}
