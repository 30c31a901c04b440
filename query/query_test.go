package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urisplit/escape"
	"github.com/ghettovoice/urisplit/query"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		opts    *query.ParseOptions
		want    []query.Pair
		wantErr error
	}{
		{"empty", "", nil, nil, nil},
		{"simple", "a=1&b=2", nil, []query.Pair{{"a", "1"}, {"b", "2"}}, nil},
		{"semicolon", "a=1;b=2", nil, []query.Pair{{"a", "1"}, {"b", "2"}}, nil},
		{"repeated", "a=1&a=2", nil, []query.Pair{{"a", "1"}, {"a", "2"}}, nil},
		{"plus and escapes", "q=a+b%26c&%C3%BC=%E2%82%AC", nil, []query.Pair{{"q", "a b&c"}, {"ü", "€"}}, nil},
		{"value with equals", "a=b=c", nil, []query.Pair{{"a", "b=c"}}, nil},
		{"blank dropped", "a=&b&c=1", nil, []query.Pair{{"c", "1"}}, nil},
		{
			name: "blank kept",
			in:   "a=&b&c=1",
			opts: &query.ParseOptions{KeepBlankValues: true},
			want: []query.Pair{{"a", ""}, {"b", ""}, {"c", "1"}},
		},
		{"empty fields skipped", "&&a=1&&", nil, []query.Pair{{"a", "1"}}, nil},
		{
			name:    "strict without equals",
			in:      "a=1&b",
			opts:    &query.ParseOptions{Strict: true},
			wantErr: query.ErrMalformedField,
		},
		{
			name:    "strict empty field",
			in:      "a=1&&b=2",
			opts:    &query.ParseOptions{Strict: true},
			wantErr: query.ErrMalformedField,
		},
		{
			name: "strict ok",
			in:   "a=1&b=",
			opts: &query.ParseOptions{Strict: true},
			want: []query.Pair{{"a", "1"}},
		},
		{
			name: "latin-1",
			in:   "n=%FC",
			opts: &query.ParseOptions{Encoding: "latin1"},
			want: []query.Pair{{"n", "ü"}},
		},
		{
			name:    "strict decoding",
			in:      "n=%FF",
			opts:    &query.ParseOptions{Errors: escape.Strict},
			wantErr: escape.ErrDecode,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := query.ParseList(c.in, c.opts)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("query.ParseList(%q, opts) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("query.ParseList(%q, opts) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := query.Parse("a=1&b=2&a=3&A=4", nil)
	if err != nil {
		t.Fatalf("query.Parse(...) error = %v, want nil", err)
	}
	want := query.Values{"a": {"1", "3"}, "b": {"2"}, "A": {"4"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("query.Parse(...) = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}

	if _, err := query.Parse("x", &query.ParseOptions{Strict: true}); !cmp.Equal(err, query.ErrMalformedField, cmpopts.EquateErrors()) {
		t.Errorf("query.Parse(%q, strict) error = %v, want %v", "x", err, query.ErrMalformedField)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pairs   []query.Pair
		opts    *query.EncodeOptions
		want    string
		wantErr error
	}{
		{"empty", nil, nil, "", nil},
		{"plus", []query.Pair{{"q", "a b"}, {"x", "1&2"}}, nil, "q=a+b&x=1%262", nil},
		{"quote", []query.Pair{{"q", "a b"}}, &query.EncodeOptions{QuoteVia: query.QuoteViaQuote}, "q=a%20b", nil},
		{"safe", []query.Pair{{"p", "/a/b"}}, &query.EncodeOptions{Safe: "/"}, "p=/a/b", nil},
		{"utf-8", []query.Pair{{"ü", "€"}}, nil, "%C3%BC=%E2%82%AC", nil},
		{"latin-1", []query.Pair{{"n", "ü"}}, &query.EncodeOptions{Encoding: "latin1"}, "n=%FC", nil},
		{"unencodable", []query.Pair{{"n", "€"}}, &query.EncodeOptions{Encoding: "latin1"}, "", escape.ErrEncode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := query.Encode(c.pairs, c.opts)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("query.Encode(%+v, opts) error = %v, want %v\ndiff (-got +want):\n%v", c.pairs, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("query.Encode(%+v, opts) = %q, want %q", c.pairs, got, c.want)
			}
		})
	}
}

func TestParseEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	pairs := []query.Pair{{"a b", "c&d"}, {"e", "f=g;h"}, {"ü", "100%"}}
	qs, err := query.Encode(pairs, nil)
	if err != nil {
		t.Fatalf("query.Encode(...) error = %v, want nil", err)
	}
	got, err := query.ParseList(qs, nil)
	if err != nil {
		t.Fatalf("query.ParseList(%q, nil) error = %v, want nil", qs, err)
	}
	if diff := cmp.Diff(got, pairs); diff != "" {
		t.Errorf("query.ParseList(query.Encode(pairs)) = %+v, want %+v\ndiff (-got +want):\n%v", got, pairs, diff)
	}
}
