package escape_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urisplit/escape"
	"github.com/ghettovoice/urisplit/internal/log"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		safe    string
		opts    *escape.Options
		want    string
		wantErr error
	}{
		{"space and question mark", "abc def?", "", nil, "abc%20def%3F", nil},
		{"empty", "", "/", nil, "", nil},
		{"all safe", "abc-_.~/x", "/", nil, "abc-_.~/x", nil},
		{"default safe", "/a b/", escape.DefaultSafe, nil, "/a%20b/", nil},
		{"slash quoted", "/a/", "", nil, "%2Fa%2F", nil},
		{"reserved", ":/?#[]@!$&'()*+,;=", "", nil, "%3A%2F%3F%23%5B%5D%40%21%24%26%27%28%29%2A%2B%2C%3B%3D", nil},
		{"reserved safe", "a:b@c", ":@", nil, "a:b@c", nil},
		{"non ascii safe ignored", "é", "é", nil, "%C3%A9", nil},
		{"utf-8", "ü€", "", nil, "%C3%BC%E2%82%AC", nil},
		{"latin-1", "ü", "", &escape.Options{Encoding: "latin-1"}, "%FC", nil},
		{"iso-8859-1", "ü", "", &escape.Options{Encoding: "ISO-8859-1"}, "%FC", nil},
		{"windows-1251", "Жж", "", &escape.Options{Encoding: "windows-1251"}, "%C6%E6", nil},
		{"strict unencodable", "a€b", "", &escape.Options{Encoding: "latin1"}, "", escape.ErrEncode},
		{"replace unencodable", "a€b", "", &escape.Options{Encoding: "latin1", Errors: escape.Replace}, "a%3Fb", nil},
		{"ignore unencodable", "a€b", "", &escape.Options{Encoding: "latin1", Errors: escape.Ignore}, "ab", nil},
		{"invalid utf-8 strict", "a\xffb", "", nil, "", escape.ErrEncode},
		{"invalid utf-8 replace", "a\xffb", "", &escape.Options{Errors: escape.Replace}, "a%3Fb", nil},
		{"unknown encoding", "a", "", &escape.Options{Encoding: "klingon"}, "", escape.ErrUnknownEncoding},
		{"unknown policy", "a", "", &escape.Options{Errors: "loud"}, "", escape.ErrUnsupportedArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := escape.Quote(c.in, c.safe, c.opts)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("escape.Quote(%q, %q, opts) error = %v, want %v\ndiff (-got +want):\n%v", c.in, c.safe, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("escape.Quote(%q, %q, opts) = %q, want %q", c.in, c.safe, got, c.want)
			}
		})
	}
}

func TestQuote_Bytes(t *testing.T) {
	t.Parallel()

	got, err := escape.Quote([]byte("a b\x00\xff"), "", nil)
	if err != nil {
		t.Fatalf("escape.Quote(bytes, \"\", nil) error = %v, want nil", err)
	}
	if want := "a%20b%00%FF"; got != want {
		t.Errorf("escape.Quote(bytes, \"\", nil) = %q, want %q", got, want)
	}

	for _, opts := range []*escape.Options{{Encoding: "utf-8"}, {Errors: escape.Strict}} {
		if _, err := escape.Quote([]byte("a"), "", opts); !cmp.Equal(err, escape.ErrUnsupportedArgument, cmpopts.EquateErrors()) {
			t.Errorf("escape.Quote(bytes, \"\", %+v) error = %v, want %v", opts, err, escape.ErrUnsupportedArgument)
		}
	}
	// empty options are no options
	if _, err := escape.Quote([]byte("a"), "", &escape.Options{}); err != nil {
		t.Errorf("escape.Quote(bytes, \"\", &Options{}) error = %v, want nil", err)
	}
}

func TestQuoteFromBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   []byte
		safe string
		want string
	}{
		{nil, "/", ""},
		{[]byte("abc def\x3f"), "/", "abc%20def%3F"},
		{[]byte("/a~b"), "/", "/a~b"},
		{[]byte{0x80, 0xc3, 0xa9}, "é", "%80%C3%A9"},
	}

	for _, c := range cases {
		if got := escape.QuoteFromBytes(c.in, c.safe); got != c.want {
			t.Errorf("escape.QuoteFromBytes(%q, %q) = %q, want %q", c.in, c.safe, got, c.want)
		}
	}
}

func TestQuotePlus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, safe, want string
	}{
		{"a b+c", "", "a+b%2Bc"},
		{"a b+c", "+", "a+b+c"},
		{"a/b", "", "a%2Fb"},
		{"no-space", "", "no-space"},
		{"  ", "", "++"},
	}

	for _, c := range cases {
		got, err := escape.QuotePlus(c.in, c.safe, nil)
		if err != nil {
			t.Fatalf("escape.QuotePlus(%q, %q, nil) error = %v, want nil", c.in, c.safe, err)
		}
		if got != c.want {
			t.Errorf("escape.QuotePlus(%q, %q, nil) = %q, want %q", c.in, c.safe, got, c.want)
		}
	}

	got, err := escape.QuotePlus([]byte("a b"), "", nil)
	if err != nil {
		t.Fatalf("escape.QuotePlus(bytes, \"\", nil) error = %v, want nil", err)
	}
	if want := "a+b"; got != want {
		t.Errorf("escape.QuotePlus(bytes, \"\", nil) = %q, want %q", got, want)
	}
}

func TestRegistry_Bounded(t *testing.T) {
	t.Parallel()

	r := escape.NewRegistry(&escape.RegistryOptions{MaxTables: 4, Logger: log.Noop})
	for i := range 10 {
		safe := string(rune('a' + i))
		if got := r.QuoteFromBytes([]byte("?"+safe), safe); got != "%3F"+safe {
			t.Errorf("r.QuoteFromBytes(...) = %q, want %q", got, "%3F"+safe)
		}
	}
	if got := r.Len(); got != 4 {
		t.Errorf("r.Len() = %d, want 4", got)
	}

	// safe sets equal after normalization share one table
	r.Clear()
	t1 := r.Table("/:")
	t2 := r.Table(":/:é")
	if t1 != t2 {
		t.Errorf("r.Table(%q) != r.Table(%q), want same table", "/:", ":/:é")
	}
	if got := r.Len(); got != 1 {
		t.Errorf("r.Len() = %d, want 1", got)
	}
	if got, want := t1['/'], "/"; got != want {
		t.Errorf("t1['/'] = %q, want %q", got, want)
	}
	if got, want := t1[' '], "%20"; got != want {
		t.Errorf("t1[' '] = %q, want %q", got, want)
	}
	if got, want := t1[0xe9], "%E9"; got != want {
		t.Errorf("t1[0xe9] = %q, want %q", got, want)
	}
}

func TestRegistry_FastPathSkipsTables(t *testing.T) {
	t.Parallel()

	r := escape.NewRegistry(nil)
	if got := r.QuoteFromBytes([]byte("plain/path"), "/"); got != "plain/path" {
		t.Errorf("r.QuoteFromBytes(...) = %q, want %q", got, "plain/path")
	}
	if got := r.Len(); got != 0 {
		t.Errorf("r.Len() = %d, want 0", got)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := escape.NewRegistry(&escape.RegistryOptions{MaxTables: 3, Logger: log.Noop})
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Go(func() {
			for i := range 100 {
				safe := fmt.Sprint(i % 5)
				in := fmt.Sprintf("%d %d", g, i%5)
				got, err := r.Quote(in, safe, nil)
				if err != nil {
					t.Errorf("r.Quote(%q, %q, nil) error = %v, want nil", in, safe, err)
					return
				}
				if want := fmt.Sprintf("%d%%20%d", g, i%5); got != want {
					t.Errorf("r.Quote(%q, %q, nil) = %q, want %q", in, safe, got, want)
					return
				}
			}
		})
	}
	wg.Wait()

	if got := r.Len(); got > 3 {
		t.Errorf("r.Len() = %d, want <= 3", got)
	}
}

func BenchmarkQuote(b *testing.B) {
	for b.Loop() {
		_, _ = escape.Quote("/some path/with spaces & reserved?chars", escape.DefaultSafe, nil)
	}
}
