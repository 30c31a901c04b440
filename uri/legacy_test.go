package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urisplit/uri"
)

type split3 struct {
	A, B string
	OK   bool
}

func TestLegacySplitters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func(string) (string, string, bool)
		in   string
		want split3
	}{
		{"SplitType", uri.SplitType, "type:opaque", split3{"type", "opaque", true}},
		{"SplitType", uri.SplitType, "opaque", split3{"", "opaque", false}},
		{"SplitHost", uri.SplitHost, "//host:80/path", split3{"host:80", "/path", true}},
		{"SplitHost", uri.SplitHost, "//host", split3{"host", "", true}},
		{"SplitHost", uri.SplitHost, "/path", split3{"", "/path", false}},
		{"SplitHost", uri.SplitHost, "", split3{"", "", false}},
		{"SplitUser", uri.SplitUser, "user:pw@host:80", split3{"user:pw", "host:80", true}},
		{"SplitUser", uri.SplitUser, "host", split3{"", "host", false}},
		{"SplitPasswd", uri.SplitPasswd, "user:pw", split3{"user", "pw", true}},
		{"SplitPasswd", uri.SplitPasswd, "user", split3{"user", "", false}},
		{"SplitPort", uri.SplitPort, "host:80", split3{"host", "80", true}},
		{"SplitPort", uri.SplitPort, "host:", split3{"host", "", true}},
		{"SplitPort", uri.SplitPort, "host", split3{"host", "", false}},
		{"SplitPort", uri.SplitPort, "[::1]:80", split3{"[::1]", "80", true}},
		{"SplitPort", uri.SplitPort, "[::1]", split3{"[::1]", "", false}},
		{"SplitQuery", uri.SplitQuery, "/path?a=1?b", split3{"/path", "a=1?b", true}},
		{"SplitQuery", uri.SplitQuery, "/path", split3{"/path", "", false}},
		{"SplitTag", uri.SplitTag, "/path#tag#x", split3{"/path", "tag#x", true}},
		{"SplitTag", uri.SplitTag, "/path", split3{"/path", "", false}},
		{"SplitValue", uri.SplitValue, "attr=v=1", split3{"attr", "v=1", true}},
		{"SplitValue", uri.SplitValue, "attr", split3{"attr", "", false}},
	}

	for _, c := range cases {
		t.Run(c.name+"/"+c.in, func(t *testing.T) {
			t.Parallel()

			a, b, ok := c.fn(c.in)
			got := split3{a, b, ok}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.%s(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.name, c.in, got, c.want, diff)
			}
		})
	}
}

func TestSplitNPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		wantHost string
		wantPort int
		wantOK   bool
	}{
		{"host:8080", "host", 8080, true},
		{"host", "host", -1, true},
		{"host:", "host", 0, false},
		{"host:70000", "host", 0, false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			host, port, ok := uri.SplitNPort(c.in, -1)
			if host != c.wantHost || port != c.wantPort || ok != c.wantOK {
				t.Errorf("uri.SplitNPort(%q, -1) = (%q, %d, %v), want (%q, %d, %v)",
					c.in, host, port, ok, c.wantHost, c.wantPort, c.wantOK)
			}
		})
	}
}

func TestSplitAttr(t *testing.T) {
	t.Parallel()

	path, attrs := uri.SplitAttr("/path;a=1;b=2")
	if path != "/path" {
		t.Errorf("uri.SplitAttr(...) path = %q, want %q", path, "/path")
	}
	if diff := cmp.Diff(attrs, []string{"a=1", "b=2"}); diff != "" {
		t.Errorf("uri.SplitAttr(...) attrs = %q, want %q\ndiff (-got +want):\n%v", attrs, []string{"a=1", "b=2"}, diff)
	}

	path, attrs = uri.SplitAttr("/path")
	if path != "/path" || len(attrs) != 0 {
		t.Errorf("uri.SplitAttr(%q) = (%q, %q), want (%q, [])", "/path", path, attrs, "/path")
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"<URL:type://host/path>", "type://host/path"},
		{"  < URL: http://a/b >  ", "http://a/b"},
		{"<http://a/b>", "http://a/b"},
		{"URL:http://a", "http://a"},
		{"http://a", "http://a"},
		{"<", "<"},
	}

	for _, c := range cases {
		if got := uri.Unwrap(c.in); got != c.want {
			t.Errorf("uri.Unwrap(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
