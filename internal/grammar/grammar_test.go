package grammar_test

import (
	"testing"

	"github.com/ghettovoice/urisplit/internal/grammar"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"svn+ssh", true},
		{"a.b-c", true},
		{"1abc", true},
		{"ht tp", false},
		{"http/", false},
		{"путь", false}, //nolint:gosmopolitan
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.str); got != c.want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestIsAlwaysSafe(t *testing.T) {
	t.Parallel()

	for c := range 256 {
		want := c < 128 && (c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '_' || c == '.' || c == '-' || c == '~')
		if got := grammar.IsAlwaysSafe(byte(c)); got != want {
			t.Errorf("grammar.IsAlwaysSafe(%#x) = %v, want %v", c, got, want)
		}
	}
}

func TestUnhexPair(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hi, lo byte
		want   byte
		ok     bool
	}{
		{'2', '0', ' ', true},
		{'e', '9', 0xe9, true},
		{'E', '9', 0xe9, true},
		{'f', 'F', 0xff, true},
		{'0', '0', 0, true},
		{'g', '0', 0, false},
		{'0', 'x', 0, false},
		{'%', '2', 0, false},
	}

	for _, c := range cases {
		got, ok := grammar.UnhexPair(c.hi, c.lo)
		if got != c.want || ok != c.ok {
			t.Errorf("grammar.UnhexPair(%q, %q) = (%#x, %v), want (%#x, %v)", c.hi, c.lo, got, ok, c.want, c.ok)
		}
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		c    byte
		want string
	}{
		{' ', "%20"},
		{'?', "%3F"},
		{0, "%00"},
		{0xff, "%FF"},
		{0xab, "%AB"},
	}

	for _, c := range cases {
		if got := grammar.Percent(c.c); got != c.want {
			t.Errorf("grammar.Percent(%#x) = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestHasUnbalancedBrackets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"example.com", false},
		{"[::1]:80", false},
		{"[::1", true},
		{"::1]", true},
		{"]::1[", false},
	}

	for _, c := range cases {
		if got := grammar.HasUnbalancedBrackets(c.str); got != c.want {
			t.Errorf("grammar.HasUnbalancedBrackets(%q) = %v, want %v", c.str, got, c.want)
		}
	}
}
