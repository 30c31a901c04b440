package uri

import (
	"strconv"
	"strings"
)

// userinfo returns the part of authority before the last '@'.
func userinfo(authority string) (string, bool) {
	i := strings.LastIndexByte(authority, '@')
	if i < 0 {
		return "", false
	}
	return authority[:i], true
}

// hostport returns the part of authority after the last '@'.
func hostport(authority string) string {
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		return authority[i+1:]
	}
	return authority
}

// Username returns the user name of the authority, that is the user info up to the first ':'.
// ok is false when the authority has no user info.
func Username(authority string) (string, bool) {
	ui, ok := userinfo(authority)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(ui, ":")
	return name, true
}

// Password returns the part of the user info after the first ':'.
// ok is false when there is no user info or it has no ':'.
func Password(authority string) (string, bool) {
	ui, ok := userinfo(authority)
	if !ok {
		return "", false
	}
	_, pass, found := strings.Cut(ui, ":")
	return pass, found
}

// Hostname returns the host of the authority without user info and port.
// Brackets around an IP literal are removed. The case of the host is kept as is.
// ok is false when the host is empty.
func Hostname(authority string) (string, bool) {
	hp := hostport(authority)
	var host string
	if strings.HasPrefix(hp, "[") {
		host, _, _ = strings.Cut(hp[1:], "]")
	} else {
		host, _, _ = strings.Cut(hp, ":")
	}
	return host, host != ""
}

// Port returns the decimal port of the authority.
// ok is false when there is no port, or it is not a number in range 0-65535.
func Port(authority string) (int, bool) {
	hp := hostport(authority)
	if strings.HasPrefix(hp, "[") {
		_, rest, found := strings.Cut(hp, "]")
		if !found {
			return 0, false
		}
		hp = rest
	}
	_, p, found := strings.Cut(hp, ":")
	if !found || p == "" {
		return 0, false
	}
	for i := range len(p) {
		if p[i] < '0' || p[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(p, 10, 16)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
