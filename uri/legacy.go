package uri

import "strings"

// SplitType cuts url at the first ':' into a scheme and the rest.
// ok is false when url has no ':'.
func SplitType(url string) (scheme, rest string, ok bool) {
	scheme, rest, ok = strings.Cut(url, ":")
	if !ok {
		return "", url, false
	}
	return scheme, rest, true
}

// SplitHost cuts "//host/path" into "host" and "/path".
// ok is false when url does not start with "//".
func SplitHost(url string) (host, path string, ok bool) {
	if !strings.HasPrefix(url, "//") {
		return "", url, false
	}
	rest := url[2:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i], rest[i:], true
	}
	return rest, "", true
}

// SplitUser cuts "user@host" at the first '@'.
// ok is false when host has no '@'.
func SplitUser(host string) (user, hostport string, ok bool) {
	user, hostport, ok = strings.Cut(host, "@")
	if !ok {
		return "", host, false
	}
	return user, hostport, true
}

// SplitPasswd cuts "user:passwd" at the first ':'.
// ok is false when user has no ':'.
func SplitPasswd(user string) (name, passwd string, ok bool) {
	name, passwd, ok = strings.Cut(user, ":")
	if !ok {
		return user, "", false
	}
	return name, passwd, true
}

// SplitPort cuts "host:port" at the last ':' when only digits follow it.
// The port may be empty. ok is false when there is no such port.
func SplitPort(hostport string) (host, port string, ok bool) {
	i := strings.LastIndexByte(hostport, ':')
	if i < 0 {
		return hostport, "", false
	}
	for j := i + 1; j < len(hostport); j++ {
		if hostport[j] < '0' || hostport[j] > '9' {
			return hostport, "", false
		}
	}
	return hostport[:i], hostport[i+1:], true
}

// SplitNPort is like [SplitPort] but converts the port to a number.
// A missing port yields defPort. ok is false when the port is present but not a number.
func SplitNPort(hostport string, defPort int) (host string, port int, ok bool) {
	host, p, found := SplitPort(hostport)
	if !found {
		return host, defPort, true
	}
	if p == "" {
		return host, 0, false
	}
	n := 0
	for i := range len(p) {
		n = n*10 + int(p[i]-'0')
		if n > 65535 {
			return host, 0, false
		}
	}
	return host, n, true
}

// SplitQuery cuts "path?query" at the first '?'.
func SplitQuery(url string) (path, query string, ok bool) {
	path, query, ok = strings.Cut(url, "?")
	if !ok {
		return url, "", false
	}
	return path, query, true
}

// SplitTag cuts "path#tag" at the first '#'.
func SplitTag(url string) (path, tag string, ok bool) {
	path, tag, ok = strings.Cut(url, "#")
	if !ok {
		return url, "", false
	}
	return path, tag, true
}

// SplitAttr cuts "path;attr1;attr2" into the path and its attributes.
func SplitAttr(url string) (path string, attrs []string) {
	parts := strings.Split(url, ";")
	return parts[0], parts[1:]
}

// SplitValue cuts "attr=value" at the first '='.
func SplitValue(attr string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(attr, "=")
	if !ok {
		return attr, "", false
	}
	return name, value, true
}

// Unwrap strips surrounding whitespace, angle brackets and a "URL:" prefix:
// "<URL:type://host/path>" becomes "type://host/path".
func Unwrap(url string) string {
	url = strings.TrimSpace(url)
	if len(url) >= 2 && url[0] == '<' && url[len(url)-1] == '>' {
		url = strings.TrimSpace(url[1 : len(url)-1])
	}
	if len(url) >= 4 && url[:4] == "URL:" {
		url = strings.TrimSpace(url[4:])
	}
	return url
}
