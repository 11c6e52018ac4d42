package pure

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var absoluteURL = regexp.MustCompile(`(?i)^(?:[a-z][a-z0-9+.\-]*:)?//`)

// ConcatURLs joins URL segments with exactly one '/' between them.
// Empty segments are skipped and trailing slashes are removed.
func ConcatURLs(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(segments) > 0 {
			p = strings.TrimLeft(p, "/")
		}
		p = strings.TrimRight(p, "/")
		if p == "" {
			continue
		}
		segments = append(segments, p)
	}
	return strings.Join(segments, "/")
}

// URLIsAbsolute reports whether u names a scheme and host ("https://x")
// or is protocol-relative ("//x").
func URLIsAbsolute(u string) bool {
	return absoluteURL.MatchString(u)
}

// URLIsLocal reports whether u points at the same origin as loc.
// Relative URLs are always local.
func URLIsLocal(loc *url.URL, u string) bool {
	if !URLIsAbsolute(u) {
		return true
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	if parsed.Scheme != "" && !strings.EqualFold(parsed.Scheme, loc.Scheme) {
		return false
	}
	return strings.EqualFold(parsed.Host, loc.Host)
}

// ObjectToQueryString encodes obj as "a=1&b=2", keys sorted. Nil values are
// skipped and slice values repeat their key.
func ObjectToQueryString(obj map[string]any) string {
	values := url.Values{}
	for k, v := range obj {
		switch v := v.(type) {
		case nil:
		case []string:
			for _, e := range v {
				values.Add(k, e)
			}
		case []any:
			for _, e := range v {
				if e != nil {
					values.Add(k, fmt.Sprint(e))
				}
			}
		default:
			values.Add(k, fmt.Sprint(v))
		}
	}
	return values.Encode()
}

// QueryString looks up name in a query string such as location.search.
// The first occurrence wins.
func QueryString(search, name string) (string, bool) {
	v, ok := QueryStringAsObject(search)[name]
	return v, ok
}

// QueryStringAsObject decodes a query string (leading '?' optional) into a
// map. '+' decodes to a space, keys without '=' map to "" and the first
// occurrence of a key wins.
func QueryStringAsObject(search string) map[string]string {
	out := make(map[string]string)
	search = strings.TrimPrefix(search, "?")
	for _, pair := range strings.Split(search, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		k = unescapeQuery(k)
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = unescapeQuery(v)
	}
	return out
}

func unescapeQuery(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return strings.ReplaceAll(s, "+", " ")
}
