package pure

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MakeReadableURLSafe turns s into a lowercase slug: accents are folded,
// every run of characters outside [a-z0-9] becomes a single '-', and leading
// or trailing dashes are trimmed.
func MakeReadableURLSafe(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range folded {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// ReplaceArray replaces every occurrence of find[i] in s with replace[i].
// A single replacement is used for all finds; no replacement deletes them.
func ReplaceArray(s string, find []string, replace ...string) string {
	for i, f := range find {
		if f == "" {
			continue
		}
		var r string
		switch {
		case len(replace) == 1:
			r = replace[0]
		case i < len(replace):
			r = replace[i]
		}
		s = strings.ReplaceAll(s, f, r)
	}
	return s
}
