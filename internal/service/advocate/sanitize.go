package advocate

import (
	"regexp"
	"strings"
	"unicode"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeQuery strips characters that must never reach the store: control
// and non-printable characters, backslashes and tag-like substrings. Whitespace
// runs collapse to a single space and the result is trimmed.
// SanitizeQuery(SanitizeQuery(s)) == SanitizeQuery(s) for every s.
func SanitizeQuery(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case r == '\\':
			return -1
		case unicode.IsControl(r), !unicode.IsPrint(r):
			return -1
		}
		return r
	}, s)

	stripped := tagPattern.ReplaceAllString(mapped, "")
	return strings.Join(strings.Fields(stripped), " ")
}
