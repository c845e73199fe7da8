package skill

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a skill label for equality comparison: surrounding
// whitespace is trimmed, diacritics are stripped and the result is
// lowercased. Two labels name the same skill iff their normalized forms are
// equal; there is no fuzzy matching.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, raw); err == nil {
		raw = out
	}

	return strings.ToLower(raw)
}
