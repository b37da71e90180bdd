package cms

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFolder strips combining marks so accented titles produce plain ASCII
// slugs ("Exposé" -> "expose").
var asciiFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GenerateSlug derives a URL-safe identifier from a title: lowercase,
// accent-folded, punctuation dropped, whitespace collapsed to single hyphens.
func GenerateSlug(text string) string {
	folded, _, err := transform.String(asciiFolder, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingHyphen = true
		default:
			// Punctuation is dropped without leaving a hyphen behind.
		}
	}

	return b.String()
}
