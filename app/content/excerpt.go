package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultExcerptLength is the target length for excerpts derived from the
// article body when the source carries none.
const DefaultExcerptLength = 160

// Excerpt derives a short plain-text summary from an article body. HTML markup
// is stripped, whitespace collapsed, and the text truncated at a word boundary.
func Excerpt(body string, maxLength int) string {
	if body == "" {
		return ""
	}

	plain := body
	if strings.Contains(body, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(body)); err == nil {
			plain = doc.Text()
		}
	}

	plain = strings.Join(strings.Fields(plain), " ")
	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}

	// Cut on a rune boundary, byte slicing would split multibyte characters
	truncated := string(runes[:maxLength])
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}

	return truncated + "..."
}
