// Package textutil prepares stored HTML content for API output: entity
// decoding, markup stripping, and preview building.
package textutil

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// DecodeEntities resolves HTML entities ("&amp;", "&#39;", ...) into their
// literal characters. Stored titles and content are entity-encoded.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// StripTags removes all markup from s, keeping only text content. The
// tokenizer tolerates malformed fragments, so legacy content with unclosed
// tags still yields its text.
func StripTags(s string) string {
	z := xhtml.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return b.String()
		case xhtml.TextToken:
			b.Write(z.Text())
		}
	}
}

// Preview builds a listing preview: decode entities, strip markup, truncate
// to the first max runes when max > 0 (max <= 0 disables truncation), and
// append a literal ellipsis. The ellipsis is unconditional even when the
// text was shorter than max — that is the API's documented contract.
func Preview(content string, max int) string {
	text := StripTags(DecodeEntities(content))
	if max > 0 {
		if runes := []rune(text); len(runes) > max {
			text = string(runes[:max])
		}
	}
	return text + "..."
}
