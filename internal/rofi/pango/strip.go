package pango

import "strings"

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&apos;", "\"", "&quot;")
	unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&apos;", "'", "&quot;", "\"")
)

// Escape makes text safe to use as span content or attribute value.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Strip removes markup tags and decodes the predefined entities, leaving the
// text rofi would display. It is what -format p prints for a markup row.
func Strip(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return markup
	}
	var b strings.Builder
	b.Grow(len(markup))
	inTag := false
	var quote byte
	for i := 0; i < len(markup); i++ {
		c := markup[i]
		switch {
		case inTag && quote != 0:
			if c == quote {
				quote = 0
			}
		case inTag && (c == '\'' || c == '"'):
			quote = c
		case inTag && c == '>':
			inTag = false
		case inTag:
		case c == '<':
			inTag = true
		default:
			b.WriteByte(c)
		}
	}
	return unescaper.Replace(b.String())
}
