package render

import (
	"html"
	"regexp"
	"strings"
)

// TOCEntry is one table-of-contents link.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

var (
	headingPattern = regexp.MustCompile(`(?is)<h([23])\b[^>]*\bid="([^"]+)"[^>]*>(.*?)</h[23]>`)
	tagPattern     = regexp.MustCompile(`(?s)<[^>]*>`)
)

// ExtractTOC collects the h2/h3 headings that carry an id attribute.
func ExtractTOC(body string) []TOCEntry {
	var entries []TOCEntry
	for _, m := range headingPattern.FindAllStringSubmatch(body, -1) {
		text := strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(m[3], "")))
		if text == "" {
			continue
		}
		level := 2
		if m[1] == "3" {
			level = 3
		}
		entries = append(entries, TOCEntry{
			ID:    html.UnescapeString(m[2]),
			Text:  text,
			Level: level,
		})
	}
	return entries
}
