// Package highlight renders code samples as highlighted HTML. A delegate
// highlighter (chroma) is used when it knows the language; otherwise the
// small builtin highlighter takes over.
package highlight

import (
	"html/template"
	"strings"
)

// Highlighter turns source code into safe HTML for a <code> element.
type Highlighter interface {
	Name() string
	// Available reports whether the highlighter can handle lang.
	Available(lang string) bool
	Highlight(code, lang string) (template.HTML, error)
}

// languageAliases normalizes common language labels to highlighter names.
var languageAliases = map[string]string{
	"js":     "javascript",
	"c++":    "cpp",
	"html":   "markup",
	"markup": "markup",
}

// NormalizeLanguage lowercases lang and applies the alias table.
func NormalizeLanguage(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := languageAliases[l]; ok {
		return alias
	}
	return l
}

// ClassFor returns the language class set on the code element.
func ClassFor(lang string) string {
	return "language-" + NormalizeLanguage(lang)
}

// Select returns the first candidate available for lang, or the builtin
// highlighter when none is.
func Select(lang string, candidates ...Highlighter) Highlighter {
	for _, h := range candidates {
		if h != nil && h.Available(lang) {
			return h
		}
	}
	return Builtin{}
}

// Render highlights code with the selected highlighter, falling back to
// plain escaped text if highlighting fails. It also returns the name of
// the highlighter that was selected.
func Render(code, lang string, candidates ...Highlighter) (template.HTML, string) {
	h := Select(lang, candidates...)
	out, err := h.Highlight(code, lang)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(code)), h.Name()
	}
	return out, h.Name()
}
