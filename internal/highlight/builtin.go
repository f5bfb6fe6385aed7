package highlight

import (
	"html/template"
	"regexp"
	"strings"
)

var builtinKeywords = []string{
	"function", "return", "const", "let", "var", "if", "else", "for", "while",
	"break", "class", "new", "import", "from", "export", "try", "catch",
	"switch", "case",
}

// tokenPattern matches strings, then numbers, then keywords, in one pass so
// that inserted markup is never re-scanned.
var tokenPattern = regexp.MustCompile(
	`("[^"\n]*"|'[^'\n]*'|` + "`[^`]*`" + `)|\b(\d+)\b|\b(` + strings.Join(builtinKeywords, "|") + `)\b`,
)

// Builtin is a minimal keyword/string/number highlighter.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

func (Builtin) Available(string) bool { return true }

func (Builtin) Highlight(code, _ string) (template.HTML, error) {
	var b strings.Builder
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(code, -1) {
		b.WriteString(template.HTMLEscapeString(code[last:m[0]]))
		kind := "keyword"
		switch {
		case m[2] >= 0:
			kind = "string"
		case m[4] >= 0:
			kind = "number"
		}
		b.WriteString(`<span class="token ` + kind + `">`)
		b.WriteString(template.HTMLEscapeString(code[m[0]:m[1]]))
		b.WriteString(`</span>`)
		last = m[1]
	}
	b.WriteString(template.HTMLEscapeString(code[last:]))
	return template.HTML(b.String()), nil
}
