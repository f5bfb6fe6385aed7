package highlight

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Chroma delegates to the chroma syntax highlighter, emitting CSS classes
// rather than inline styles.
type Chroma struct {
	Style string
}

func (Chroma) Name() string { return "chroma" }

func (c Chroma) Available(lang string) bool {
	return c.lexer(lang) != nil
}

func (Chroma) lexer(lang string) chroma.Lexer {
	name := NormalizeLanguage(lang)
	if name == "" {
		return nil
	}
	if name == "markup" {
		name = "html"
	}
	return lexers.Get(name)
}

func (c Chroma) Highlight(code, lang string) (template.HTML, error) {
	lexer := c.lexer(lang)
	if lexer == nil {
		return "", fmt.Errorf("no chroma lexer for %q", lang)
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", lang, err)
	}

	style := styles.Get(c.Style)
	formatter := chromahtml.New(chromahtml.WithClasses(true), chromahtml.PreventSurroundingPre(true))
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", lang, err)
	}
	return template.HTML(buf.String()), nil
}

// CSS returns the stylesheet for the classes Highlight emits.
func (c Chroma) CSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(c.Style)); err != nil {
		return "", fmt.Errorf("writing chroma css: %w", err)
	}
	return buf.String(), nil
}
