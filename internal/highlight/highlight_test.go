package highlight

import (
	"strings"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct{ in, want string }{
		{"js", "javascript"},
		{"JS", "javascript"},
		{"C++", "cpp"},
		{"HTML", "markup"},
		{"markup", "markup"},
		{"Python", "python"},
		{" CSS ", "css"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if ClassFor("js") != "language-javascript" {
		t.Errorf("ClassFor(js) = %q", ClassFor("js"))
	}
}

func TestBuiltinHighlight(t *testing.T) {
	out, err := Builtin{}.Highlight(`const x = "a<b"; return 42;`, "javascript")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		`<span class="token keyword">const</span>`,
		`<span class="token string">&#34;a&lt;b&#34;</span>`,
		`<span class="token number">42</span>`,
		`<span class="token keyword">return</span>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "<b") {
		t.Errorf("raw markup leaked: %s", s)
	}
}

func TestBuiltinDoesNotRescanMarkup(t *testing.T) {
	out, _ := Builtin{}.Highlight(`class A {}`, "")
	if strings.Count(string(out), "<span") != 1 {
		t.Errorf("expected exactly one span, got %s", out)
	}
}

func TestSelectFallsBackToBuiltin(t *testing.T) {
	c := Chroma{Style: "github"}
	if got := Select("python", c); got.Name() != "chroma" {
		t.Errorf("python selected %s, want chroma", got.Name())
	}
	if got := Select("no-such-language", c); got.Name() != "builtin" {
		t.Errorf("unknown language selected %s, want builtin", got.Name())
	}
	if got := Select("python"); got.Name() != "builtin" {
		t.Errorf("no candidates selected %s, want builtin", got.Name())
	}
}

func TestChromaHighlight(t *testing.T) {
	out, err := Chroma{Style: "github"}.Highlight("print('<hi>')", "python")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<span") {
		t.Errorf("expected class spans, got %s", s)
	}
	if strings.Contains(s, "<hi>") {
		t.Errorf("code not escaped: %s", s)
	}
	if strings.Contains(s, "<pre") {
		t.Errorf("surrounding pre should be suppressed: %s", s)
	}
}

func TestRenderEscapesOnFailure(t *testing.T) {
	out, name := Render("<x>", "no-such-language", Chroma{})
	if strings.Contains(string(out), "<x>") {
		t.Errorf("Render leaked markup: %s", out)
	}
	if name != "builtin" {
		t.Errorf("Render used %s, want builtin", name)
	}
}

func TestChromaCSS(t *testing.T) {
	css, err := Chroma{Style: "github"}.CSS()
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("expected .chroma rules, got %q", css[:min(len(css), 80)])
	}
}
