// Package render maps page state to HTML. Every function here is pure:
// rendering the same state twice produces the same markup.
//
// Text from content files is always escaped by html/template. The only
// field inserted verbatim is a lesson body, which is authored markup.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/learnsite/internal/catalog"
	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/highlight"
	"github.com/ziadkadry99/learnsite/internal/nav"
	"github.com/ziadkadry99/learnsite/internal/progress"
)

// DefaultSiteName is shown in the header and page titles.
const DefaultSiteName = "learnsite"

// Renderer holds the parsed templates and the highlighters to try for code.
type Renderer struct {
	siteName     string
	highlighters []highlight.Highlighter
	fragments    *template.Template
	pages        map[string]*template.Template
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSiteName sets the site name shown in the header.
func WithSiteName(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.siteName = name
		}
	}
}

// WithHighlighters sets the highlighters tried, in order, before the
// builtin fallback.
func WithHighlighters(hs ...highlight.Highlighter) Option {
	return func(r *Renderer) {
		r.highlighters = hs
	}
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// New parses all templates.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{siteName: DefaultSiteName}
	for _, opt := range opts {
		opt(r)
	}

	frag, err := template.New("fragments").Funcs(funcs).Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}
	r.fragments = frag

	layout, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	r.pages = make(map[string]*template.Template)
	for name, src := range map[string]string{
		"home":            homeTemplate,
		"lesson":          lessonTemplate,
		"tutorials":       tutorialListTemplate,
		"tutorial-groups": tutorialGroupsTemplate,
		"tutorial":        tutorialDetailTemplate,
	} {
		base, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		t, err := base.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

type sidebarEntry struct {
	Title  string
	URL    string
	Class  string
	Active bool
}

// Sidebar renders the lesson list with "active" and "completed" markers.
func (r *Renderer) Sidebar(links Links, courseID string, items []content.Item, currentID string, done progress.Set) (template.HTML, error) {
	entries := make([]sidebarEntry, 0, len(items))
	for _, it := range items {
		var classes []string
		active := it.ID == currentID
		if active {
			classes = append(classes, "active")
		}
		if done.Has(it.ID) {
			classes = append(classes, "completed")
		}
		entries = append(entries, sidebarEntry{
			Title:  it.Title,
			URL:    links.Lesson(courseID, it.ID),
			Class:  strings.Join(classes, " "),
			Active: active,
		})
	}
	return r.fragment("sidebar", entries)
}

// PrevNext renders the previous/next controls. A control whose target is
// none is left out of the markup entirely.
func (r *Renderer) PrevNext(links Links, courseID string, sel nav.Selection) (template.HTML, error) {
	var data struct{ Prev, Next string }
	if sel.HasPrev {
		data.Prev = links.Lesson(courseID, sel.PrevID)
	}
	if sel.HasNext {
		data.Next = links.Lesson(courseID, sel.NextID)
	}
	return r.fragment("prevnext", data)
}

// CompletionToggleLabel is the toggle text for a completion state.
func CompletionToggleLabel(done bool) string {
	if done {
		return "Completed"
	}
	return "Mark complete"
}

// CompletionToggle renders the completion button reflecting done.
func (r *Renderer) CompletionToggle(links Links, courseID, itemID string, done bool) (template.HTML, error) {
	action := links.ToggleCompletion(courseID, itemID)
	if action == "" {
		return "", nil
	}
	return r.fragment("toggle", struct {
		Action  string
		Label   string
		Pressed bool
	}{
		Action:  action,
		Label:   CompletionToggleLabel(done),
		Pressed: done,
	})
}

// TOC renders table-of-contents links; no entries renders nothing.
func (r *Renderer) TOC(entries []TOCEntry) (template.HTML, error) {
	if len(entries) == 0 {
		return "", nil
	}
	return r.fragment("toc", entries)
}

type cardData struct {
	URL         string
	Title       string
	Description string
	Level       string
	Tags        []string
	Code        string
}

func cardFor(links Links, it content.Item) cardData {
	return cardData{
		URL:         links.Tutorial(it.ID),
		Title:       it.Title,
		Description: it.Description,
		Level:       it.Level,
		Tags:        it.DisplayTags(),
		Code:        it.Code,
	}
}

// TutorialCards renders tutorial cards, or the empty-state message.
func (r *Renderer) TutorialCards(links Links, items []content.Item) (template.HTML, error) {
	cards := make([]cardData, 0, len(items))
	for _, it := range items {
		cards = append(cards, cardFor(links, it))
	}
	return r.fragment("cardlist", cards)
}

// TutorialGroups renders one section per group, in the order given.
func (r *Renderer) TutorialGroups(links Links, groups []catalog.Group) (template.HTML, error) {
	type groupData struct {
		Label string
		Cards []cardData
	}
	data := make([]groupData, 0, len(groups))
	for _, g := range groups {
		gd := groupData{Label: g.Label}
		for _, it := range g.Items {
			gd.Cards = append(gd.Cards, cardFor(links, it))
		}
		data = append(data, gd)
	}
	return r.fragment("groups", data)
}

// CodeLanguage prefers the explicit language and falls back to the first tag.
func CodeLanguage(it content.Item) string {
	if it.Language != "" {
		return it.Language
	}
	if len(it.Tags) > 0 {
		return it.Tags[0]
	}
	return ""
}

// Code highlights an item's code sample. It returns the markup, the
// language class for the code element and the highlighter used.
func (r *Renderer) Code(it content.Item) (html template.HTML, class, highlighter string) {
	lang := CodeLanguage(it)
	out, name := highlight.Render(it.Code, lang, r.highlighters...)
	return out, highlight.ClassFor(lang), name
}
