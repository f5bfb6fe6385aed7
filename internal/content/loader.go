package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/yuin/goldmark"
)

// Terminal load failures. Both are reported once, without retry.
var (
	ErrFetchFailed = errors.New("fetch failed")
	ErrParseFailed = errors.New("parse failed")
)

const (
	// DefaultTutorialsPath is where the tutorial catalog lives.
	DefaultTutorialsPath = "data/tutorials.json"
	// TutorialsCollectionID identifies the tutorial catalog.
	TutorialsCollectionID = "tutorials"
	// CoursesGlob matches every course document.
	CoursesGlob = "courses/*.json"

	noContentHTML = "<p>(no content)</p>"
)

// CoursePath returns the document path for a course id.
func CoursePath(courseID string) string {
	return "courses/" + courseID + ".json"
}

// CourseIDFromPath is the inverse of CoursePath.
func CourseIDFromPath(p string) string {
	return strings.TrimSuffix(path.Base(p), ".json")
}

// Loader turns content documents into collections.
type Loader struct {
	src           Source
	md            goldmark.Markdown
	tutorialsPath string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTutorialsPath overrides the tutorial catalog path.
func WithTutorialsPath(p string) LoaderOption {
	return func(l *Loader) {
		if p != "" {
			l.tutorialsPath = p
		}
	}
}

// WithMarkdown overrides the Markdown pipeline used for lessons.
func WithMarkdown(md goldmark.Markdown) LoaderOption {
	return func(l *Loader) {
		l.md = md
	}
}

// NewLoader creates a Loader reading from src.
func NewLoader(src Source, opts ...LoaderOption) *Loader {
	l := &Loader{
		src:           src,
		tutorialsPath: DefaultTutorialsPath,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.md == nil {
		l.md = NewMarkdown()
	}
	return l
}

type courseDoc struct {
	Title    text        `json:"title"`
	Overview text        `json:"overview"`
	Lessons  []lessonDoc `json:"lessons"`
}

type lessonDoc struct {
	ID       text `json:"id"`
	Title    text `json:"title"`
	Content  text `json:"content"`
	Markdown text `json:"markdown"`
}

type tutorialDoc struct {
	ID          text   `json:"id"`
	Title       text   `json:"title"`
	Description text   `json:"description"`
	Explanation text   `json:"explanation"`
	Code        text   `json:"code"`
	Example     text   `json:"example"`
	Tags        []text `json:"tags"`
	Language    text   `json:"language"`
	Level       text   `json:"level"`
}

// LoadCourse fetches and parses the course document for courseID.
func (l *Loader) LoadCourse(ctx context.Context, courseID string) (*Collection, error) {
	p := CoursePath(courseID)
	data, err := l.fetch(ctx, p)
	if err != nil {
		return nil, err
	}

	var doc courseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFailed, p, err)
	}

	c := &Collection{
		ID:       courseID,
		Title:    string(doc.Title),
		Overview: string(doc.Overview),
		Items:    make([]Item, 0, len(doc.Lessons)),
	}
	if c.Title == "" {
		c.Title = courseID
	}
	for _, ld := range doc.Lessons {
		body := string(ld.Content)
		if body == "" && ld.Markdown != "" {
			body, err = renderMarkdown(l.md, string(ld.Markdown))
			if err != nil {
				return nil, fmt.Errorf("%w: %s: lesson %s: %w", ErrParseFailed, p, ld.ID, err)
			}
		}
		if body == "" {
			body = noContentHTML
		}
		c.Items = append(c.Items, Item{ID: string(ld.ID), Title: string(ld.Title), Body: body})
	}
	return c, nil
}

// LoadTutorials fetches and parses the tutorial catalog.
func (l *Loader) LoadTutorials(ctx context.Context) (*Collection, error) {
	data, err := l.fetch(ctx, l.tutorialsPath)
	if err != nil {
		return nil, err
	}

	var docs []tutorialDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFailed, l.tutorialsPath, err)
	}

	c := &Collection{
		ID:    TutorialsCollectionID,
		Title: "Tutorials",
		Items: make([]Item, 0, len(docs)),
	}
	for _, d := range docs {
		c.Items = append(c.Items, tutorialItem(d))
	}
	return c, nil
}

// ListCourses returns the ids of every course document the source exposes.
func (l *Loader) ListCourses(ctx context.Context, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = CoursesGlob
	}
	paths, err := l.src.List(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrFetchFailed, pattern, err)
	}
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		ids = append(ids, CourseIDFromPath(p))
	}
	return ids, nil
}

func (l *Loader) fetch(ctx context.Context, p string) ([]byte, error) {
	if !fs.ValidPath(p) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrFetchFailed, p)
	}
	data, err := l.src.Fetch(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, p, err)
	}
	return data, nil
}

// tutorialItem applies the field fallbacks: description before explanation,
// code before example.
func tutorialItem(d tutorialDoc) Item {
	desc := d.Description
	if desc == "" {
		desc = d.Explanation
	}
	code := d.Code
	if code == "" {
		code = d.Example
	}
	var tags []string
	for _, t := range texts(d.Tags) {
		tags = append(tags, strings.TrimSpace(t))
	}
	return Item{
		ID:          string(d.ID),
		Title:       string(d.Title),
		Description: string(desc),
		Tags:        tags,
		Language:    string(d.Language),
		Code:        string(code),
		Level:       string(d.Level),
	}
}
