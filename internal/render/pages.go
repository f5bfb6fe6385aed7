package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/learnsite/internal/catalog"
	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/nav"
	"github.com/ziadkadry99/learnsite/internal/progress"
	"github.com/ziadkadry99/learnsite/internal/theme"
	"github.com/ziadkadry99/learnsite/internal/ui"
)

// Asset names served under the static prefix.
const (
	StyleAsset  = "style.css"
	ScriptAsset = "app.js"
)

// Page-level messages.
const (
	CourseFailedTitle    = "Failed to load course"
	TutorialsFailedText  = "Failed to load tutorials."
	DetailFailedTitle    = "Failed to load"
	DetailFailedText     = "Could not fetch tutorial data."
	DetailNotFoundTitle  = "Not found"
	noContentPlaceholder = "<p>(no content)</p>"
)

// Chrome is the state shared by every page: where links point and the
// header and script settings.
type Chrome struct {
	Links              Links
	Theme              theme.Theme
	ScrollOffset       int
	ScrollTopThreshold int
}

func (c Chrome) links() Links {
	if c.Links == nil {
		return ServerLinks{}
	}
	return c.Links
}

type layoutData struct {
	Title              string
	SiteName           string
	StyleURL           string
	ScriptURL          string
	HomeURL            string
	TutorialsURL       string
	GroupsURL          string
	ThemeAction        string
	Theme              ui.ThemeToggle
	ScrollOffset       int
	ScrollTopThreshold int
	ScrollTopShown     bool
	Page               any
}

func (r *Renderer) page(w io.Writer, name, title string, c Chrome, page any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	links := c.links()
	offset := c.ScrollOffset
	if offset <= 0 {
		offset = ui.DefaultScrollOffset
	}
	threshold := c.ScrollTopThreshold
	if threshold <= 0 {
		threshold = ui.DefaultScrollTopThreshold
	}
	data := layoutData{
		Title:              title,
		SiteName:           r.siteName,
		StyleURL:           links.Asset(StyleAsset),
		ScriptURL:          links.Asset(ScriptAsset),
		HomeURL:            links.Home(),
		TutorialsURL:       links.Tutorials(),
		GroupsURL:          links.TutorialGroups(),
		ThemeAction:        links.ToggleTheme(),
		Theme:              ui.ThemeToggleState(c.Theme),
		ScrollOffset:       offset,
		ScrollTopThreshold: threshold,
		// Pages load scrolled to the top; app.js takes over from there.
		ScrollTopShown: ui.ScrollTopVisible(0, float64(threshold)),
		Page:           page,
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering %s page: %w", name, err)
	}
	return nil
}

// HomeView lists the available courses.
type HomeView struct {
	Chrome
	Courses []string
}

// Home renders the landing page.
func (r *Renderer) Home(w io.Writer, v HomeView) error {
	type courseLink struct{ ID, URL string }
	links := v.links()
	page := struct{ Courses []courseLink }{}
	for _, id := range v.Courses {
		page.Courses = append(page.Courses, courseLink{ID: id, URL: links.Lesson(id, "")})
	}
	return r.page(w, "home", "Home", v.Chrome, page)
}

// LessonView is the course viewer state. When Err is set, only the
// failure message is rendered.
type LessonView struct {
	Chrome
	CourseID   string
	Collection *content.Collection
	Selection  nav.Selection
	Current    content.Item
	Completed  progress.Set
	Err        error
}

type lessonPage struct {
	CourseTitle string
	Overview    string
	Sidebar     template.HTML
	LessonTitle string
	Toggle      template.HTML
	TOC         template.HTML
	Body        template.HTML
	PrevNext    template.HTML
}

// Lesson renders the course viewer.
func (r *Renderer) Lesson(w io.Writer, v LessonView) error {
	if v.Err != nil || v.Collection == nil {
		msg := "course unavailable"
		if v.Err != nil {
			msg = v.Err.Error()
		}
		page := lessonPage{
			LessonTitle: CourseFailedTitle,
			Body:        template.HTML("<p>" + template.HTMLEscapeString(msg) + "</p>"),
		}
		return r.page(w, "lesson", CourseFailedTitle, v.Chrome, page)
	}

	links := v.links()
	c := v.Collection
	sidebar, err := r.Sidebar(links, v.CourseID, c.Items, v.Current.ID, v.Completed)
	if err != nil {
		return err
	}
	page := lessonPage{
		CourseTitle: c.Title,
		Overview:    c.Overview,
		Sidebar:     sidebar,
	}

	title := c.Title
	if v.Selection.Empty {
		page.Body = noContentPlaceholder
	} else {
		cur := v.Current
		page.LessonTitle = cur.Title
		title = cur.Title + " - " + c.Title
		if page.Toggle, err = r.CompletionToggle(links, v.CourseID, cur.ID, v.Completed.Has(cur.ID)); err != nil {
			return err
		}
		if page.TOC, err = r.TOC(ExtractTOC(cur.Body)); err != nil {
			return err
		}
		page.Body = template.HTML(cur.Body)
	}
	if page.PrevNext, err = r.PrevNext(links, v.CourseID, v.Selection); err != nil {
		return err
	}
	return r.page(w, "lesson", title, v.Chrome, page)
}

// TutorialListView is the filtered tutorial list.
type TutorialListView struct {
	Chrome
	Query string
	Items []content.Item
	Err   error
}

// TutorialList renders the search page.
func (r *Renderer) TutorialList(w io.Writer, v TutorialListView) error {
	links := v.links()
	page := struct {
		SearchAction string
		Query        string
		List         template.HTML
	}{
		SearchAction: links.Tutorials(),
		Query:        v.Query,
	}
	if v.Err != nil {
		page.List = failureBlock(TutorialsFailedText)
	} else {
		list, err := r.TutorialCards(links, v.Items)
		if err != nil {
			return err
		}
		page.List = list
	}
	return r.page(w, "tutorials", "Tutorials", v.Chrome, page)
}

// TutorialGroupsView is the tutorials grouped by language.
type TutorialGroupsView struct {
	Chrome
	Groups []catalog.Group
	Err    error
}

// TutorialGroupsPage renders the grouped tutorials page.
func (r *Renderer) TutorialGroupsPage(w io.Writer, v TutorialGroupsView) error {
	page := struct{ Groups template.HTML }{}
	if v.Err != nil {
		page.Groups = failureBlock(TutorialsFailedText)
	} else {
		groups, err := r.TutorialGroups(v.links(), v.Groups)
		if err != nil {
			return err
		}
		page.Groups = groups
	}
	return r.page(w, "tutorial-groups", "Tutorials by language", v.Chrome, page)
}

// TutorialDetailView is one tutorial. Found is false when the collection
// had nothing to show.
type TutorialDetailView struct {
	Chrome
	Item  content.Item
	Found bool
	Err   error
	// FragmentRedirect adds the script that turns a #id link into ?id=.
	FragmentRedirect bool
}

type detailPage struct {
	TutorialTitle    string
	Explanation      string
	HasCode          bool
	CodeClass        string
	Highlighter      string
	Code             template.HTML
	FragmentRedirect bool
}

// TutorialDetail renders a single tutorial with highlighted code.
func (r *Renderer) TutorialDetail(w io.Writer, v TutorialDetailView) error {
	page := detailPage{FragmentRedirect: v.FragmentRedirect}
	switch {
	case v.Err != nil:
		page.TutorialTitle = DetailFailedTitle
		page.Explanation = DetailFailedText
		page.FragmentRedirect = false
	case !v.Found:
		page.TutorialTitle = DetailNotFoundTitle
	default:
		page.TutorialTitle = v.Item.Title
		page.Explanation = v.Item.Description
		if v.Item.Code != "" {
			page.HasCode = true
			page.Code, page.CodeClass, page.Highlighter = r.Code(v.Item)
		}
	}
	return r.page(w, "tutorial", page.TutorialTitle, v.Chrome, page)
}

func failureBlock(msg string) template.HTML {
	return template.HTML(`<div class="empty error">` + template.HTMLEscapeString(msg) + `</div>`)
}
