package render

import (
	"net/url"
	"strings"
)

// Links builds the URLs a page links to. The server and the static build
// lay pages out differently.
type Links interface {
	Home() string
	Lesson(courseID, lessonID string) string
	Tutorials() string
	TutorialGroups() string
	Tutorial(id string) string
	Asset(name string) string
	// ToggleCompletion and ToggleTheme return "" when the page cannot
	// change state server-side.
	ToggleCompletion(courseID, lessonID string) string
	ToggleTheme() string
}

// ServerLinks addresses pages by query parameters, as served by the HTTP server.
type ServerLinks struct {
	// ReturnTo is the page a state-changing form redirects back to.
	ReturnTo string
}

func (ServerLinks) Home() string { return "/" }

func (ServerLinks) Lesson(courseID, lessonID string) string {
	q := url.Values{}
	q.Set("course", courseID)
	if lessonID != "" {
		q.Set("lesson", lessonID)
	}
	return "/lesson?" + encodeOrdered(q, "course", "lesson")
}

func (ServerLinks) Tutorials() string { return "/tutorials" }

func (ServerLinks) TutorialGroups() string { return "/tutorials/groups" }

func (ServerLinks) Tutorial(id string) string {
	return "/tutorial?id=" + url.QueryEscape(id)
}

func (ServerLinks) Asset(name string) string { return "/static/" + name }

func (ServerLinks) ToggleCompletion(courseID, lessonID string) string {
	q := url.Values{}
	q.Set("course", courseID)
	q.Set("lesson", lessonID)
	return "/lesson/toggle?" + encodeOrdered(q, "course", "lesson")
}

func (l ServerLinks) ToggleTheme() string {
	if l.ReturnTo == "" {
		return "/theme/toggle"
	}
	return "/theme/toggle?return=" + url.QueryEscape(l.ReturnTo)
}

// encodeOrdered encodes q with keys in the given order rather than sorted.
func encodeOrdered(q url.Values, keys ...string) string {
	var parts []string
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
		}
	}
	return strings.Join(parts, "&")
}

// StaticLinks addresses pages as files in a static build. Base is the
// relative prefix back to the site root (e.g. "../" one level deep).
type StaticLinks struct {
	Base string
}

// Static page paths, relative to the site root.
func LessonFile(courseID, lessonID string) string {
	if lessonID == "" {
		return "courses/" + url.PathEscape(courseID) + "/index.html"
	}
	return "courses/" + url.PathEscape(courseID) + "/" + url.PathEscape(lessonID) + ".html"
}

func TutorialFile(id string) string {
	return "tutorials/" + url.PathEscape(id) + ".html"
}

const (
	HomeFile           = "index.html"
	TutorialsFile      = "tutorials/index.html"
	TutorialGroupsFile = "tutorials/groups.html"
)

// BaseFor returns the relative prefix for a page at relPath.
func BaseFor(relPath string) string {
	return strings.Repeat("../", strings.Count(relPath, "/"))
}

func (l StaticLinks) Home() string { return l.Base + HomeFile }

func (l StaticLinks) Lesson(courseID, lessonID string) string {
	return l.Base + LessonFile(courseID, lessonID)
}

func (l StaticLinks) Tutorials() string { return l.Base + TutorialsFile }

func (l StaticLinks) TutorialGroups() string { return l.Base + TutorialGroupsFile }

func (l StaticLinks) Tutorial(id string) string { return l.Base + TutorialFile(id) }

func (l StaticLinks) Asset(name string) string { return l.Base + "static/" + name }

func (StaticLinks) ToggleCompletion(string, string) string { return "" }

func (StaticLinks) ToggleTheme() string { return "" }
