package server

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/ziadkadry99/learnsite/internal/pages"
	"github.com/ziadkadry99/learnsite/internal/render"
)

func (s *Server) registerPages(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/lesson", s.handleLesson)
	r.Post("/lesson/toggle", s.handleToggleLesson)
	r.Get("/tutorials", s.handleTutorialList)
	r.Get("/tutorials/groups", s.handleTutorialGroups)
	r.Get("/tutorial", s.handleTutorialDetail)
	r.Post("/theme/toggle", s.handleToggleTheme)
}

func (s *Server) registerAPI(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/tutorials", s.handleAPITutorials)
		r.Get("/courses/{course}/progress", s.handleAPIProgress)
	})
}

func linksFor(r *http.Request) render.ServerLinks {
	return render.ServerLinks{ReturnTo: r.URL.RequestURI()}
}

// writePage renders into a buffer first so a template failure never
// leaves a half-written page behind.
func (s *Server) writePage(w http.ResponseWriter, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.log.Error("rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	v := s.pages.Home(r.Context(), linksFor(r))
	s.writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return s.renderer.Home(buf, v)
	})
}

func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := s.pages.Lesson(r.Context(), linksFor(r), q.Get("course"), q.Get("lesson"))
	s.writePage(w, pages.StatusFor(v.Err), func(buf *bytes.Buffer) error {
		return s.renderer.Lesson(buf, v)
	})
}

func (s *Server) handleToggleLesson(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	course := s.pages.CourseID(q.Get("course"))
	lessonID, _, err := s.pages.ToggleLesson(r.Context(), course, q.Get("lesson"))
	if err != nil {
		// The failure page must not point back at this POST-only route.
		links := render.ServerLinks{ReturnTo: render.ServerLinks{}.Lesson(course, q.Get("lesson"))}
		v := s.pages.Lesson(r.Context(), links, course, "")
		s.writePage(w, pages.StatusFor(err), func(buf *bytes.Buffer) error {
			return s.renderer.Lesson(buf, v)
		})
		return
	}
	http.Redirect(w, r, render.ServerLinks{}.Lesson(course, lessonID), http.StatusSeeOther)
}

func (s *Server) handleTutorialList(w http.ResponseWriter, r *http.Request) {
	v := s.pages.TutorialList(r.Context(), linksFor(r), r.URL.Query().Get("q"))
	s.writePage(w, pages.StatusFor(v.Err), func(buf *bytes.Buffer) error {
		return s.renderer.TutorialList(buf, v)
	})
}

func (s *Server) handleTutorialGroups(w http.ResponseWriter, r *http.Request) {
	v := s.pages.TutorialGroups(r.Context(), linksFor(r))
	s.writePage(w, pages.StatusFor(v.Err), func(buf *bytes.Buffer) error {
		return s.renderer.TutorialGroupsPage(buf, v)
	})
}

func (s *Server) handleTutorialDetail(w http.ResponseWriter, r *http.Request) {
	id := pages.ResolveTutorialID(r.URL)
	v := s.pages.TutorialDetail(r.Context(), linksFor(r), id)
	v.FragmentRedirect = id == ""
	s.writePage(w, pages.StatusFor(v.Err), func(buf *bytes.Buffer) error {
		return s.renderer.TutorialDetail(buf, v)
	})
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	t := s.pages.ToggleTheme(r.Context())
	s.log.Debug("toggled theme", "theme", string(t))
	http.Redirect(w, r, returnTarget(r), http.StatusSeeOther)
}

// returnTarget picks where a state-changing form redirects to: the return
// parameter, then the Referer, then the home page. Only local paths are
// accepted.
func returnTarget(r *http.Request) string {
	if ret := r.URL.Query().Get("return"); isLocalPath(ret) {
		return ret
	}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" {
		target := ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}
		if isLocalPath(target) {
			return target
		}
	}
	return "/"
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	a, ok := s.assets[chi.URLParam(r, "name")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(a.Body)
}

type tutorialJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language,omitempty"`
	Level       string   `json:"level,omitempty"`
	Code        string   `json:"code,omitempty"`
}

func (s *Server) handleAPITutorials(w http.ResponseWriter, r *http.Request) {
	items, err := s.pages.SearchTutorials(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeJSON(w, pages.StatusFor(err), map[string]string{"error": "failed to load tutorials"})
		return
	}
	out := make([]tutorialJSON, 0, len(items))
	for _, it := range items {
		out = append(out, tutorialJSON{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Tags:        it.DisplayTags(),
			Language:    it.Language,
			Level:       it.Level,
			Code:        it.Code,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAPIProgress(w http.ResponseWriter, r *http.Request) {
	course := chi.URLParam(r, "course")
	completed := s.pages.CourseProgress(r.Context(), course)
	if completed == nil {
		completed = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"course":    course,
		"completed": completed,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
