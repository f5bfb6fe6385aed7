package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goccy/go-json"

	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/kv"
	"github.com/ziadkadry99/learnsite/internal/pages"
	"github.com/ziadkadry99/learnsite/internal/render"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"courses/html.json": {Data: []byte(`{"title": "HTML", "lessons": [
			{"id": "intro", "title": "Intro", "content": "<h2 id=\"s\">Section</h2>"},
			{"id": "tags", "title": "Tags", "content": "<p>b</p>"}
		]}`)},
		"courses/bad.json": {Data: []byte(`{`)},
		"data/tutorials.json": {Data: []byte(`[
			{"id": "loops", "title": "Loops", "description": "js loops", "language": "JavaScript", "code": "for(;;){}"},
			{"id": "lists", "title": "Lists", "description": "py lists", "tags": ["Python"]}
		]`)},
	}
}

func newTestServer(t *testing.T, cfg Config, fsys fstest.MapFS) (*Server, kv.Store) {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	store := kv.NewMemory()
	ctrl := pages.New(pages.Config{}, content.NewLoader(content.NewFSSource(fsys)), store, nil)
	return New(cfg, ctrl, renderer, nil, nil), store
}

func do(srv *Server, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, testFS())

	w := do(srv, "GET", "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t, Config{AllowAll: true}, testFS())

	w := do(srv, "OPTIONS", "/api/tutorials", map[string]string{
		"Origin":                        "http://example.com",
		"Access-Control-Request-Method": "GET",
	})
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPageStatuses(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, testFS())

	tests := []struct {
		target string
		status int
		want   string
	}{
		{"/", http.StatusOK, "/lesson?course=html"},
		{"/lesson", http.StatusOK, "Intro"},
		{"/lesson?course=html&lesson=tags", http.StatusOK, `id="prev-link"`},
		{"/lesson?course=missing", http.StatusBadGateway, render.CourseFailedTitle},
		{"/lesson?course=bad", http.StatusInternalServerError, render.CourseFailedTitle},
		{"/tutorials?q=py", http.StatusOK, "Lists"},
		{"/tutorials/groups", http.StatusOK, "<h2>JavaScript</h2>"},
		{"/tutorial?id=lists", http.StatusOK, "py lists"},
		{"/tutorial", http.StatusOK, "location.replace"},
		{"/static/style.css", http.StatusOK, "dark-mode"},
		{"/static/app.js", http.StatusOK, "scrollTopBtn"},
		{"/static/nope.js", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := do(srv, "GET", tt.target, nil)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestTutorialsFailure(t *testing.T) {
	fsys := testFS()
	delete(fsys, "data/tutorials.json")
	srv, _ := newTestServer(t, Config{}, fsys)

	w := do(srv, "GET", "/tutorials", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), render.TutorialsFailedText) {
		t.Error("failure message missing")
	}

	w = do(srv, "GET", "/tutorial?id=x", nil)
	if !strings.Contains(w.Body.String(), render.DetailFailedText) {
		t.Error("detail failure message missing")
	}
}

func TestToggleLesson(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, testFS())

	w := do(srv, "POST", "/lesson/toggle?course=html&lesson=tags", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/lesson?course=html&lesson=tags" {
		t.Errorf("Location = %q", loc)
	}

	w = do(srv, "GET", "/lesson?course=html&lesson=tags", nil)
	if !strings.Contains(w.Body.String(), `aria-pressed="true">Completed</button>`) {
		t.Error("lesson should render as completed after toggle")
	}

	w = do(srv, "GET", "/api/courses/html/progress", nil)
	var body struct {
		Course    string   `json:"course"`
		Completed []string `json:"completed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Course != "html" || len(body.Completed) != 1 || body.Completed[0] != "tags" {
		t.Errorf("progress = %+v", body)
	}

	w = do(srv, "POST", "/lesson/toggle?course=missing&lesson=x", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("toggle on missing course status = %d, want 502", w.Code)
	}
	page := w.Body.String()
	if strings.Contains(page, "return=%2Flesson%2Ftoggle") {
		t.Error("theme toggle on the failure page returns to the POST-only toggle route")
	}
	if !strings.Contains(page, "return=%2Flesson%3Fcourse%3Dmissing") {
		t.Error("theme toggle on the failure page should return to the lesson view")
	}
}

func TestToggleTheme(t *testing.T) {
	srv, store := newTestServer(t, Config{}, testFS())

	w := do(srv, "POST", "/theme/toggle", map[string]string{"Referer": "http://localhost:8080/tutorials?q=js"})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/tutorials?q=js" {
		t.Errorf("Location = %q", loc)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if v, ok, _ := store.Get(ctx, "site-theme"); !ok || v != "dark" {
		t.Errorf("stored theme = %q, %v", v, ok)
	}

	w = do(srv, "GET", "/", nil)
	if !strings.Contains(w.Body.String(), `class="dark-mode"`) {
		t.Error("page should render dark after toggle")
	}

	w = do(srv, "POST", "/theme/toggle?return=//evil.example", nil)
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("non-local return should fall back to /, got %q", loc)
	}
}

func TestAPITutorials(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, testFS())

	w := do(srv, "GET", "/api/tutorials?q=loops", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var items []tutorialJSON
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 1 || items[0].ID != "loops" {
		t.Fatalf("items = %+v", items)
	}
	if len(items[0].Tags) != 1 || items[0].Tags[0] != "JavaScript" {
		t.Errorf("tags should fall back to language, got %v", items[0].Tags)
	}
}
