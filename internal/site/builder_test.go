package site

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/kv"
	"github.com/ziadkadry99/learnsite/internal/pages"
	"github.com/ziadkadry99/learnsite/internal/render"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"courses/html.json": {Data: []byte(`{"title": "HTML", "lessons": [
			{"id": "intro", "title": "Intro", "content": "<p>a</p>"},
			{"id": "tags", "title": "Tags", "content": "<p>b</p>"}
		]}`)},
		"data/tutorials.json": {Data: []byte(`[
			{"id": "loops", "title": "Loops", "description": "js loops", "language": "JavaScript", "code": "let i = 0;"},
			{"id": "lists", "title": "Lists", "description": "py lists", "language": "Python"}
		]`)},
	}
}

func newTestBuilder(t *testing.T, fsys fstest.MapFS) *Builder {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	ctrl := pages.New(pages.Config{}, content.NewLoader(content.NewFSSource(fsys)), kv.NewMemory(), nil)
	return NewBuilder(t.TempDir(), ctrl, renderer, render.Assets())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestBuild(t *testing.T) {
	b := newTestBuilder(t, testFS())
	var out bytes.Buffer
	b.Reporter = &CIReporter{Out: &out}
	b.Concurrency = 2

	n, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// home, course index, 2 lessons, list, groups, 2 tutorials
	if n != 8 {
		t.Errorf("pages = %d, want 8", n)
	}

	for _, rel := range []string{
		"index.html",
		"courses/html/index.html",
		"courses/html/intro.html",
		"courses/html/tags.html",
		"tutorials/index.html",
		"tutorials/groups.html",
		"tutorials/loops.html",
		"tutorials/lists.html",
		"static/style.css",
		"static/app.js",
	} {
		if _, err := os.Stat(filepath.Join(b.OutputDir, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	tags := readFile(t, filepath.Join(b.OutputDir, "courses/html/tags.html"))
	if !strings.Contains(tags, `href="../../courses/html/intro.html"`) {
		t.Error("lesson page should link to its previous lesson relatively")
	}
	if !strings.Contains(tags, `class="active"`) {
		t.Error("current lesson should be marked active")
	}
	if strings.Contains(tags, "<form") {
		t.Error("static pages should not post forms")
	}

	loops := readFile(t, filepath.Join(b.OutputDir, "tutorials/loops.html"))
	if !strings.Contains(loops, "language-javascript") {
		t.Error("tutorial page should carry the language class")
	}

	if !strings.Contains(out.String(), "Building 8 pages") || !strings.Contains(out.String(), "Site build complete") {
		t.Errorf("reporter output = %q", out.String())
	}
}

func TestBuildFailsOnBrokenContent(t *testing.T) {
	fsys := testFS()
	fsys["courses/broken.json"] = &fstest.MapFile{Data: []byte(`{`)}
	b := newTestBuilder(t, fsys)

	if _, err := b.Build(context.Background()); !errors.Is(err, content.ErrParseFailed) {
		t.Errorf("err = %v, want parse failure", err)
	}

	fsys = testFS()
	delete(fsys, "data/tutorials.json")
	b = newTestBuilder(t, fsys)
	if _, err := b.Build(context.Background()); !errors.Is(err, content.ErrFetchFailed) {
		t.Errorf("err = %v, want fetch failure", err)
	}
}

func TestWatchRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public")
	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rebuilt := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, WatchOptions{Debounce: 20 * time.Millisecond, Ignore: []string{out}}, func(context.Context) error {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(out, "index.html"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-rebuilt:
		t.Fatal("changes in an ignored directory should not rebuild")
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(filepath.Join(dir, "course.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after file change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestIgnoreSet(t *testing.T) {
	dir := t.TempDir()
	s := newIgnoreSet([]string{filepath.Join(dir, "public")})

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(dir, "public"), true},
		{filepath.Join(dir, "public", "a.html"), true},
		{filepath.Join(dir, "publications", "a.json"), false},
		{filepath.Join(dir, ".git"), true},
		{filepath.Join(dir, "courses", "html.json"), false},
	}
	for _, tt := range tests {
		if got := s.skip(tt.path); got != tt.want {
			t.Errorf("skip(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
