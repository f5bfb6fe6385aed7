// Package site writes the learning site out as static HTML files.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/learnsite/internal/logger"
	"github.com/ziadkadry99/learnsite/internal/nav"
	"github.com/ziadkadry99/learnsite/internal/pages"
	"github.com/ziadkadry99/learnsite/internal/render"
)

// Builder renders every page of the site into OutputDir.
type Builder struct {
	OutputDir   string
	Pages       *pages.Controllers
	Renderer    *render.Renderer
	Assets      map[string]render.Asset
	Concurrency int
	Reporter    Reporter
	Log         *logger.Logger
}

// NewBuilder creates a Builder with a quiet reporter.
func NewBuilder(outputDir string, ctrl *pages.Controllers, renderer *render.Renderer, assets map[string]render.Asset) *Builder {
	return &Builder{
		OutputDir:   outputDir,
		Pages:       ctrl,
		Renderer:    renderer,
		Assets:      assets,
		Concurrency: runtime.NumCPU(),
		Reporter:    nopReporter{},
		Log:         logger.Nop(),
	}
}

// page is one output file and how to render it.
type page struct {
	path   string
	render func(w io.Writer) error
}

func linksAt(relPath string) render.StaticLinks {
	return render.StaticLinks{Base: render.BaseFor(relPath)}
}

// Build renders all pages and returns how many were written. Any content
// load failure aborts the build.
func (b *Builder) Build(ctx context.Context) (int, error) {
	jobs, err := b.plan(ctx)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	assets := b.Assets
	if assets == nil {
		assets = render.Assets()
	}
	for name, a := range assets {
		if err := writeFile(filepath.Join(b.OutputDir, "static", name), a.Body); err != nil {
			return 0, err
		}
	}

	reporter := b.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	reporter.Start(len(jobs))
	defer reporter.Finish()

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	limit := b.Concurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := job.render(&buf); err != nil {
				return fmt.Errorf("rendering %s: %w", job.path, err)
			}
			if err := writeFile(filepath.Join(b.OutputDir, filepath.FromSlash(job.path)), buf.Bytes()); err != nil {
				return err
			}
			mu.Lock()
			done++
			reporter.Update(done, job.path)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	b.Log.Info("site built", "pages", len(jobs), "output", b.OutputDir)
	return len(jobs), nil
}

// plan loads all content once and lists the pages to write.
func (b *Builder) plan(ctx context.Context) ([]page, error) {
	r := b.Renderer
	ctrl := b.Pages

	home := ctrl.Home(ctx, linksAt(render.HomeFile))
	jobs := []page{{
		path:   render.HomeFile,
		render: func(w io.Writer) error { return r.Home(w, home) },
	}}

	courses, err := ctrl.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	if len(courses) == 0 {
		// Sources that cannot list still serve the default course.
		courses = []string{ctrl.CourseID("")}
	}
	for _, courseID := range courses {
		base := ctrl.Lesson(ctx, linksAt(render.LessonFile(courseID, "")), courseID, "")
		if base.Err != nil {
			return nil, fmt.Errorf("loading course %s: %w", courseID, base.Err)
		}

		jobs = append(jobs, page{
			path:   render.LessonFile(courseID, ""),
			render: func(w io.Writer) error { return r.Lesson(w, base) },
		})
		for _, it := range base.Collection.Items {
			rel := render.LessonFile(courseID, it.ID)
			v := base
			v.Links = linksAt(rel)
			v.Selection, v.Current = nav.ResolveCollection(base.Collection, it.ID)
			jobs = append(jobs, page{
				path:   rel,
				render: func(w io.Writer) error { return r.Lesson(w, v) },
			})
		}
	}

	coll, err := ctrl.Tutorials(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tutorials: %w", err)
	}

	list := ctrl.TutorialList(ctx, linksAt(render.TutorialsFile), "")
	groups := ctrl.TutorialGroups(ctx, linksAt(render.TutorialGroupsFile))
	jobs = append(jobs,
		page{path: render.TutorialsFile, render: func(w io.Writer) error { return r.TutorialList(w, list) }},
		page{path: render.TutorialGroupsFile, render: func(w io.Writer) error { return r.TutorialGroupsPage(w, groups) }},
	)
	chrome := ctrl.Chrome(ctx, nil)
	for _, it := range coll.Items {
		rel := render.TutorialFile(it.ID)
		v := render.TutorialDetailView{Chrome: chrome, Item: it, Found: true}
		v.Links = linksAt(rel)
		jobs = append(jobs, page{
			path:   rel,
			render: func(w io.Writer) error { return r.TutorialDetail(w, v) },
		})
	}
	return jobs, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
