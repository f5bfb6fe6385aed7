// Package pages holds the page controllers. Each controller reads its
// query parameters, performs exactly one content load and returns the
// view state for the renderer. State is passed explicitly; nothing is
// kept between requests.
package pages

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/ziadkadry99/learnsite/internal/catalog"
	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/kv"
	"github.com/ziadkadry99/learnsite/internal/logger"
	"github.com/ziadkadry99/learnsite/internal/nav"
	"github.com/ziadkadry99/learnsite/internal/progress"
	"github.com/ziadkadry99/learnsite/internal/render"
	"github.com/ziadkadry99/learnsite/internal/theme"
)

// DefaultCourse is the course shown when none is requested.
const DefaultCourse = "html"

// Config tunes the controllers.
type Config struct {
	DefaultCourse      string
	CoursesGlob        string
	ListCap            int
	Priority           []string // group labels; nil uses catalog.DefaultLabels
	ScrollOffset       int
	ScrollTopThreshold int
}

// Controllers serves every page from one content loader and one store.
type Controllers struct {
	cfg    Config
	loader *content.Loader
	store  kv.Store
	prefs  *theme.Preference
	log    *logger.Logger
}

// New creates the controllers. A nil store disables persistence and a nil
// logger discards.
func New(cfg Config, loader *content.Loader, store kv.Store, log *logger.Logger) *Controllers {
	if cfg.DefaultCourse == "" {
		cfg.DefaultCourse = DefaultCourse
	}
	if cfg.CoursesGlob == "" {
		cfg.CoursesGlob = content.CoursesGlob
	}
	if cfg.ListCap <= 0 {
		cfg.ListCap = catalog.DefaultCap
	}
	if store == nil {
		store = kv.Disabled{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controllers{
		cfg:    cfg,
		loader: loader,
		store:  store,
		prefs:  theme.NewPreference(store, log),
		log:    log,
	}
}

// Chrome builds the shared page state for links.
func (c *Controllers) Chrome(ctx context.Context, links render.Links) render.Chrome {
	return render.Chrome{
		Links:              links,
		Theme:              c.prefs.Current(ctx),
		ScrollOffset:       c.cfg.ScrollOffset,
		ScrollTopThreshold: c.cfg.ScrollTopThreshold,
	}
}

// StatusFor maps a load outcome to the HTTP status of the page.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, content.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Home lists the available courses. A listing failure is logged and shows
// no courses.
func (c *Controllers) Home(ctx context.Context, links render.Links) render.HomeView {
	ids, err := c.loader.ListCourses(ctx, c.cfg.CoursesGlob)
	if err != nil {
		c.log.Warn("listing courses", "error", err)
	}
	return render.HomeView{Chrome: c.Chrome(ctx, links), Courses: ids}
}

// Courses returns the discovered course ids.
func (c *Controllers) Courses(ctx context.Context) ([]string, error) {
	return c.loader.ListCourses(ctx, c.cfg.CoursesGlob)
}

// CourseID returns requested, or the default course when it is empty.
func (c *Controllers) CourseID(requested string) string {
	if requested == "" {
		return c.cfg.DefaultCourse
	}
	return requested
}

// Lesson resolves the course viewer for courseID and lessonID. An empty
// courseID selects the default course.
func (c *Controllers) Lesson(ctx context.Context, links render.Links, courseID, lessonID string) render.LessonView {
	courseID = c.CourseID(courseID)
	v := render.LessonView{Chrome: c.Chrome(ctx, links), CourseID: courseID}

	coll, err := c.loader.LoadCourse(ctx, courseID)
	if err != nil {
		c.log.Error("loading course", "course", courseID, "error", err)
		v.Err = err
		return v
	}
	v.Collection = coll
	v.Selection, v.Current = nav.ResolveCollection(coll, lessonID)
	v.Completed = progress.NewTracker(c.store, courseID, c.log).Set(ctx)
	return v
}

// ToggleLesson flips the completion of the resolved lesson and returns its
// id and new state.
func (c *Controllers) ToggleLesson(ctx context.Context, courseID, lessonID string) (string, bool, error) {
	courseID = c.CourseID(courseID)
	coll, err := c.loader.LoadCourse(ctx, courseID)
	if err != nil {
		c.log.Error("loading course", "course", courseID, "error", err)
		return "", false, err
	}
	sel, cur := nav.ResolveCollection(coll, lessonID)
	if sel.Empty {
		return "", false, nil
	}
	done := progress.NewTracker(c.store, courseID, c.log).Toggle(ctx, cur.ID)
	c.log.Debug("toggled lesson", "course", courseID, "lesson", cur.ID, "completed", done)
	return cur.ID, done, nil
}

// ToggleTheme flips the site theme.
func (c *Controllers) ToggleTheme(ctx context.Context) theme.Theme {
	return c.prefs.Toggle(ctx)
}

// CourseProgress returns the completed lesson ids of a course.
func (c *Controllers) CourseProgress(ctx context.Context, courseID string) []string {
	return progress.NewTracker(c.store, courseID, c.log).Set(ctx).IDs()
}

// Tutorials loads the tutorial catalog.
func (c *Controllers) Tutorials(ctx context.Context) (*content.Collection, error) {
	coll, err := c.loader.LoadTutorials(ctx)
	if err != nil {
		c.log.Error("loading tutorials", "error", err)
		return nil, err
	}
	return coll, nil
}

// SearchTutorials returns the capped tutorial list for query.
func (c *Controllers) SearchTutorials(ctx context.Context, query string) ([]content.Item, error) {
	coll, err := c.Tutorials(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(coll.Items, query, c.cfg.ListCap), nil
}

// TutorialList is the search page for query.
func (c *Controllers) TutorialList(ctx context.Context, links render.Links, query string) render.TutorialListView {
	items, err := c.SearchTutorials(ctx, query)
	return render.TutorialListView{
		Chrome: c.Chrome(ctx, links),
		Query:  query,
		Items:  items,
		Err:    err,
	}
}

// TutorialGroups is the grouped tutorials page.
func (c *Controllers) TutorialGroups(ctx context.Context, links render.Links) render.TutorialGroupsView {
	v := render.TutorialGroupsView{Chrome: c.Chrome(ctx, links)}
	coll, err := c.Tutorials(ctx)
	if err != nil {
		v.Err = err
		return v
	}
	v.Groups = catalog.GroupByLabel(coll.Items, c.cfg.Priority)
	return v
}

// TutorialDetail shows the tutorial with id. An unknown or empty id shows
// the first tutorial.
func (c *Controllers) TutorialDetail(ctx context.Context, links render.Links, id string) render.TutorialDetailView {
	v := render.TutorialDetailView{Chrome: c.Chrome(ctx, links)}
	coll, err := c.Tutorials(ctx)
	if err != nil {
		v.Err = err
		return v
	}
	sel, item := nav.ResolveCollection(coll, id)
	if sel.Empty {
		return v
	}
	v.Item = item
	v.Found = true
	return v
}

// ResolveTutorialID picks the tutorial id from u: the id query parameter
// wins over the fragment.
func ResolveTutorialID(u *url.URL) string {
	if id := u.Query().Get("id"); id != "" {
		return id
	}
	return u.Fragment
}
