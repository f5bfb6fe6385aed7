package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ziadkadry99/learnsite/internal/config"
	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/highlight"
	"github.com/ziadkadry99/learnsite/internal/kv"
	"github.com/ziadkadry99/learnsite/internal/logger"
	"github.com/ziadkadry99/learnsite/internal/pages"
	"github.com/ziadkadry99/learnsite/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `learnsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// app holds the components shared by serve and build.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	store      kv.Store
	closeStore func() error
	pages      *pages.Controllers
	renderer   *render.Renderer
	assets     map[string]render.Asset
}

// newApp wires content, storage and rendering from cfg. driver overrides
// the configured store driver when non-empty.
func newApp(ctx context.Context, cfg *config.Config, driver config.StoreDriver) (*app, error) {
	log, err := logger.New(cfg.LogMode, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	if driver == "" {
		driver = cfg.Store.Driver
	}
	store, closeStore, err := kv.Open(ctx, kv.Options{
		Driver:    string(driver),
		Path:      cfg.Store.Path,
		RedisAddr: cfg.Store.RedisAddr,
		Prefix:    cfg.Store.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", driver, err)
	}

	loader := content.NewLoader(newSource(cfg),
		content.WithTutorialsPath(cfg.TutorialsPath),
		content.WithMarkdown(content.NewMarkdown()),
	)

	var highlighters []highlight.Highlighter
	var extraCSS string
	if cfg.Highlighter != config.HighlighterBuiltin {
		ch := highlight.Chroma{Style: cfg.HighlightStyle}
		highlighters = append(highlighters, ch)
		css, err := ch.CSS()
		if err != nil {
			log.Warn("chroma stylesheet unavailable", "style", cfg.HighlightStyle, "error", err)
		}
		extraCSS = css
	}

	renderer, err := render.New(
		render.WithSiteName(cfg.SiteName),
		render.WithHighlighters(highlighters...),
	)
	if err != nil {
		closeStore()
		return nil, err
	}

	ctrl := pages.New(pages.Config{
		DefaultCourse:      cfg.DefaultCourse,
		CoursesGlob:        cfg.CoursesGlob,
		ListCap:            cfg.ListCap,
		Priority:           cfg.GroupLabels,
		ScrollOffset:       cfg.ScrollOffset,
		ScrollTopThreshold: cfg.ScrollTopThreshold,
	}, loader, store, log)

	return &app{
		cfg:        cfg,
		log:        log,
		store:      store,
		closeStore: closeStore,
		pages:      ctrl,
		renderer:   renderer,
		assets:     render.Assets(extraCSS),
	}, nil
}

// newSource picks the HTTP source when a content URL is configured.
func newSource(cfg *config.Config) content.Source {
	if cfg.ContentURL != "" {
		return content.NewHTTPSource(cfg.ContentURL, &http.Client{Timeout: 30 * time.Second})
	}
	return content.NewDirSource(cfg.ContentDir)
}

func (a *app) Close() {
	if err := a.closeStore(); err != nil {
		a.log.Warn("closing store", "error", err)
	}
	a.log.Sync()
}
