package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/learnsite/internal/logger"
	"github.com/ziadkadry99/learnsite/internal/pages"
	"github.com/ziadkadry99/learnsite/internal/render"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":8080"

// Config holds server configuration.
type Config struct {
	Addr     string
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the learning site.
type Server struct {
	cfg        Config
	pages      *pages.Controllers
	renderer   *render.Renderer
	assets     map[string]render.Asset
	log        *logger.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. assets are served under /static/.
func New(cfg Config, ctrl *pages.Controllers, renderer *render.Renderer, assets map[string]render.Asset, log *logger.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if log == nil {
		log = logger.Nop()
	}
	if assets == nil {
		assets = render.Assets()
	}
	s := &Server{
		cfg:      cfg,
		pages:    ctrl,
		renderer: renderer,
		assets:   assets,
		log:      log,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/static/{name}", s.handleAsset)
	s.registerPages(r)
	s.registerAPI(r)

	return r
}

// requestLogger writes one access log line per request.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Router returns the chi router, which serves every route without a listener.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("learnsite server listening", "addr", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
